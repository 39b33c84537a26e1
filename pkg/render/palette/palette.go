// Package palette holds the brand colours used by every renderer.
//
// Colours are hex strings so they can be written straight into SVG and
// HTML. The terminal view converts them with lipgloss. [Palette.Validate]
// parses every entry with go-colorful so a typo in config.toml fails early
// instead of producing an invisible ornament.
package palette

import (
	"fmt"
	"reflect"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/ornatree/pkg/errors"
)

// Brand colours.
const (
	Yellow     = "#FBFD37"
	DarkNavy   = "#252B36"
	LightBlue  = "#AEC2C6"
	MediumBlue = "#3E5C76"
	Grey       = "#5C6166"
	Pink       = "#EAC8B9"
	White      = "#FFFFFF"
)

// Palette maps rendering roles to colours.
type Palette struct {
	Ornament  string `koanf:"ornament"`   // marker fill
	Stroke    string `koanf:"stroke"`     // marker outline
	Selected  string `koanf:"selected"`   // outline of the selected marker, region badge
	Panel     string `koanf:"panel"`      // detail panel header
	Text      string `koanf:"text"`       // body text
	Tree      string `koanf:"tree"`       // silhouette fill
	Trunk     string `koanf:"trunk"`      // trunk fill
	SkyTop    string `koanf:"sky_top"`    // background gradient start
	SkyBottom string `koanf:"sky_bottom"` // background gradient end
}

// Default returns the brand palette.
func Default() Palette {
	return Palette{
		Ornament:  MediumBlue,
		Stroke:    White,
		Selected:  Yellow,
		Panel:     DarkNavy,
		Text:      Grey,
		Tree:      "#2F6B4F",
		Trunk:     "#6B4A2E",
		SkyTop:    "#EFF6FF",
		SkyBottom: "#DBEAFE",
	}
}

// WithDefaults fills empty entries from [Default].
func (p Palette) WithDefaults() Palette {
	def := reflect.ValueOf(Default())
	v := reflect.ValueOf(&p).Elem()
	for i := range v.NumField() {
		if v.Field(i).String() == "" {
			v.Field(i).SetString(def.Field(i).String())
		}
	}
	return p
}

// Validate checks that every entry is a parseable hex colour.
func (p Palette) Validate() error {
	v := reflect.ValueOf(p)
	t := v.Type()
	for i := range v.NumField() {
		name := t.Field(i).Tag.Get("koanf")
		if _, err := colorful.Hex(v.Field(i).String()); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette.%s: invalid colour %q", name, v.Field(i).String())
		}
	}
	return nil
}

// Shade blends hex towards black by amount (0..1) in Lab space. Invalid
// input is returned unchanged.
func Shade(hex string, amount float64) string {
	return blend(hex, colorful.Color{}, amount)
}

// Tint blends hex towards white by amount (0..1) in Lab space.
func Tint(hex string, amount float64) string {
	return blend(hex, colorful.Color{R: 1, G: 1, B: 1}, amount)
}

func blend(hex string, to colorful.Color, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	amount = max(0, min(amount, 1))
	return c.BlendLab(to, amount).Clamped().Hex()
}

// Gradient returns n colours evenly blended from a to b. n <= 0 yields
// an empty slice.
func Gradient(a, b string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	ca, err := colorful.Hex(a)
	if err != nil {
		return nil, fmt.Errorf("gradient start: %w", err)
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return nil, fmt.Errorf("gradient end: %w", err)
	}
	out := make([]string, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = ca.BlendLab(cb, t).Clamped().Hex()
	}
	return out, nil
}
