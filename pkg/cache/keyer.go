package cache

import "time"

// ArtifactKeyOpts holds every input besides the catalog that changes a
// rendered artifact.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Selected    string  `json:"selected,omitempty"`
	PaletteHash string  `json:"palette,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
	Hover       bool    `json:"hover,omitempty"`
	Links       bool    `json:"links,omitempty"`
	Title       string  `json:"title,omitempty"` // page title, HTML only
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey identifies a placement for count items under the placement
	// configuration hashed as configHash.
	LayoutKey(configHash string, count int) string
	// ArtifactKey identifies a rendered artifact for a catalog hash.
	ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key inputs into fixed-length keys.
type DefaultKeyer struct{}

func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(configHash string, count int) string {
	return hashKey("layout", configHash, count)
}

func (DefaultKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", catalogHash, opts)
}

// Default lifetimes per key type.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)
