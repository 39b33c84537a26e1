package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/ornatree/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "html", []string{"html"}},
		{"multiple formats", "svg,json,html", []string{"svg", "json", "html"}},
		{"spaces and case", " SVG , Png ", []string{"svg", "png"}},
		{"empty entries dropped", "svg,,pdf,", []string{"svg", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseFormats(tt.input)); diff != "" {
				t.Errorf("parseFormats(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"svg", []string{"svg"}, false},
		{"all", []string{"svg", "json", "html", "png", "pdf"}, false},
		{"unknown", []string{"svg", "dot"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base   string
		format string
		multi  bool
		want   string
	}{
		{"", "svg", false, "ornatree.svg"},
		{"", "html", true, "ornatree.html"},
		{"out/tree.svg", "svg", false, "out/tree.svg"},
		{"out/tree.svg", "json", true, "out/tree.json"},
		{"tree", "pdf", true, "tree.pdf"},
	}

	for _, tt := range tests {
		if got := outputPath(tt.base, tt.format, tt.multi); got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.base, tt.format, tt.multi, got, tt.want)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "tree.svg")

	_, root := newTestCLI(t)
	root.SetArgs([]string{"render", "-f", "svg,html", "-s", "koeln-ehrenfeld", "-o", base})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "tree.svg"))
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("svg output starts with %q", string(svg[:min(len(svg), 20)]))
	}
	if !strings.Contains(string(svg), "stroke-width=\"3\"") {
		t.Error("selected ornament not outlined")
	}

	html, err := os.ReadFile(filepath.Join(dir, "tree.html"))
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	if !strings.Contains(string(html), "Lesepaten") {
		t.Error("html detail panel missing the selected project")
	}
}

func TestRenderCommandUnknownSelection(t *testing.T) {
	_, root := newTestCLI(t)
	root.SetArgs([]string{"render", "-s", "nowhere", "-o", filepath.Join(t.TempDir(), "x.svg")})
	err := root.Execute()
	if !errors.Is(err, errors.ErrCodeProjectNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeProjectNotFound)
	}
}
