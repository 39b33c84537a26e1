package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/ornatree/pkg/placement"
	"github.com/matzehuels/ornatree/pkg/project"
)

// LayoutDocument is the JSON form of a placement, optionally annotated with
// the project each slot belongs to.
type LayoutDocument struct {
	Count     int             `json:"count"`
	Canvas    canvas          `json:"canvas"`
	Envelope  envelope        `json:"envelope"`
	RowSizes  []int           `json:"row_sizes"`
	Fallbacks int             `json:"fallbacks"`
	Slots     []annotatedSlot `json:"slots"`
}

type canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type envelope struct {
	CenterX   float64 `json:"center_x"`
	TopY      float64 `json:"top_y"`
	BottomY   float64 `json:"bottom_y"`
	TopWidth  float64 `json:"top_width"`
	BaseWidth float64 `json:"base_width"`
	Margin    float64 `json:"width_safety_margin"`
}

type annotatedSlot struct {
	placement.Slot
	ID string `json:"id,omitempty"`
}

// NewLayoutDocument wraps l. When c is non-nil each slot carries the id of
// the project at its index.
func NewLayoutDocument(cfg placement.Config, l placement.Layout, c *project.Catalog) LayoutDocument {
	e := cfg.Envelope
	doc := LayoutDocument{
		Count:  l.Len(),
		Canvas: canvas{Width: placement.CanvasWidth, Height: placement.CanvasHeight},
		Envelope: envelope{
			CenterX: e.CenterX, TopY: e.TopY, BottomY: e.BottomY,
			TopWidth: e.TopWidth, BaseWidth: e.BaseWidth, Margin: e.WidthSafetyMargin,
		},
		RowSizes:  l.RowSizes,
		Fallbacks: l.Fallbacks,
		Slots:     make([]annotatedSlot, len(l.Slots)),
	}
	for i, s := range l.Slots {
		doc.Slots[i] = annotatedSlot{Slot: s}
		if c != nil && i < c.Len() {
			doc.Slots[i].ID = c.At(i).ID
		}
	}
	return doc
}

// Encode returns indented JSON.
func (d LayoutDocument) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
