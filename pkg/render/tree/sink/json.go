package sink

import (
	"encoding/json"

	"github.com/matzehuels/ornatree/pkg/render/tree"
)

type jsonScene struct {
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Count     int            `json:"count"`
	Fallbacks int            `json:"fallbacks"`
	Selected  string         `json:"selected,omitempty"`
	Ornaments []jsonOrnament `json:"ornaments"`
}

type jsonOrnament struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Region   string  `json:"region,omitempty"`
	Link     string  `json:"link,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Row      int     `json:"row"`
	Column   int     `json:"column"`
	Attempts int     `json:"attempts"`
	Fallback bool    `json:"fallback,omitempty"`
	Selected bool    `json:"selected,omitempty"`
}

// RenderJSON serializes s with per-ornament placement diagnostics.
func RenderJSON(s tree.Scene) ([]byte, error) {
	out := jsonScene{
		Width:     s.Width,
		Height:    s.Height,
		Count:     len(s.Ornaments),
		Fallbacks: s.Fallbacks,
		Ornaments: make([]jsonOrnament, len(s.Ornaments)),
	}
	if s.Selected != nil {
		out.Selected = s.Selected.ID
	}
	for i, o := range s.Ornaments {
		out.Ornaments[i] = jsonOrnament{
			ID:       o.Project.ID,
			Name:     o.Project.Name,
			City:     o.Project.City,
			Region:   o.Project.Region,
			Link:     o.Project.Link,
			X:        o.X,
			Y:        o.Y,
			Size:     o.Size(),
			Row:      o.Row,
			Column:   o.Column,
			Attempts: o.Attempts,
			Fallback: o.Fallback,
			Selected: o.Selected,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
