// Package project defines the items hung on the tree and the catalog that
// holds them.
//
// A [Catalog] is an ordered list of [Project] values. Order matters: the
// placement generator returns positions index-aligned with the catalog, so
// reordering a catalog moves ornaments. Catalogs are read from TOML files
// with one [[project]] table per entry:
//
//	[[project]]
//	id          = "leipzig-west"
//	name        = "Nachbarschaftsgarten"
//	city        = "Leipzig"
//	region      = "Sachsen"
//	description = "A shared garden run by the neighbourhood."
//	link        = "https://example.org/leipzig-west"
//
// Entries without an id get a stable one derived from city and name, so the
// same file always yields the same ids.
package project

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/ornatree/pkg/errors"
)

// idNamespace seeds the name-based UUIDs of entries without an explicit id.
var idNamespace = uuid.MustParse("6f1c0b1e-3c4d-4d55-9a3e-5b8f3f0a9c21")

// Project is one ornament's worth of data.
type Project struct {
	ID          string `toml:"id" json:"id"`
	Name        string `toml:"name" json:"name"`
	City        string `toml:"city" json:"city"`
	Region      string `toml:"region" json:"region"`
	Description string `toml:"description" json:"description"`
	Link        string `toml:"link" json:"link"`
}

// Title returns the hover label shown for the project's ornament.
func (p Project) Title() string {
	return fmt.Sprintf("%s - %s", p.City, p.Name)
}

// Validate checks required fields and the link scheme.
func (p Project) Validate() error {
	if err := errors.ValidateID(p.ID); err != nil {
		return err
	}
	if err := errors.ValidateText("name", p.Name); err != nil {
		return err
	}
	if err := errors.ValidateText("city", p.City); err != nil {
		return err
	}
	if p.Link != "" {
		if err := errors.ValidateURL(p.Link); err != nil {
			return err
		}
	}
	return nil
}

// DeriveID returns the stable id used for entries that omit one.
func DeriveID(city, name string) string {
	return uuid.NewSHA1(idNamespace, []byte(city+"\x00"+name)).String()
}
