package project

import (
	"bytes"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/ornatree/pkg/errors"
)

// Catalog is an ordered, validated list of projects.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// catalogFile is the on-disk TOML shape.
type catalogFile struct {
	Projects []Project `toml:"project"`
}

// New validates projects and builds a catalog. Missing ids are derived
// from city and name. Duplicate ids are rejected.
func New(projects []Project) (*Catalog, error) {
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		if p.ID == "" {
			p.ID = DeriveID(p.City, p.Name)
		}
		if err := p.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "project #%d", i+1)
		}
		if prev, dup := c.index[p.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog,
				"project #%d: duplicate id %q (first used by project #%d)", i+1, p.ID, prev+1)
		}
		c.index[p.ID] = len(c.projects)
		c.projects = append(c.projects, p)
	}
	return c, nil
}

// Parse reads a catalog from TOML. Unknown keys are rejected so typos do
// not silently drop fields.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "parse catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return New(f.Projects)
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read catalog %s", path)
	}
	return Parse(data)
}

// Encode writes the catalog back as TOML.
func (c *Catalog) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(catalogFile{Projects: c.projects}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// Projects returns a copy of the projects in catalog order.
func (c *Catalog) Projects() []Project { return slices.Clone(c.projects) }

// At returns the project at index i.
func (c *Catalog) At(i int) Project { return c.projects[i] }

// IndexOf returns the catalog position of id.
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Find returns the project with the given id.
func (c *Catalog) Find(id string) (Project, error) {
	i, ok := c.index[id]
	if !ok {
		return Project{}, errors.New(errors.ErrCodeProjectNotFound, "no project with id %q", id)
	}
	return c.projects[i], nil
}
