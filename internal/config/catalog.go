package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/j-veylop/bikeshare-explorer/internal/dataset"
	"github.com/j-veylop/bikeshare-explorer/internal/models"
)

// CityEntry maps one city to its trip file.
type CityEntry struct {
	Name string `yaml:"name" validate:"required,oneof=chicago new_york_city washington"`
	File string `yaml:"file" validate:"required"`
}

// Catalog lists the trip file for each city. Relative files are resolved
// against the data directory.
type Catalog struct {
	Cities []CityEntry `yaml:"cities" validate:"required,min=1,dive"`
}

// DefaultCatalog returns the stock file names for the supported cities.
func DefaultCatalog() *Catalog {
	return &Catalog{Cities: []CityEntry{
		{Name: string(models.Chicago), File: "chicago.csv"},
		{Name: string(models.NewYorkCity), File: "new_york_city.csv"},
		{Name: string(models.Washington), File: "washington.csv"},
	}}
}

// LoadCatalog reads and validates a YAML catalog such as:
//
//	cities:
//	  - name: chicago
//	    file: /data/divvy_2017.csv
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks field constraints and rejects duplicate cities.
func (c *Catalog) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Cities))
	for _, e := range c.Cities {
		if seen[e.Name] {
			return fmt.Errorf("city %q listed more than once", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Merge returns a catalog where entries from override replace entries for
// the same city.
func (c *Catalog) Merge(override *Catalog) *Catalog {
	merged := &Catalog{Cities: make([]CityEntry, 0, len(c.Cities))}
	replaced := make(map[string]CityEntry, len(override.Cities))
	for _, e := range override.Cities {
		replaced[e.Name] = e
	}

	for _, e := range c.Cities {
		if r, ok := replaced[e.Name]; ok {
			merged.Cities = append(merged.Cities, r)
			delete(replaced, e.Name)
			continue
		}
		merged.Cities = append(merged.Cities, e)
	}
	for _, e := range override.Cities {
		if _, ok := replaced[e.Name]; ok {
			merged.Cities = append(merged.Cities, e)
		}
	}
	return merged
}

// Sources resolves each entry to a file path for the loader.
func (c *Catalog) Sources(dataDir string) dataset.Sources {
	sources := make(dataset.Sources, len(c.Cities))
	for _, e := range c.Cities {
		path := e.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dataDir, path)
		}
		sources[models.City(e.Name)] = path
	}
	return sources
}
