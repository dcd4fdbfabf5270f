// Package seed reads resource fixtures from YAML files.
package seed

import (
	"fmt"
	"os"

	"github.com/deppfellow/resource-api/internal/model"
	"gopkg.in/yaml.v3"
)

// File is the layout of a seed file:
//
//	resources:
//	  - title: Getting started
//	    content: ...
//	    description: ...
//	    type: guide
//	    icon: book
type File struct {
	Resources []model.ResourceFields `yaml:"resources"`
}

// Load reads and parses a seed file. Entries are not validated here;
// SeedService does that before touching the database.
func Load(path string) ([]model.ResourceFields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	if len(f.Resources) == 0 {
		return nil, fmt.Errorf("seed file %s has no resources defined", path)
	}

	return f.Resources, nil
}
