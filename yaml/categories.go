// Package yaml loads idscrape category tables from YAML files using gopkg.in/yaml.v3.
//
// A category file is a mapping from category name to a list of element ids:
//
//	temperature:
//	  - t1
//	  - t2
//	pressure:
//	  - p1
package yaml

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/idscrape"
	"gopkg.in/yaml.v3"
)

// Ensure CategoryLoader implements idscrape.CategoryLoader at compile time.
var _ idscrape.CategoryLoader = (*CategoryLoader)(nil)

// CategoryLoader reads category tables from YAML files on disk.
type CategoryLoader struct{}

// NewCategoryLoader creates a new CategoryLoader.
func NewCategoryLoader() *CategoryLoader {
	return &CategoryLoader{}
}

// LoadCategories reads and flattens the category file at path.
func (l *CategoryLoader) LoadCategories(path string) (*idscrape.CategoryTable, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, idscrape.Errorf(idscrape.ECONFIG, "category file %q not found", path)
	} else if err != nil {
		return nil, idscrape.Errorf(idscrape.ECONFIG, "cannot read category file %q: %v", path, err)
	}

	groups, err := parseGroups(data)
	if err != nil {
		return nil, idscrape.Errorf(idscrape.ECONFIG, "category file %q: %s", path, idscrape.ErrorMessage(err))
	}
	return idscrape.NewCategoryTable(groups), nil
}

// ParseCategories flattens an in-memory category document.
func ParseCategories(data []byte) (*idscrape.CategoryTable, error) {
	groups, err := parseGroups(data)
	if err != nil {
		return nil, err
	}
	return idscrape.NewCategoryTable(groups), nil
}

// parseGroups decodes into a yaml.Node rather than a map so that category
// and id order match the file.
func parseGroups(data []byte) ([]idscrape.CategoryGroup, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, idscrape.Errorf(idscrape.ECONFIG, "invalid YAML: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, idscrape.Errorf(idscrape.ECONFIG, "empty category document")
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, idscrape.Errorf(idscrape.ECONFIG, "line %d: top level must be a mapping of category to ids", root.Line)
	}

	groups := make([]idscrape.CategoryGroup, 0, len(root.Content)/2)
	seen := make(map[string]bool, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := resolve(root.Content[i]), resolve(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, idscrape.Errorf(idscrape.ECONFIG, "line %d: category name must be a scalar", key.Line)
		}
		if seen[key.Value] {
			return nil, idscrape.Errorf(idscrape.ECONFIG, "line %d: category %q already defined", key.Line, key.Value)
		}
		seen[key.Value] = true
		if val.Kind != yaml.SequenceNode {
			return nil, idscrape.Errorf(idscrape.ECONFIG, "line %d: category %q must be a list of ids", val.Line, key.Value)
		}

		group := idscrape.CategoryGroup{Name: key.Value, IDs: make([]string, 0, len(val.Content))}
		for _, item := range val.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, idscrape.Errorf(idscrape.ECONFIG, "line %d: id in category %q must be a scalar", item.Line, key.Value)
			}
			group.IDs = append(group.IDs, item.Value)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// resolve follows alias nodes to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
