package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Inventory file errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported inventory format")
	ErrMalformedEntry    = errors.New("malformed inventory entry")
)

// record is one entry of an inventory file. An empty Type means unset.
type record struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Size        string `json:"size" yaml:"size"`
	Type        string `json:"type" yaml:"type"`
}

// Load reads items from path. The format is chosen by extension: .yaml and
// .yml hold a list of entries, .jsonl holds one JSON entry per line.
func Load(path string) ([]*types.Item, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".jsonl":
		return loadJSONL(path)
	default:
		return nil, fmt.Errorf("%s: %w %q (want .yaml, .yml or .jsonl)", path, ErrUnsupportedFormat, ext)
	}
}

// loadYAML decodes a YAML sequence of entries.
func loadYAML(path string) ([]*types.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrMalformedEntry, err)
	}

	items := make([]*types.Item, 0, len(records))
	for i, rec := range records {
		it, err := rec.toItem()
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// toItem converts a record through the item constructor so the clothing
// type is checked.
func (r record) toItem() (*types.Item, error) {
	opts := []types.ItemOption{types.WithSize(r.Size)}
	if strings.TrimSpace(r.Type) != "" {
		c, err := types.ParseClothingType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, r.Type)
		}
		opts = append(opts, types.WithType(c))
	}
	return types.NewItem(r.Name, r.Description, opts...)
}
