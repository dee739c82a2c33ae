package filter

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/particle-header/internal/config"
)

var (
	ErrMissingCategory      = errors.New("item has no category")
	ErrUnsupportedCatalogue = errors.New("unsupported catalogue type")
)

//go:embed default_catalogue.yml
var defaultCatalogue []byte

// Catalogue is the on-disk form of a board.
type Catalogue struct {
	Filters []string `yaml:"filters"`
	Items   []Item   `yaml:"items"`
}

// LoadCatalogue reads a YAML or CSV catalogue and builds a board from it.
func LoadCatalogue(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue %s: %w", path, err)
	}

	var cat Catalogue
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		cat, err = parseYAML(data)
	case ".csv":
		cat, err = parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCatalogue, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalogue %s: %w", path, err)
	}
	return cat.Board()
}

// DefaultBoard returns the board built from the embedded catalogue.
func DefaultBoard() *Board {
	cat, err := parseYAML(defaultCatalogue)
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue: %v", err))
	}
	b, err := cat.Board()
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue: %v", err))
	}
	return b
}

func parseYAML(data []byte) (Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalogue{}, err
	}
	return cat, nil
}

func parseCSV(data []byte) (Catalogue, error) {
	var items []Item
	if err := gocsv.UnmarshalBytes(data, &items); err != nil {
		return Catalogue{}, err
	}
	return Catalogue{Items: items}, nil
}

// Board validates the catalogue and builds a board. Filters default to
// the wildcard followed by every distinct category label.
func (c Catalogue) Board() (*Board, error) {
	for i, it := range c.Items {
		if strings.TrimSpace(it.Category) == "" {
			return nil, fmt.Errorf("%w: item %d (%q)", ErrMissingCategory, i, it.Title)
		}
	}
	filters := c.Filters
	if len(filters) == 0 {
		filters = DeriveFilters(c.Items)
	}
	return NewBoard(filters, c.Items), nil
}

// DeriveFilters returns "all" followed by the sorted, de-duplicated,
// lower-cased comma-separated category labels of items.
func DeriveFilters(items []Item) []string {
	seen := map[string]bool{}
	var labels []string
	for _, it := range items {
		for _, part := range strings.Split(it.Category, ",") {
			l := strings.ToLower(strings.TrimSpace(part))
			if l == "" || seen[l] || l == config.WildcardFilter {
				continue
			}
			seen[l] = true
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)
	return append([]string{config.WildcardFilter}, labels...)
}
