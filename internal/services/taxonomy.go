package services

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"kobis-search/internal/models"

	"github.com/pelletier/go-toml/v2"
)

// OtherContinent collects catalog countries the taxonomy does not list.
const OtherContinent = "기타"

//go:embed continents.toml
var defaultTaxonomy []byte

type Continent struct {
	Name      string   `toml:"name"`
	Countries []string `toml:"countries"`
}

// Taxonomy assigns countries to continents. A country belongs to the first
// continent that lists it.
type Taxonomy struct {
	Continents []Continent `toml:"continent"`

	index map[string]int
}

// LoadTaxonomy reads the taxonomy at path, or the embedded one when path is
// empty.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	if path == "" {
		return ParseTaxonomy(defaultTaxonomy)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return ParseTaxonomy(data)
}

func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if len(t.Continents) == 0 {
		return nil, errors.New("taxonomy defines no continents")
	}

	t.index = make(map[string]int)
	for i, c := range t.Continents {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("continent %d has no name", i+1)
		}
		if name == OtherContinent {
			return nil, fmt.Errorf("continent name %q is reserved", OtherContinent)
		}
		for _, country := range c.Countries {
			if _, seen := t.index[country]; !seen {
				t.index[country] = i
			}
		}
	}

	return &t, nil
}

// Group sorts countries into continents, keeping the taxonomy's continent
// order and the input order within each continent. Every continent is
// present, possibly empty; the OtherContinent group is appended only when it
// has members.
func (t *Taxonomy) Group(countries []string) []models.ContinentGroup {
	groups := make([]models.ContinentGroup, len(t.Continents))
	for i, c := range t.Continents {
		groups[i] = models.ContinentGroup{Continent: c.Name, Countries: []string{}}
	}

	var other []string
	for _, country := range countries {
		if i, ok := t.index[country]; ok {
			groups[i].Countries = append(groups[i].Countries, country)
			continue
		}
		other = append(other, country)
	}

	if len(other) > 0 {
		groups = append(groups, models.ContinentGroup{Continent: OtherContinent, Countries: other})
	}
	return groups
}
