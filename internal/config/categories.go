package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// CategoryFile is the YAML layout for overriding the built-in category lists.
// Both lists are optional; an absent list keeps the built-in ordering.
type CategoryFile struct {
	Technology []Category `yaml:"technology"`
	Recipient  []Category `yaml:"recipient"`
}

// LoadCategories reads ordered category lists from a YAML file. YAML sequence
// order is preserved, so file order defines the first-match-wins contract.
func LoadCategories(path string) (*CategoryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var cf CategoryFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse categories file: %w", err)
	}

	for _, list := range [][]Category{cf.Technology, cf.Recipient} {
		for _, cat := range list {
			if cat.Label == "" {
				return nil, fmt.Errorf("category with empty label in %s", path)
			}
			if len(cat.Keywords) == 0 {
				return nil, fmt.Errorf("category %q has no keywords in %s", cat.Label, path)
			}
		}
	}

	if cf.Technology == nil {
		cf.Technology = TechnologyCategories
	}
	if cf.Recipient == nil {
		cf.Recipient = RecipientTypes
	}

	return &cf, nil
}
