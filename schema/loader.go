package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefinitionSet is the on-disk shape hosts use to extend the palette.
type DefinitionSet struct {
	Version     string            `json:"version,omitempty" yaml:"version,omitempty"`
	Definitions []BlockDefinition `json:"definitions" yaml:"definitions"`
}

// ParseDefinitions parses JSON or YAML into a definition overlay.
func ParseDefinitions(data []byte) (DefinitionSet, error) {
	var set DefinitionSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		// yaml can handle JSON too, so a single attempt is fine
		return set, err
	}
	for _, def := range set.Definitions {
		if err := def.validate(); err != nil {
			return set, fmt.Errorf("definition overlay: %w", err)
		}
	}
	return set, nil
}
