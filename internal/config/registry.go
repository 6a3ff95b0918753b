package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eyoab/tarikoch/internal/entity"
)

// LoadRegistry reads the category registry from a JSON file. An empty path
// selects the compiled-in default registry.
func LoadRegistry(path string) (entity.Registry, error) {
	if path == "" {
		return entity.DefaultRegistry(), nil
	}

	contents, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("could not read registry file: %w", err)
	}

	var registry entity.Registry

	if err = json.Unmarshal(contents, &registry); err != nil {
		return nil, fmt.Errorf("could not parse registry file: %w", err)
	}

	if len(registry) == 0 {
		return nil, fmt.Errorf("registry file %s defines no categories", path)
	}

	for i, c := range registry {
		if c.ID == "" {
			return nil, fmt.Errorf("registry entry %d has no id", i)
		}
	}

	return registry, nil
}
