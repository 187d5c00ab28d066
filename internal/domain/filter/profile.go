package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile overrides the searchable fields and thresholds of a kind.
type Profile struct {
	SearchableFields []string    `yaml:"searchableFields"`
	StatusThresholds *Thresholds `yaml:"statusThresholds"`
}

// LoadProfiles reads per-kind profiles from a YAML file keyed by kind name:
//
//	inventory:
//	  searchableFields: [name, sku, category, location]
//	  statusThresholds: {min: 10, max: 500}
func LoadProfiles(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kind profiles %s: %w", path, err)
	}
	return ParseProfiles(data)
}

// ParseProfiles decodes profile YAML.
func ParseProfiles(data []byte) (map[string]Profile, error) {
	profiles := map[string]Profile{}
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decode kind profiles: %w", err)
	}
	return profiles, nil
}
