package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"salespipe/pkg/models"
)

// LoadMapping reads and parses a mapping file. JSON and YAML are both
// accepted, switched on the file extension.
func LoadMapping(filePath string) (*models.MappingConfig, error) {
	bytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file '%s': %w", filePath, err)
	}

	var conf *models.MappingConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		var m models.MappingConfig
		if err := yaml.Unmarshal(bytes, &m); err != nil {
			return nil, fmt.Errorf("failed to parse mapping file '%s': %w", filePath, err)
		}
		conf = &m
	default:
		conf, err = models.LoadMapping(bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mapping file '%s': %w", filePath, err)
		}
	}

	if err := validateMapping(conf); err != nil {
		return nil, fmt.Errorf("invalid mapping file '%s': %w", filePath, err)
	}
	return conf, nil
}

func validateMapping(m *models.MappingConfig) error {
	if len(m.Sources) == 0 {
		return fmt.Errorf("no sources declared")
	}
	for name, src := range m.Sources {
		switch src.Family {
		case models.FamilySales, models.FamilyProduct:
		default:
			return fmt.Errorf("source '%s': unknown family '%s'", name, src.Family)
		}
	}
	if len(m.SyntheticKey.Fields) == 0 {
		return fmt.Errorf("syntheticKey.fields must not be empty")
	}
	return nil
}
