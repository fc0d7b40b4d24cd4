package models

import "encoding/json"

// MappingConfig represents the root of the mapping file. It declares the
// expected schema of every source extract and the settings the pipeline
// needs to harmonize them into one fact table.
type MappingConfig struct {
	Version      string                `json:"version" yaml:"version"`
	FactTable    string                `json:"factTable" yaml:"factTable"`
	Sources      map[string]SourceSpec `json:"sources" yaml:"sources"`
	SyntheticKey SyntheticKey          `json:"syntheticKey" yaml:"syntheticKey"`
}

// SourceSpec declares how one raw extract maps onto the canonical schema.
// Coercion column lists use canonical (post-rename) names.
type SourceSpec struct {
	Family         string            `json:"family" yaml:"family"`
	Rename         map[string]string `json:"rename" yaml:"rename"`
	DropColumns    []string          `json:"dropColumns" yaml:"dropColumns"`
	DateColumns    map[string]string `json:"dateColumns" yaml:"dateColumns"`
	DecimalColumns []string          `json:"decimalColumns" yaml:"decimalColumns"`
	IntegerColumns []string          `json:"integerColumns" yaml:"integerColumns"`
	TextColumns    []string          `json:"textColumns" yaml:"textColumns"`
	BoolColumns    []string          `json:"boolColumns" yaml:"boolColumns"`
}

// Source families. Sales-family tables are concatenated; the product family
// is deduplicated and used as the enrichment side of the join.
const (
	FamilySales   = "sales"
	FamilyProduct = "product"
)

// SyntheticKey configures deterministic identifier derivation for records
// that lack a natural order_id. Fields is an ordered tuple of canonical
// column names whose values are concatenated and hashed.
type SyntheticKey struct {
	Prefix string   `json:"prefix" yaml:"prefix"`
	Fields []string `json:"fields" yaml:"fields"`
}

func LoadMapping(data []byte) (*MappingConfig, error) {
	var m MappingConfig
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
