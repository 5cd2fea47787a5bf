package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/usagetranslator/internal/converter"
)

// usageTableFile is the YAML layout of a usage table file:
//
//	divisors:
//	  EA000001GB0O: 1000
//	  SSX006NR: 1000
type usageTableFile struct {
	Divisors map[string]int `yaml:"divisors"`
}

// LoadUsageTable returns the usage table stored at path, or the built-in
// table when path is empty. The file replaces the built-in table entirely.
func LoadUsageTable(path string) (converter.UsageTable, error) {
	if path == "" {
		return converter.DefaultUsageTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return converter.UsageTable{}, fmt.Errorf("failed to read usage table: %w", err)
	}

	var file usageTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return converter.UsageTable{}, fmt.Errorf("failed to parse usage table %s: %w", path, err)
	}

	table, err := converter.NewUsageTable(file.Divisors)
	if err != nil {
		return converter.UsageTable{}, fmt.Errorf("invalid usage table %s: %w", path, err)
	}

	return table, nil
}
