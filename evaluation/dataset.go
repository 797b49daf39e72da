package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format identifies a dataset encoding.
type Format string

const (
	// FormatJSON is a JSON encoded dataset.
	FormatJSON Format = "json"
	// FormatYAML is a YAML encoded dataset.
	FormatYAML Format = "yaml"
)

// Dataset is a named collection of test cases.
type Dataset struct {
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	TestCases []*TestCase `json:"test_cases" yaml:"test_cases"`
}

// Add appends test cases to the dataset, assigning IDs where missing.
func (d *Dataset) Add(cases ...*TestCase) {
	for _, tc := range cases {
		if tc.ID == "" {
			tc.ID = uuid.NewString()
		}
		d.TestCases = append(d.TestCases, tc)
	}
}

// LoadDataset reads a dataset from a .json, .yaml or .yml file.
func LoadDataset(path string) (*Dataset, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return ParseDataset(data, format)
}

// ParseDataset decodes a dataset. Every record is validated while decoding
// and test cases without an ID get a generated one.
func ParseDataset(data []byte, format Format) (*Dataset, error) {
	var raw Dataset
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}

	ds := &Dataset{Name: raw.Name}
	for i, tc := range raw.TestCases {
		if tc == nil {
			return nil, fmt.Errorf("test case %d is empty", i)
		}
		ds.Add(tc)
	}
	return ds, nil
}

func formatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported dataset file %q: expected .json, .yaml or .yml", path)
	}
}
