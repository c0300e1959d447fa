package record

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a YAML record file. Unknown fields are rejected so typos
// such as "birthdate:" surface as errors.
func LoadYAML(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes YAML record data.
func ParseYAML(data []byte) ([]Record, error) {
	var f file
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRecords
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(f.Records) == 0 {
		return nil, ErrNoRecords
	}
	return f.Records, nil
}
