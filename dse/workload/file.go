package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk YAML form of a workload.
type File struct {
	Groups []AccessGroup `yaml:"groups"`
}

// Load reads a YAML workload file. Unknown keys are rejected; the returned
// workload is not validated so callers can choose between Validate and
// Normalize.
func Load(path string) (Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML workload document.
func Parse(data []byte) (Workload, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	return Workload(f.Groups), nil
}
