// Package config loads simulation scenario files.
//
// The format follows the file extension:
//
//	.toml         github.com/BurntSushi/toml
//	.yaml / .yml  github.com/ghodss/yaml
//	.json         github.com/ghodss/yaml (JSON is a subset of YAML)
//
// Fields left out of a scenario fall back to the reference experiment:
// backend "list", weights uniform in [1,10), name "scenario-<i>".
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"

	"github.com/katalvlaran/spgraph/simulation"
)

var (
	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrNoScenarios indicates a file that decodes to zero scenarios.
	ErrNoScenarios = errors.New("config: no scenarios")
)

// Format names a scenario file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

const (
	defaultMinWeight = 1.0
	defaultMaxWeight = 10.0
)

// File is the decoded content of a scenario file.
type File struct {
	// Seed fixes the RNG for the whole batch when set.
	Seed *int64 `json:"seed,omitempty" toml:"seed"`

	Scenarios []simulation.Scenario `json:"scenarios" toml:"scenarios"`
}

// Default returns the reference experiment with no fixed seed.
func Default() File {
	return File{Scenarios: simulation.DefaultScenarios()}
}

// FormatOf maps a path's extension to its Format.
func FormatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Load reads, decodes and validates the scenario file at path.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return f, nil
}

// Parse decodes data in the given format, fills defaults and validates
// every scenario.
func Parse(data []byte, format Format) (File, error) {
	var f File
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	case FormatYAML, FormatJSON:
		err = yaml.Unmarshal(data, &f)
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return File{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if len(f.Scenarios) == 0 {
		return File{}, ErrNoScenarios
	}

	for i := range f.Scenarios {
		applyDefaults(&f.Scenarios[i], i)
		if err := f.Scenarios[i].Validate(); err != nil {
			return File{}, fmt.Errorf("scenario %d (%s): %w", i, f.Scenarios[i].Name, err)
		}
	}

	return f, nil
}

func applyDefaults(s *simulation.Scenario, i int) {
	if s.Name == "" {
		s.Name = fmt.Sprintf("scenario-%d", i)
	}
	if s.Backend == "" {
		s.Backend = simulation.BackendList
	}
	if s.MinWeight == 0 && s.MaxWeight == 0 {
		s.MinWeight, s.MaxWeight = defaultMinWeight, defaultMaxWeight
	}
}
