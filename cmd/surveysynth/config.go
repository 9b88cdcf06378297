package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/surveysynth/internal/survey"
)

var errOutputConflict = errors.New("xlsx path must differ from the csv output")

// DefaultOutput is where the CSV goes when nothing else is configured
const DefaultOutput = "synthetic_survey_data.csv"

// Config holds the settings of one generate run. It can be loaded from YAML;
// flags given on the command line win over the file.
type Config struct {
	Count int `yaml:"count"`

	// Seed is nil when the run should pick a random seed
	Seed *uint64 `yaml:"seed"`

	Output   string `yaml:"output"`
	XLSX     string `yaml:"xlsx"`
	Archive  string `yaml:"archive"`
	Progress bool   `yaml:"progress"`
}

// DefaultConfig returns the settings used with no flags and no file
func DefaultConfig() Config {
	return Config{
		Count:  survey.DefaultCount,
		Output: DefaultOutput,
	}
}

// LoadConfig reads a YAML file over base. Unknown keys are rejected.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	cfg := base
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings no run can use
func (c Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("%w: %d", survey.ErrInvalidCount, c.Count)
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if c.XLSX != "" {
		same, err := samePath(c.Output, c.XLSX)
		if err != nil {
			return err
		}
		if same {
			return fmt.Errorf("%w: %s", errOutputConflict, c.XLSX)
		}
	}
	return nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return filepath.Clean(absA) == filepath.Clean(absB), nil
}
