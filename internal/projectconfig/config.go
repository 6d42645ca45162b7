package projectconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedExtension = errors.New("unsupported project file extension")

// Config is the content of a project file. Source paths are relative to the
// directory containing the project file.
type Config struct {
	Sources  []string `json:"sources" toml:"sources" yaml:"sources"`
	Format   string   `json:"format,omitempty" toml:"format,omitempty" yaml:"format,omitempty"`
	LogLevel string   `json:"logLevel,omitempty" toml:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

type encoding string

const (
	encodingJSON encoding = "json"
	encodingTOML encoding = "toml"
	encodingYAML encoding = "yaml"
)

func Default() *Config {
	return &Config{
		Sources:  []string{"main.pa"},
		Format:   "pretty",
		LogLevel: "info",
	}
}

func SaveConfigFile(path string, config *Config) error {
	enc, err := encodingOf(path)
	if err != nil {
		return err
	}

	data, err := marshal(enc, config)
	if err != nil {
		return fmt.Errorf("marshal project file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save project file: %w", err)
	}

	return nil
}

func ReadConfigFile(path string) (*Config, error) {
	enc, err := encodingOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	var config Config
	if err := unmarshal(enc, data, &config); err != nil {
		return nil, fmt.Errorf("unmarshal project file: %w", err)
	}

	return &config, nil
}

// SourcePaths resolves the configured sources against the directory of the
// project file they were read from.
func (c *Config) SourcePaths(projectFilePath string) []string {
	baseDir := filepath.Dir(projectFilePath)

	paths := make([]string, 0, len(c.Sources))
	for _, source := range c.Sources {
		if filepath.IsAbs(source) {
			paths = append(paths, source)
			continue
		}

		paths = append(paths, filepath.Join(baseDir, source))
	}

	return paths
}

func encodingOf(path string) (encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return encodingJSON, nil

	case ".toml":
		return encodingTOML, nil

	case ".yaml", ".yml":
		return encodingYAML, nil

	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedExtension)
	}
}

func marshal(enc encoding, config *Config) ([]byte, error) {
	switch enc {
	case encodingJSON:
		return json.MarshalIndent(config, "", "  ")

	case encodingTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil

	case encodingYAML:
		return yaml.Marshal(config)

	default:
		panic("marshal: unknown encoding " + string(enc))
	}
}

func unmarshal(enc encoding, data []byte, config *Config) error {
	switch enc {
	case encodingJSON:
		return json.Unmarshal(data, config)

	case encodingTOML:
		_, err := toml.Decode(string(data), config)
		return err

	case encodingYAML:
		return yaml.Unmarshal(data, config)

	default:
		panic("unmarshal: unknown encoding " + string(enc))
	}
}
