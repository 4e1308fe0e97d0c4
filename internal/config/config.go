package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

type Config struct {
	Report   Report   `yaml:"report"`
	Keywords Keywords `yaml:"keywords"`
	Output   Output   `yaml:"output"`
	Logging  Logging  `yaml:"logging"`
}

// Report identifies the submitting analyst team in the final report.
type Report struct {
	TeamName string   `yaml:"team_name" validate:"required"`
	Members  []string `yaml:"members" validate:"min=1,dive,required"`
}

// Keywords points at the sentiment taxonomy. The path is resolved
// against the current working directory unless absolute; it is an
// explicit input here, not a hard-coded lookup.
type Keywords struct {
	Path string `yaml:"path" validate:"required"`
}

// Output names the report files written into the dataset directory.
type Output struct {
	JSONFilename     string `yaml:"json_filename" validate:"required"`
	MarkdownFilename string `yaml:"markdown_filename" validate:"required"`
}

type Logging struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
}

var validate = validator.New()

// ConfigDir returns the XDG config directory for dealrank.
func ConfigDir() string {
	return filepath.Join(homeDir(), ".config", "dealrank")
}

// ResolveConfigPath finds the config file following priority:
// explicit path > ~/.config/dealrank/config.yaml > ./config.yaml.
// An empty return means no file exists and embedded defaults apply.
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	xdgConfig := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig, nil
	}

	cwdConfig := "config.yaml"
	if _, err := os.Stat(cwdConfig); err == nil {
		return cwdConfig, nil
	}

	return "", nil
}

// Load reads and parses a config YAML file. An empty path loads the
// embedded defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// parse parses YAML bytes over the defaults and validates the result.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Report: Report{
			TeamName: "Arryl's Team",
			Members:  []string{"Arryl"},
		},
		Keywords: Keywords{Path: "keywords.json"},
		Output: Output{
			JSONFilename:     "submission.json",
			MarkdownFilename: "report.md",
		},
		Logging: Logging{Level: "info"},
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
