package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = ".xcfo.yaml"

// FileConfig is the content of .xcfo.yaml. Pointer fields distinguish an
// explicit false from an absent key.
type FileConfig struct {
	Renderer             string   `yaml:"renderer"`
	Theme                string   `yaml:"theme"`
	NoColor              *bool    `yaml:"no_color"`
	Quiet                string   `yaml:"quiet"`
	Suppress             []string `yaml:"suppress"`
	PreserveUnbeautified *bool    `yaml:"preserve_unbeautified"`
	IncludeBinaryName    *bool    `yaml:"include_binary_name"`
	Report               []string `yaml:"report"`
	ReportPath           string   `yaml:"report_path"`
	FailOnError          *bool    `yaml:"fail_on_error"`
	Debug                *bool    `yaml:"debug"`
}

// FindConfigPath looks for .xcfo.yaml in cwd first, then in the xcfo
// directory under the user config dir. It returns "" when neither exists.
func FindConfigPath(cwd string, getenv func(string) string) string {
	local := filepath.Join(cwd, FileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome := ""
	if getenv != nil {
		configHome = getenv("XDG_CONFIG_HOME")
	}
	if configHome == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		configHome = dir
	}
	if configHome == "" || configHome == "/" {
		return ""
	}
	user := filepath.Join(configHome, "xcfo", FileName)
	if _, err := os.Stat(user); err == nil {
		return user
	}
	return ""
}

// Load reads the config file at path. An empty path yields an empty config.
// Unknown keys are rejected.
func Load(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
