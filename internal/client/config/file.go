package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/flowgate/internal/flagx"
)

// FileConfig is the on-disk shape of the config, shared by JSON and YAML.
type FileConfig struct {
	ServerURL     string `json:"server_url" yaml:"server_url"`
	ProxyURL      string `json:"proxy_url" yaml:"proxy_url"`
	SessionDBPath string `json:"session_db_path" yaml:"session_db_path"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	LogFormat     string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config. Read and decode
// errors panic, the CLI cannot start with a broken config.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	fc, err := readFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, err
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setIfNotEmpty(&cfg.ServerURL, fc.ServerURL)
	setIfNotEmpty(&cfg.ProxyURL, fc.ProxyURL)
	setIfNotEmpty(&cfg.SessionDBPath, fc.SessionDBPath)
	setIfNotEmpty(&cfg.LogLevel, fc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, fc.LogFormat)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
