package wifictl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Bind         string `yaml:"bind"`
	Port         int    `yaml:"port"`
	Interface    string `yaml:"interface"`     // empty: discover the first wireless interface
	Platform     string `yaml:"platform"`      // empty: runtime.GOOS
	DataDir      string `yaml:"data_dir"`      // daemon state lives here
	HistoryDB    string `yaml:"history_db"`    // sqlite path, empty disables history
	ProbeURL     string `yaml:"probe_url"`     // connectivity probe target, empty disables
	APIToken     string `yaml:"api_token"`     // empty: minted at boot and logged once
	ScanInterval int    `yaml:"scan_interval"` // seconds between background scans, 0 disables
	Verbose      bool   `yaml:"verbose"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Bind:    "127.0.0.1",
		Port:    8080,
		DataDir: "./data",
	}
}

// LoadServerConfig reads a YAML file over the defaults. Flags parsed by
// the caller win over anything set here.
func LoadServerConfig(path string) (ServerConfig, error) {
	config := DefaultServerConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}
