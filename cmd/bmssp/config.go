package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional --config file's shape: defaults for flags a
// benchmarking harness would otherwise have to repeat on every invocation.
type fileConfig struct {
	Algo    string `yaml:"algo"`
	Trace   string `yaml:"trace"`
	Verbose bool   `yaml:"verbose"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)

	return cfg, err
}
