// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// cliConfig mirrors the solve flags. Zero fields leave the flag default.
type cliConfig struct {
	Input       string `yaml:"input"`
	Format      string `yaml:"format"`
	Direction   string `yaml:"direction"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
}

// loadConfig decodes path strictly: unknown keys are rejected.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// resolveConfig layers flag defaults, the config file and explicit flags, in
// increasing priority.
func resolveConfig(cmd *cobra.Command, args []string) (cliConfig, error) {
	flags := cmd.Flags()

	cfg := cliConfig{Input: defaultInput}
	cfg.Format, _ = flags.GetString("format")
	cfg.Direction, _ = flags.GetString("direction")
	cfg.LogLevel, _ = flags.GetString("log-level")
	cfg.MetricsFile, _ = flags.GetString("metrics-file")

	if path, _ := flags.GetString("config"); path != "" {
		file, err := loadConfig(path)
		if err != nil {
			return cfg, err
		}
		overlay(&cfg.Input, file.Input, false)
		overlay(&cfg.Format, file.Format, flags.Changed("format"))
		overlay(&cfg.Direction, file.Direction, flags.Changed("direction"))
		overlay(&cfg.LogLevel, file.LogLevel, flags.Changed("log-level"))
		overlay(&cfg.MetricsFile, file.MetricsFile, flags.Changed("metrics-file"))
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}

	return cfg, nil
}

func overlay(dst *string, fromFile string, flagSet bool) {
	if fromFile != "" && !flagSet {
		*dst = fromFile
	}
}
