package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-colsum/reduce"
)

// config is the colsum configuration file. Flags given on the command line
// override it.
type config struct {
	reduce.Config `yaml:",inline"`

	By     string `yaml:"by"`
	Weight string `yaml:"weight"`
	Output string `yaml:"output"`
}

func defaultConfig() config {
	return config{Config: reduce.DefaultConfig()}
}

// loadConfig reads path over the defaults. Keys missing from the file keep
// their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads the --config file and applies every flag the user set.
func resolveConfig(cmd *cobra.Command) (config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("by") {
		cfg.By, _ = flags.GetString("by")
	}
	if flags.Changed("weight") {
		cfg.Weight, _ = flags.GetString("weight")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("keep-missing") {
		keep, _ := flags.GetBool("keep-missing")
		cfg.SkipMissing = !keep
	}
	if flags.Changed("threads") {
		cfg.Threads, _ = flags.GetInt("threads")
		if cfg.Threads < 1 {
			return cfg, fmt.Errorf("--threads must be >= 1, got %d", cfg.Threads)
		}
	}
	return cfg, nil
}
