package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hepkit/decfile"
	"github.com/hepkit/decfile/pkg/registry"
)

// Config is the optional yaml configuration shared by all commands.
type Config struct {
	// Tolerance is the epsilon over 1.0 for branching-fraction sums.
	Tolerance float64 `yaml:"tolerance"`
	// MaxDepth bounds chain traversals (default 1000).
	MaxDepth int `yaml:"max_depth"`
	// StableParticles replaces the built-in stable set when non-empty.
	StableParticles []string `yaml:"stable_particles"`
	// ExtraModels extends the recognized decay-model names.
	ExtraModels []string `yaml:"extra_models"`
	// NoConjugates skips CDecay materialization.
	NoConjugates bool `yaml:"no_conjugates"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// newParser builds a decfile.Parser from the --config file and the CLI
// logger.
func newParser(cmd *cobra.Command) (*decfile.Parser, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	opts := []decfile.Option{decfile.WithLogger(newLogger(cmd))}
	if cfg.Tolerance > 0 {
		opts = append(opts, decfile.WithTolerance(cfg.Tolerance))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, decfile.WithMaxDepth(cfg.MaxDepth))
	}
	if len(cfg.StableParticles) > 0 {
		opts = append(opts, decfile.WithStableParticles(cfg.StableParticles...))
	}
	if len(cfg.ExtraModels) > 0 {
		opts = append(opts, decfile.WithModels(cfg.ExtraModels...))
	}
	if cfg.NoConjugates {
		opts = append(opts, decfile.WithoutConjugates())
	}
	return decfile.New(opts...), nil
}

// parseArg compiles the decay file named by the first positional argument.
func parseArg(cmd *cobra.Command, args []string) (*registry.Registry, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("missing decay file argument")
	}
	p, err := newParser(cmd)
	if err != nil {
		return nil, err
	}
	return p.ParseFile(args[0])
}
