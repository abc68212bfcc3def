package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// config is the contents of a configuration file, e.g.
//
//	given:
//	  mask: "0xffff"
//	  sq: "|$x| $x * $x"
//	output: [dec, hex]
type config struct {
	// Given maps variable names to expressions evaluated at startup.
	Given map[string]string `yaml:"given"`
	// Output lists the formats to print when no format flags are given.
	Output []string `yaml:"output"`
}

// loadConfig reads a configuration file. An empty path gives an empty
// configuration.
func loadConfig(path string) (*config, error) {
	var cfg config
	if path == "" {
		return &cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// formats returns the configured output formats.
func (c *config) formats() ([]format, error) {
	r := make([]format, 0, len(c.Output))
	for _, s := range c.Output {
		f, ok := formatNames[s]
		if !ok {
			return nil, fmt.Errorf("config: unknown output format %q (want dec, hex, or bin)", s)
		}
		r = append(r, f)
	}
	return r, nil
}

// given returns the configured variable definitions sorted by name.
func (c *config) given() [][2]string {
	r := make([][2]string, 0, len(c.Given))
	for k, v := range c.Given {
		r = append(r, [2]string{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i][0] < r[j][0] })
	return r
}

// configPath is the default configuration file.
func configPath() string {
	return env.Str("XC_CONFIG")
}

// historyPath is the file holding interactive history.
func historyPath() string {
	home, _ := os.UserHomeDir()
	return env.Str("XC_HISTORY", filepath.Join(home, ".xc_history"))
}
