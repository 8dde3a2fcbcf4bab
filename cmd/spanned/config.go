package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// toolConfig is the optional spanned.toml, discovered by walking up from the
// working directory. Flags override it.
type toolConfig struct {
	Input  inputConfig  `toml:"input"`
	Render renderConfig `toml:"render"`
}

type inputConfig struct {
	UTF8 bool `toml:"utf8"`
}

type renderConfig struct {
	TabWidth int  `toml:"tab-width"`
	Snippet  bool `toml:"snippet"`
}

func defaultConfig() toolConfig {
	return toolConfig{
		Input:  inputConfig{UTF8: true},
		Render: renderConfig{TabWidth: 4, Snippet: false},
	}
}

// findConfig walks up from startDir looking for spanned.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "spanned.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the defaults merged with spanned.toml when one exists.
func loadConfig(startDir string) (toolConfig, error) {
	cfg := defaultConfig()

	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return cfg, err
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return toolConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return toolConfig{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Render.TabWidth < 0 {
		return toolConfig{}, fmt.Errorf("%s: [render].tab-width must not be negative", path)
	}
	return cfg, nil
}
