package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"phpfix/internal/dialect"
	"phpfix/internal/token"
)

type manifest struct {
	Path   string
	Root   string
	Config fileConfig
}

type fileConfig struct {
	Php        phpConfig        `toml:"php"`
	Whitespace whitespaceConfig `toml:"whitespace"`
	Rules      rulesConfig      `toml:"rules"`
}

type phpConfig struct {
	Version string `toml:"version"`
}

type whitespaceConfig struct {
	Cutset string `toml:"cutset"`
}

type rulesConfig struct {
	Enabled []string `toml:"enabled"`
}

// findPhpfixToml walks up from startDir looking for phpfix.toml.
func findPhpfixToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "phpfix.toml")
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

// loadManifest finds and parses phpfix.toml. A missing manifest is not
// an error: every setting has a default.
func loadManifest(startDir string) (*manifest, bool, error) {
	manifestPath, ok, err := findPhpfixToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadFileConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// resolveRegistry picks the PHP version (--php flag, then manifest,
// then latest) and installs the matching kind registry.
func resolveRegistry(flagVersion string, m *manifest) (dialect.Version, error) {
	raw := flagVersion
	if raw == "" && m != nil {
		raw = m.Config.Php.Version
	}
	v := dialect.Latest
	if raw != "" {
		parsed, err := dialect.ParseVersion(raw)
		if err != nil {
			return dialect.Version{}, err
		}
		v = parsed
	}
	token.Configure(dialect.Registry(v))
	return v, nil
}
