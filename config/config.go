// Package config loads optional ptbtool configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/treebank/ptb"
)

// DefaultFileName is looked up in the working directory when no config
// path is given explicitly.
const DefaultFileName = ".ptbtool.toml"

// Transform names accepted in the transforms list.
const (
	TransformRemoveEmpty = "remove-empty"
	TransformSimplify    = "simplify"
	TransformAddRoot     = "add-root"
)

// Config holds tool-wide defaults. Command-line flags override it.
type Config struct {
	// RootLabel is the label used by the add-root transform.
	RootLabel string `toml:"root_label"`
	// Transforms are applied to every tree, in order.
	Transforms []string `toml:"transforms"`
	// Extensions are the file extensions treated as treebank sources by
	// the language server.
	Extensions []string `toml:"extensions"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		RootLabel:  ptb.DefaultRootLabel,
		Extensions: []string{".mrg", ".prd", ".ptb"},
	}
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultFileName from the working directory. A
// missing file is not an error; the defaults are returned.
func LoadDefault() (Config, error) {
	cfg, err := Load(DefaultFileName)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func (c Config) validate() error {
	for _, name := range c.Transforms {
		switch name {
		case TransformRemoveEmpty, TransformSimplify, TransformAddRoot:
		default:
			return fmt.Errorf("unknown transform %q", name)
		}
	}
	if c.RootLabel == "" {
		return fmt.Errorf("root_label must not be empty")
	}
	return nil
}

// Apply runs the configured transforms on a tree, in order. It returns
// ptb.ErrEmptyTree when remove-empty deletes the whole tree.
func (c Config) Apply(tree *ptb.Node) (*ptb.Node, error) {
	var err error
	for _, name := range c.Transforms {
		switch name {
		case TransformRemoveEmpty:
			tree, err = ptb.RemoveEmptyElements(tree)
			if err != nil {
				return nil, err
			}
		case TransformSimplify:
			tree = ptb.SimplifyLabels(tree)
		case TransformAddRoot:
			tree = ptb.AddRoot(tree, c.RootLabel)
		}
	}
	return tree, nil
}

// IsTreebankFile reports whether path has one of the configured
// treebank extensions.
func (c Config) IsTreebankFile(path string) bool {
	for _, ext := range c.Extensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}
