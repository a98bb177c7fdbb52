package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] that reads flag defaults from
// a YAML mapping. Keys match flag names; hyphens and underscores are
// interchangeable:
//
//	log-level: debug
//	dist: cluster
//	pairs: 100000
//
// Command-line flags override config file values. A missing or empty file
// resolves nothing.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return config{}, nil
		}

		return nil, err
	}

	return config(values), nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	underscored := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := c[underscored]; ok {
		return value, nil
	}

	return nil, nil
}
