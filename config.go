package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// loadYAMLConfig resolves flags from a YAML mapping. A key inside a section
// named after the running command wins over the same top-level key:
//
//	workers: 4
//	overlay:
//	  strength: 6
func loadYAMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode configuration: %w", err)
	}

	var resolver kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if section, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := section[flag.Name]; ok {
					return scalar(flag.Name, v)
				}
			}
		}
		if v, ok := values[flag.Name]; ok {
			return scalar(flag.Name, v)
		}
		return nil, nil
	}
	return resolver, nil
}

func scalar(name string, v any) (any, error) {
	switch v.(type) {
	case map[string]any, []any:
		return nil, fmt.Errorf("configuration key %q must be a scalar", name)
	case nil:
		return nil, nil
	}
	return fmt.Sprint(v), nil
}
