package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configLayer is one configuration source, named for error messages.
type configLayer struct {
	name string
	cfg  *StructuredConfig
}

// configBuilder collects layers in priority order. A field keeps the value
// of the first layer that sets it, so env beats flags and flags beat the
// JSON file.
type configBuilder struct {
	layers []configLayer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]configLayer, 0, 3)}
}

func (b *configBuilder) add(name string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", name, err))
		return b
	}
	b.layers = append(b.layers, configLayer{name: name, cfg: cfg})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg, err := parseEnv()
	return b.add("env", cfg, err)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add("flags", ParseFlags(), nil)
}

// withJSON adds the file named by the last layer that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}
	cfg, err := parseJSON(path)
	return b.add("json "+path, cfg, err)
}

func (b *configBuilder) jsonPath() string {
	var path string
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			path = l.cfg.JSONFilePath
		}
	}
	return path
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.name, err)
		}
	}

	return merged, merged.validate()
}
