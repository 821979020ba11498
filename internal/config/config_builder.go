package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder merges configuration layers in place. Each with* call
// folds one source into the accumulated config; mergo only fills fields
// that are still zero, so sources merged earlier take precedence.
type configBuilder struct {
	config *StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{config: new(StructuredConfig)}
}

func (b *configBuilder) merge(layer *StructuredConfig, source string) *configBuilder {
	if err := mergo.Merge(b.config, layer); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("merging %s config: %w", source, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := new(StructuredConfig)
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.merge(envCfg, "env")
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.merge(ParseFlags(), "flag")
}

// withJSON merges the JSON file layer when one of the previously merged
// sources supplied a path. It must run after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	if b.config.JSONFilePath == "" {
		return b
	}

	jsonCfg, err := parseJSON(b.config.JSONFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.merge(jsonCfg, "json")
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	return b.config, b.config.validate()
}
