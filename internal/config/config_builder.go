package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type configBuilder struct {
	configs []*StructuredConfig
	rest    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. mergo only fills zero fields of the
// destination, so configs appended earlier take precedence.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading .env file: %w", err))
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, rest, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.rest = rest
	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, fileCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}
