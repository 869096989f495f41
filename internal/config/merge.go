package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput  = "output"
	keyLogging = "logging"
	keyCatalog = "catalog"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. Keys present in the file replace entire sections; absent keys and
// unknown keys leave target unchanged.
func ShallowMergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing YAML from %s: %w", path, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying section %q: %w", key, err)
		}
	}

	return nil
}

// decodeSection decodes node into a fresh value for the field named by key,
// so that a section in the file fully replaces the default.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyCatalog:
		var v map[string]NanoparticleEntry
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Catalog = v
	}
	return nil
}
