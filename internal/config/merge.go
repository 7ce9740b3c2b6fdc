package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config section names.
const (
	keyDisplay = "display"
	keyData    = "data"
	keyLogging = "logging"
)

// MergeYAML loads a YAML file and merges it onto the target Config. Fields
// present in the overlay replace the target's; absent fields and unknown
// sections are left unchanged.
func MergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// decodeSection decodes one section onto a copy of the target's section so a
// malformed section leaves the target untouched.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyDisplay:
		v := target.Display
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Display = v
	case keyData:
		v := target.Data
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Data = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
