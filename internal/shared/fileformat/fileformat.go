// Package fileformat reads TOML, YAML and JSON documents into tagged structs.
package fileformat

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// ReadFile lê um arquivo regular. kind aparece nas mensagens de erro ("config", "dataset").
func ReadFile(path, kind string) ([]byte, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s file: %w", kind, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s file: %w", kind, err)
	}
	return data, nil
}

// Decode parses data into v. format is a file extension (".toml") or a bare
// name ("yaml"); an empty format means JSON.
//
// TOML goes through a generic tree and then JSON, so integer literals such as
// `price = 50` land in float64 fields. v must therefore carry json tags
// matching its toml keys.
func Decode(data []byte, format string, v any) error {
	format = strings.TrimPrefix(strings.ToLower(format), ".")

	switch format {
	case "toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return fmt.Errorf("error parsing TOML: %w", err)
		}
		raw, err := json.Marshal(tree.ToMap())
		if err != nil {
			return fmt.Errorf("error parsing TOML: %w", err)
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("error parsing TOML: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing YAML: %w", err)
		}
	case "json", "":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("error parsing JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedFormat, format)
	}
	return nil
}
