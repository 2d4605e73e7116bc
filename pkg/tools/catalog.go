// Package tools holds the catalog of invocable tool names that UI actions
// may dispatch to. The catalog is declared in YAML and acts as an allowlist:
// a handler can only be bound to a declared tool, and a dispatch can only
// reach a bound one.
package tools

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParamSpec declares one parameter of a tool.
type ParamSpec struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type,omitempty" json:"type,omitempty"` // string, number, boolean, object, array
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// ToolSpec declares one invocable tool.
type ToolSpec struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Params      []ParamSpec `yaml:"params,omitempty" json:"params,omitempty"`
}

// Catalog is the full tool declaration file.
type Catalog struct {
	Tools []ToolSpec `yaml:"tools"`
}

// LoadCatalog reads and validates a YAML tool catalog. Unknown fields are
// rejected so typos in the file fail loudly at startup.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tool catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes catalog YAML from memory.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parse tool catalog: %w", err)
	}

	seen := make(map[string]bool, len(catalog.Tools))
	for _, tool := range catalog.Tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("tool catalog: tool with empty name")
		}
		if seen[tool.Name] {
			return nil, fmt.Errorf("tool catalog: duplicate tool %q", tool.Name)
		}
		seen[tool.Name] = true

		for _, p := range tool.Params {
			if p.Name == "" {
				return nil, fmt.Errorf("tool catalog: tool %q has a parameter with empty name", tool.Name)
			}
		}
	}
	return &catalog, nil
}
