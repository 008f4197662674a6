// Package config loads generation settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Generation holds the code generation settings.
type Generation struct {
	// Package is the name of the generated package.
	Package string `yaml:"package"`
	// Output is the file the generated source is written to. Empty means
	// standard output.
	Output string `yaml:"output"`
	// Header is an optional comment line placed above the package clause.
	Header string `yaml:"header"`
	// ResolveImports enables recursive compilation of <import> references.
	ResolveImports *bool `yaml:"resolve_imports"`
}

// Default returns the default generation settings.
func Default() Generation {
	resolve := true

	return Generation{
		Package:        "schema",
		ResolveImports: &resolve,
	}
}

// ImportsEnabled reports whether import resolution is on.
func (g Generation) ImportsEnabled() bool {
	return g.ResolveImports == nil || *g.ResolveImports
}

// LoadFile loads and parses a YAML settings file from the given path.
func LoadFile(path string) (Generation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Generation{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into generation settings, applying defaults for
// anything left unset.
func Parse(data []byte) (Generation, error) {
	g := Default()

	if err := yaml.Unmarshal(data, &g); err != nil {
		return Generation{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if g.Package == "" {
		g.Package = "schema"
	}

	return g, nil
}
