// Package manifest loads named fragstring descriptors from YAML.
//
// Services that share descriptors keep them in one file:
//
//	descriptors:
//	  user-key: "%s%d"
//	  audit-line: "%s%d%s?*"
//
// so producers and consumers compile the same descriptor by name instead
// of repeating the grammar string at every call site.
package manifest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/fragstr/frag"
)

// File is a parsed descriptor manifest.
type File struct {
	Descriptors map[string]string `yaml:"descriptors"`

	registry *frag.Registry
}

// Load parses a manifest from YAML.
func Load(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("manifest: parse yaml: %w", err)
	}
	if len(f.Descriptors) == 0 {
		return nil, fmt.Errorf("manifest: no descriptors defined")
	}
	f.registry = frag.NewRegistry()
	return &f, nil
}

// LoadFile reads and parses a manifest file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	return Load(data)
}

// Names returns the descriptor names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Descriptors))
	for name := range f.Descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema compiles the named descriptor. Compilation is cached per File, so
// repeated lookups of the same name return the same *frag.Schema.
func (f *File) Schema(name string) (*frag.Schema, error) {
	descriptor, ok := f.Descriptors[name]
	if !ok {
		return nil, fmt.Errorf("manifest: unknown descriptor %q", name)
	}
	schema, err := f.registry.Compile(descriptor)
	if err != nil {
		return nil, fmt.Errorf("manifest: descriptor %q: %w", name, err)
	}
	return schema, nil
}

// Validate compiles every descriptor and returns one error per failure,
// keyed in name order. An empty slice means the manifest is well-formed.
func (f *File) Validate() []error {
	var errs []error
	for _, name := range f.Names() {
		if _, err := f.Schema(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
