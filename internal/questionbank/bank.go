// Package questionbank holds the static assessment definitions.
package questionbank

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/coaching-scheduler/internal/domain"
)

//go:embed data/*.yaml
var embedded embed.FS

// Bank is an immutable set of test definitions keyed by type
type Bank struct {
	tests map[domain.TestType]*domain.Test
}

// Load reads the definitions shipped with the binary
func Load() (*Bank, error) {
	return LoadFS(embedded, "data/*.yaml")
}

// LoadFS reads every file matching pattern in fsys
func LoadFS(fsys fs.FS, pattern string) (*Bank, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list test definitions: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files match %q", ErrInvalidDefinition, pattern)
	}

	bank := &Bank{tests: make(map[domain.TestType]*domain.Test, len(files))}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read test definition %s: %w", name, err)
		}

		test, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		if _, dup := bank.tests[test.Type]; dup {
			return nil, fmt.Errorf("%w: test %q defined twice", ErrInvalidDefinition, test.Type)
		}
		bank.tests[test.Type] = test
	}

	return bank, nil
}

// Get returns the definition of t
func (b *Bank) Get(t domain.TestType) (*domain.Test, error) {
	test, ok := b.tests[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTestNotFound, t)
	}
	return test, nil
}

// Types lists the available test types in name order
func (b *Bank) Types() []domain.TestType {
	types := make([]domain.TestType, 0, len(b.tests))
	for t := range b.tests {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Parse decodes and validates one YAML test definition.
// Every question is resolved to an explicit kind here, so scoring never has to guess.
func Parse(data []byte) (*domain.Test, error) {
	var raw testFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal YAML: %v", ErrInvalidDefinition, err)
	}

	test := raw.toDomain()
	if err := validateTest(test); err != nil {
		return nil, err
	}
	return test, nil
}
