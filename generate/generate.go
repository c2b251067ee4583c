// Package generate defines the contract every domain generator
// satisfies and the registry they are looked up in by name.
//
// A generator holds exactly one core.Context, supplied at construction
// and never swapped, and draws randomness only through it. Two
// generators of the same kind and configuration built over Contexts
// with equal (seed, locale) produce pointwise-equal output sequences;
// the order of draws inside a single Generate call is part of that
// contract.
package generate

import (
	"fmt"
	"sort"
)

// Generator is the uniform shape of every domain generator. Kinds with
// richer typed surfaces (FirstName, IPv4, ...) expose them alongside.
type Generator interface {
	// Name is the stable identifier used for registry lookup.
	Name() string
	// Generate produces one value using the generator's configuration.
	Generate() (any, error)
}

// Registry maps generator names to instances. It is an explicit object
// built by the composition root, not process-global state, so tests
// can construct and discard registries freely.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register adds g under its name. Registering the same name twice is
// an error.
func (r *Registry) Register(g Generator) error {
	name := g.Name()
	if _, ok := r.generators[name]; ok {
		return fmt.Errorf("generator %q is already registered", name)
	}
	r.generators[name] = g
	return nil
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// Names returns the registered generator names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
