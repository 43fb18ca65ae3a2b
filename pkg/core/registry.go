package core

import (
	"context"
	"fmt"
	"slices"
)

// Generator is a validated, immutable fractal configuration that can produce
// its geometry. Generate is a pure function of the configuration; it may be
// called concurrently and repeatedly.
type Generator interface {
	Kind() Kind
	Parameters() ParameterSnapshot
	Generate(ctx context.Context) (Result, error)
}

// Factory constructs a Generator from flag-style key/value pairs. Missing keys
// take the package defaults; the returned Generator has already been validated.
type Factory func(cfg map[string]string) (Generator, error)

var generators = map[Kind]Factory{}

// Register adds a generator factory under the provided kind.
func Register(kind Kind, f Factory) {
	if kind == "" || f == nil {
		return
	}
	generators[kind] = f
}

// Kinds lists the registered kinds in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Lookup builds the generator registered for kind.
func Lookup(kind Kind, cfg map[string]string) (Generator, error) {
	f, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return f(cfg)
}

// Generate looks up kind, validates cfg and runs the generator once.
func Generate(ctx context.Context, kind Kind, cfg map[string]string) (Result, error) {
	g, err := Lookup(kind, cfg)
	if err != nil {
		return Result{}, err
	}
	return g.Generate(ctx)
}
