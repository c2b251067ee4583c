package generate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marouaneMJH/faker/generate"
)

type staticGenerator struct {
	name  string
	value string
}

func (g *staticGenerator) Name() string { return g.name }

func (g *staticGenerator) Generate() (any, error) { return g.value, nil }

func TestRegistry(t *testing.T) {
	r := generate.NewRegistry()

	require.NoError(t, r.Register(&staticGenerator{name: "color", value: "blue"}))
	require.NoError(t, r.Register(&staticGenerator{name: "animal", value: "otter"}))

	err := r.Register(&staticGenerator{name: "color", value: "red"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")

	g, ok := r.Lookup("color")
	require.True(t, ok)
	v, err := g.Generate()
	require.NoError(t, err)
	require.Equal(t, "blue", v)

	_, ok = r.Lookup("mineral")
	require.False(t, ok)

	require.Equal(t, []string{"animal", "color"}, r.Names())
}
