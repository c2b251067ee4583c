// Package uuid generates version 4 UUIDs from the deterministic
// stream: sixteen bytes are read from the context PRNG (four draws)
// and the version/variant bits are stamped on top, so equal seeds
// yield equal UUID sequences.
package uuid

import (
	guuid "github.com/google/uuid"

	"github.com/marouaneMJH/faker/core"
)

type Generator struct {
	ctx *core.Context
}

func New(ctx *core.Context) *Generator {
	return &Generator{ctx: ctx}
}

func (g *Generator) Name() string { return "uuid" }

func (g *Generator) Generate() (any, error) {
	return g.UUID()
}

// UUID returns one random v4 UUID in canonical string form.
func (g *Generator) UUID() (string, error) {
	id, err := guuid.NewRandomFromReader(g.ctx.Rng())
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
