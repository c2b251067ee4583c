// Package boolean generates booleans with a configurable probability
// of true.
package boolean

import (
	"fmt"

	"github.com/marouaneMJH/faker/core"
)

const defaultProbability = 0.5

// Config controls the boolean generator. A zero Probability selects
// the 0.5 default; an always-false generator is not expressible here,
// use the number generator and compare instead.
type Config struct {
	Probability float64
}

// Normalize applies the default and validates the probability.
func (c *Config) Normalize() error {
	if c.Probability == 0 {
		c.Probability = defaultProbability
	}
	if c.Probability < 0 || c.Probability > 1 {
		return fmt.Errorf("invalid Probability configuration: %v is not within [0, 1]", c.Probability)
	}
	return nil
}

type Generator struct {
	ctx  *core.Context
	conf Config
}

func New(ctx *core.Context, conf Config) (*Generator, error) {
	if err := conf.Normalize(); err != nil {
		return nil, err
	}
	return &Generator{ctx: ctx, conf: conf}, nil
}

func (g *Generator) Name() string { return "boolean" }

func (g *Generator) Generate() (any, error) {
	return g.Bool()
}

// Bool draws true with the configured probability.
func (g *Generator) Bool() (bool, error) {
	return g.ctx.Rng().Bool(g.conf.Probability)
}
