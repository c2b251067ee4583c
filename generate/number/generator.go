// Package number generates integers, floats and digits within
// configured bounds.
package number

import "github.com/marouaneMJH/faker/core"

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

func (g *Generator) Name() string { return "number" }

func (g *Generator) Generate() (any, error) {
	return g.Int()
}

// Int draws an integer in [Min, Max], both ends inclusive.
func (g *Generator) Int() (int, error) {
	return g.ctx.Rng().Int(g.conf.Min, g.conf.Max)
}

// Float draws a float in [FMin, FMax), rounded to Precision decimal
// digits when Precision is set.
func (g *Generator) Float() (float64, error) {
	if g.conf.Precision > 0 {
		return g.ctx.Rng().FloatPrec(g.conf.FMin, g.conf.FMax, g.conf.Precision)
	}
	return g.ctx.Rng().Float(g.conf.FMin, g.conf.FMax)
}

// Digit draws a single digit in [0, 9].
func (g *Generator) Digit() (int, error) {
	return g.ctx.Rng().Int(0, 9)
}
