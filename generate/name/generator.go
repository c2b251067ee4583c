// Package name generates person names from the locale name lists.
package name

import (
	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/locale"
	"github.com/marouaneMJH/faker/rng"
)

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

func (g *Generator) Name() string { return "name" }

// Generate returns a full name.
func (g *Generator) Generate() (any, error) {
	return g.FullName()
}

// FirstName draws one first name. When no gender is configured the
// gender itself costs one boolean draw before the name pick.
func (g *Generator) FirstName() (string, error) {
	tbl := locale.Table(g.ctx.Locale())

	gender := g.conf.Gender
	if gender == "" {
		female, err := g.ctx.Rng().Bool(0.5)
		if err != nil {
			return "", err
		}
		gender = GenderMale
		if female {
			gender = GenderFemale
		}
	}

	if gender == GenderFemale {
		return rng.Pick(g.ctx.Rng(), tbl.FirstNamesFemale)
	}
	return rng.Pick(g.ctx.Rng(), tbl.FirstNamesMale)
}

// LastName draws one last name.
func (g *Generator) LastName() (string, error) {
	tbl := locale.Table(g.ctx.Locale())
	return rng.Pick(g.ctx.Rng(), tbl.LastNames)
}

// FullName draws a first name followed by a last name.
func (g *Generator) FullName() (string, error) {
	first, err := g.FirstName()
	if err != nil {
		return "", err
	}
	last, err := g.LastName()
	if err != nil {
		return "", err
	}
	return first + " " + last, nil
}
