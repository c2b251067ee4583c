// Package phone generates phone numbers from the locale format
// templates. Every '#' in a format costs exactly one digit draw.
package phone

import (
	"fmt"
	"strings"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate/internal/format"
	"github.com/marouaneMJH/faker/locale"
	"github.com/marouaneMJH/faker/rng"
)

// Config controls the phone generator.
type Config struct {
	// Format overrides the locale formats with a fixed template. When
	// set, generating a number costs no format pick, only the digit
	// draws. Must contain at least one '#'.
	Format string
}

// Normalize validates the configuration.
func (c *Config) Normalize() error {
	if c.Format != "" && !strings.ContainsRune(c.Format, '#') {
		return fmt.Errorf("invalid Format configuration: %q contains no '#' placeholder", c.Format)
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

func (g *Generator) Name() string { return "phone" }

func (g *Generator) Generate() (any, error) {
	return g.PhoneNumber()
}

// PhoneNumber draws a format (unless one is configured) and fills its
// digit placeholders.
func (g *Generator) PhoneNumber() (string, error) {
	tmpl := g.conf.Format
	if tmpl == "" {
		tbl := locale.Table(g.ctx.Locale())
		picked, err := rng.Pick(g.ctx.Rng(), tbl.PhoneFormats)
		if err != nil {
			return "", err
		}
		tmpl = picked
	}
	return format.FillDigits(g.ctx.Rng(), tmpl)
}
