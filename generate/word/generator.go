// Package word generates free text from the shared latin word list.
package word

import (
	"fmt"
	"strings"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/locale"
	"github.com/marouaneMJH/faker/rng"
)

const (
	defaultMinWords = 3
	defaultMaxWords = 10
)

// Config controls sentence length. Zero values select the 3..10 word
// default.
type Config struct {
	MinWords int
	MaxWords int
}

// Normalize applies defaults and validates the word count range.
func (c *Config) Normalize() error {
	if c.MinWords == 0 && c.MaxWords == 0 {
		c.MinWords = defaultMinWords
		c.MaxWords = defaultMaxWords
	}
	if c.MinWords < 1 {
		return fmt.Errorf("invalid MinWords configuration: %d must be at least 1", c.MinWords)
	}
	if c.MinWords > c.MaxWords {
		return fmt.Errorf("invalid MinWords/MaxWords configuration: %d > %d", c.MinWords, c.MaxWords)
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

func (g *Generator) Name() string { return "word" }

func (g *Generator) Generate() (any, error) {
	return g.Sentence()
}

// Word picks a single word.
func (g *Generator) Word() (string, error) {
	return rng.Pick(g.ctx.Rng(), locale.Words())
}

// Words picks n words, one draw each.
func (g *Generator) Words(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: word count %d must not be negative", rng.ErrInvalidRange, n)
	}
	out := make([]string, n)
	for i := range out {
		w, err := g.Word()
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// Sentence draws a word count in the configured range, then that many
// words, capitalizes the first and appends a period.
func (g *Generator) Sentence() (string, error) {
	n, err := g.ctx.Rng().Int(g.conf.MinWords, g.conf.MaxWords)
	if err != nil {
		return "", err
	}
	words, err := g.Words(n)
	if err != nil {
		return "", err
	}
	sentence := strings.Join(words, " ")
	return strings.ToUpper(sentence[:1]) + sentence[1:] + ".", nil
}
