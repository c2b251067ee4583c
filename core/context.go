// Package core holds the generation context: the single authoritative
// owner of the (seed, locale, PRNG) triple for one generation session.
// Every generator is constructed against exactly one Context and draws
// randomness only through it, which is what makes two identically
// configured sessions produce identical output.
//
// A Context is meant for single-threaded use. Concurrent sessions each
// build their own Context; no locking is provided.
package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/marouaneMJH/faker/locale"
	"github.com/marouaneMJH/faker/rng"
)

var (
	// ErrInvalidSeed is returned when a negative seed is supplied.
	ErrInvalidSeed = errors.New("invalid seed")
	// ErrUnsupportedLocale is returned for locale codes outside the
	// supported set.
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

// Context carries the current seed and locale together with the one
// PRNG instance bound to that seed. The initial (seed, locale) pair
// resolved at construction is kept immutably for introspection.
type Context struct {
	seed   uint32
	locale string
	rng    *rng.Rand

	initialSeed   uint32
	initialLocale string
}

type settings struct {
	seed    int64
	seedSet bool
	locale  string
}

// Option configures New.
type Option func(*settings)

// WithSeed fixes the session seed. Negative values are rejected by New.
// Without this option the seed is derived from the current time, which
// deliberately gives up reproducibility across runs.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seedSet = true
	}
}

// WithLocale selects the locale for the session. Codes outside
// Locales() are rejected by New.
func WithLocale(code string) Option {
	return func(s *settings) {
		s.locale = code
	}
}

// New builds a Context. Validation failures happen before any state is
// constructed, so a failed New leaves nothing partially usable.
func New(opts ...Option) (*Context, error) {
	s := settings{locale: locale.Default}
	for _, opt := range opts {
		opt(&s)
	}

	if s.seedSet && s.seed < 0 {
		return nil, fmt.Errorf("%w: %d must not be negative", ErrInvalidSeed, s.seed)
	}
	if !locale.Supported(s.locale) {
		return nil, unsupportedLocaleError(s.locale)
	}

	seed := timeSeed()
	if s.seedSet {
		seed = uint32(s.seed)
	}

	return &Context{
		seed:          seed,
		locale:        s.locale,
		rng:           rng.New(seed),
		initialSeed:   seed,
		initialLocale: s.locale,
	}, nil
}

// Seed returns the seed currently in effect.
func (c *Context) Seed() uint32 {
	return c.seed
}

// Locale returns the locale currently in effect.
func (c *Context) Locale() string {
	return c.locale
}

// Rng returns the live PRNG. Callers draw from it; they never reseed
// or replace it, that is SetSeed's job.
func (c *Context) Rng() *rng.Rand {
	return c.rng
}

// InitialSeed returns the seed resolved when the Context was built,
// regardless of SetSeed or Reset calls since.
func (c *Context) InitialSeed() uint32 {
	return c.initialSeed
}

// InitialLocale returns the locale resolved when the Context was built.
func (c *Context) InitialLocale() string {
	return c.initialLocale
}

// SetSeed replaces the current seed and atomically rebuilds a fresh
// PRNG from it. Draws already handed out are unaffected.
func (c *Context) SetSeed(seed int64) error {
	if seed < 0 {
		return fmt.Errorf("%w: %d must not be negative", ErrInvalidSeed, seed)
	}
	c.seed = uint32(seed)
	c.rng = rng.New(c.seed)
	return nil
}

// SetLocale switches the session locale. An unsupported code leaves
// the previous locale in effect.
func (c *Context) SetLocale(code string) error {
	if !locale.Supported(code) {
		return unsupportedLocaleError(code)
	}
	c.locale = code
	return nil
}

// Clone returns an independent Context with the same seed and locale
// and a state-equal copy of the PRNG. The clone's next draw equals
// what the original's next draw would have been at clone time; after
// that each side advances on its own.
func (c *Context) Clone() *Context {
	r := *c.rng
	clone := *c
	clone.rng = &r
	return &clone
}

// Reset returns the locale to the library default and assigns a fresh
// time-derived seed with a matching new PRNG. It never restores the
// construction seed: callers wanting to replay the original session
// must keep that seed themselves (InitialSeed still reports it).
func (c *Context) Reset() {
	c.locale = locale.Default
	c.seed = timeSeed()
	c.rng = rng.New(c.seed)
}

// Locales returns the supported locale codes in sorted order.
func Locales() []string {
	return locale.Codes()
}

// LocaleSupported reports whether code is usable with WithLocale and
// SetLocale.
func LocaleSupported(code string) bool {
	return locale.Supported(code)
}

func unsupportedLocaleError(code string) error {
	return fmt.Errorf("%w: %q is not supported, must be one of [%s]",
		ErrUnsupportedLocale, code, strings.Join(locale.Codes(), ", "))
}

func timeSeed() uint32 {
	return uint32(time.Now().UnixNano())
}
