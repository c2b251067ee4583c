// Package faker is a deterministic fake-data generation library.
// Given a seed and a locale it produces reproducible pseudo-random
// names, phone numbers, addresses, UUIDs and numbers for tests and
// prototypes: two Fakers built with the same seed and locale return
// identical value sequences for identical call sequences.
package faker

import (
	"fmt"
	"strings"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate"
	"github.com/marouaneMJH/faker/generate/address"
	"github.com/marouaneMJH/faker/generate/boolean"
	"github.com/marouaneMJH/faker/generate/internet"
	"github.com/marouaneMJH/faker/generate/name"
	"github.com/marouaneMJH/faker/generate/number"
	"github.com/marouaneMJH/faker/generate/phone"
	"github.com/marouaneMJH/faker/generate/uuid"
	"github.com/marouaneMJH/faker/generate/word"
)

// Faker wires one generation context to every domain generator and a
// registry for lookup by kind name. It is single-threaded; concurrent
// callers each build their own Faker.
type Faker struct {
	ctx      *core.Context
	registry *generate.Registry

	name     *name.Generator
	phone    *phone.Generator
	address  *address.Generator
	number   *number.Generator
	boolean  *boolean.Generator
	uuid     *uuid.Generator
	internet *internet.Generator
	word     *word.Generator
}

// New builds a Faker. Without options the seed is time-derived and the
// locale is the library default; see core.WithSeed and core.WithLocale.
func New(opts ...core.Option) (*Faker, error) {
	ctx, err := core.New(opts...)
	if err != nil {
		return nil, err
	}
	return newFromContext(ctx)
}

func newFromContext(ctx *core.Context) (*Faker, error) {
	f := &Faker{ctx: ctx, registry: generate.NewRegistry()}

	var err error
	if f.name, err = name.New(ctx, name.Config{}); err != nil {
		return nil, err
	}
	if f.phone, err = phone.New(ctx, phone.Config{}); err != nil {
		return nil, err
	}
	f.address = address.New(ctx)
	if f.number, err = number.New(ctx, number.Config{}); err != nil {
		return nil, err
	}
	if f.boolean, err = boolean.New(ctx, boolean.Config{}); err != nil {
		return nil, err
	}
	f.uuid = uuid.New(ctx)
	f.internet = internet.New(ctx)
	if f.word, err = word.New(ctx, word.Config{}); err != nil {
		return nil, err
	}

	for _, g := range []generate.Generator{
		f.name, f.phone, f.address, f.number,
		f.boolean, f.uuid, f.internet, f.word,
	} {
		if err := f.registry.Register(g); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Context returns the underlying generation context.
func (f *Faker) Context() *core.Context { return f.ctx }

// Seed returns the seed currently in effect.
func (f *Faker) Seed() uint32 { return f.ctx.Seed() }

// Locale returns the locale currently in effect.
func (f *Faker) Locale() string { return f.ctx.Locale() }

// SetSeed reseeds the session; subsequent draws start over from seed.
func (f *Faker) SetSeed(seed int64) error { return f.ctx.SetSeed(seed) }

// SetLocale switches the session locale.
func (f *Faker) SetLocale(code string) error { return f.ctx.SetLocale(code) }

// Reset gives up reproducibility: default locale, fresh time-derived
// seed.
func (f *Faker) Reset() { f.ctx.Reset() }

// Clone returns an independent Faker over a state-equal copy of the
// context; drawing from one never advances the other.
func (f *Faker) Clone() (*Faker, error) {
	return newFromContext(f.ctx.Clone())
}

// Generate produces one value from the generator registered under
// kind; see Generators for the valid kinds.
func (f *Faker) Generate(kind string) (any, error) {
	g, ok := f.registry.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown generator %q, must be one of [%s]",
			kind, strings.Join(f.registry.Names(), ", "))
	}
	return g.Generate()
}

// Generators returns the registered generator kinds in sorted order.
func (f *Faker) Generators() []string { return f.registry.Names() }

// FirstName returns a random first name.
func (f *Faker) FirstName() (string, error) { return f.name.FirstName() }

// LastName returns a random last name.
func (f *Faker) LastName() (string, error) { return f.name.LastName() }

// FullName returns a random "first last" name.
func (f *Faker) FullName() (string, error) { return f.name.FullName() }

// Phone returns a random phone number in a locale format.
func (f *Faker) Phone() (string, error) { return f.phone.PhoneNumber() }

// Street returns a random street name.
func (f *Faker) Street() (string, error) { return f.address.Street() }

// StreetAddress returns a random building number plus street.
func (f *Faker) StreetAddress() (string, error) { return f.address.StreetAddress() }

// City returns a random city name.
func (f *Faker) City() (string, error) { return f.address.City() }

// ZipCode returns a random postal code.
func (f *Faker) ZipCode() (string, error) { return f.address.ZipCode() }

// Country returns a random country name in the locale's language.
func (f *Faker) Country() (string, error) { return f.address.Country() }

// Address returns a random full address line.
func (f *Faker) Address() (string, error) { return f.address.Address() }

// Latitude returns a random latitude with six decimals.
func (f *Faker) Latitude() (float64, error) { return f.address.Latitude() }

// Longitude returns a random longitude with six decimals.
func (f *Faker) Longitude() (float64, error) { return f.address.Longitude() }

// UUID returns a random version 4 UUID.
func (f *Faker) UUID() (string, error) { return f.uuid.UUID() }

// IntBetween returns a random integer in [min, max], both inclusive.
func (f *Faker) IntBetween(min, max int) (int, error) { return f.ctx.Rng().Int(min, max) }

// FloatBetween returns a random float in [min, max).
func (f *Faker) FloatBetween(min, max float64) (float64, error) { return f.ctx.Rng().Float(min, max) }

// Digit returns a random digit in [0, 9].
func (f *Faker) Digit() (int, error) { return f.number.Digit() }

// Bool returns true half the time.
func (f *Faker) Bool() (bool, error) { return f.boolean.Bool() }

// Username returns a random "first.last" username.
func (f *Faker) Username() (string, error) { return f.internet.Username() }

// Email returns a random email address.
func (f *Faker) Email() (string, error) { return f.internet.Email() }

// DomainName returns a random domain name.
func (f *Faker) DomainName() (string, error) { return f.internet.DomainName() }

// IPv4 returns a random IPv4 address.
func (f *Faker) IPv4() (string, error) { return f.internet.IPv4() }

// MACAddress returns a random MAC address.
func (f *Faker) MACAddress() (string, error) { return f.internet.MACAddress() }

// Word returns a random latin word.
func (f *Faker) Word() (string, error) { return f.word.Word() }

// Sentence returns a random latin sentence.
func (f *Faker) Sentence() (string, error) { return f.word.Sentence() }
