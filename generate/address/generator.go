// Package address generates postal addresses and geographic
// coordinates from the locale street, city and country tables.
package address

import (
	"strconv"
	"strings"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate/internal/format"
	"github.com/marouaneMJH/faker/locale"
	"github.com/marouaneMJH/faker/rng"
)

const coordinatePrecision = 6

type Generator struct {
	ctx *core.Context
}

func New(ctx *core.Context) *Generator {
	return &Generator{ctx: ctx}
}

func (g *Generator) Name() string { return "address" }

func (g *Generator) Generate() (any, error) {
	return g.Address()
}

func (g *Generator) table() *locale.Set {
	return locale.Table(g.ctx.Locale())
}

// BuildingNumber draws a number in [1, 999].
func (g *Generator) BuildingNumber() (int, error) {
	return g.ctx.Rng().Int(1, 999)
}

// Street picks a street name.
func (g *Generator) Street() (string, error) {
	return rng.Pick(g.ctx.Rng(), g.table().Streets)
}

// StreetAddress combines a building number and a street name in the
// locale's order. Draw order: building number, then street.
func (g *Generator) StreetAddress() (string, error) {
	building, err := g.BuildingNumber()
	if err != nil {
		return "", err
	}
	street, err := g.Street()
	if err != nil {
		return "", err
	}
	tmpl, err := rng.Pick(g.ctx.Rng(), g.table().StreetFormats)
	if err != nil {
		return "", err
	}
	out := strings.ReplaceAll(tmpl, "{building}", strconv.Itoa(building))
	out = strings.ReplaceAll(out, "{street}", street)
	return out, nil
}

// City picks a city name.
func (g *Generator) City() (string, error) {
	return rng.Pick(g.ctx.Rng(), g.table().Cities)
}

// ZipCode draws a zip format and fills its digits.
func (g *Generator) ZipCode() (string, error) {
	tmpl, err := rng.Pick(g.ctx.Rng(), g.table().ZipFormats)
	if err != nil {
		return "", err
	}
	return format.FillDigits(g.ctx.Rng(), tmpl)
}

// Country picks a country name in the locale's language.
func (g *Generator) Country() (string, error) {
	return rng.Pick(g.ctx.Rng(), g.table().Countries)
}

// Latitude draws a coordinate in [-90, 90) rounded to six decimals.
func (g *Generator) Latitude() (float64, error) {
	return g.ctx.Rng().FloatPrec(-90, 90, coordinatePrecision)
}

// Longitude draws a coordinate in [-180, 180) rounded to six decimals.
func (g *Generator) Longitude() (float64, error) {
	return g.ctx.Rng().FloatPrec(-180, 180, coordinatePrecision)
}

// Address builds a full address line from the locale address format.
// Draw order: street address, zip code, city.
func (g *Generator) Address() (string, error) {
	street, err := g.StreetAddress()
	if err != nil {
		return "", err
	}
	zip, err := g.ZipCode()
	if err != nil {
		return "", err
	}
	city, err := g.City()
	if err != nil {
		return "", err
	}
	tmpl, err := rng.Pick(g.ctx.Rng(), g.table().AddressFormats)
	if err != nil {
		return "", err
	}
	out := strings.ReplaceAll(tmpl, "{street}", street)
	out = strings.ReplaceAll(out, "{zip}", zip)
	out = strings.ReplaceAll(out, "{city}", city)
	return out, nil
}
