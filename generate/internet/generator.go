// Package internet generates usernames, email addresses, domain names
// and network addresses.
package internet

import (
	"fmt"
	"strings"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate/name"
	"github.com/marouaneMJH/faker/locale"
	"github.com/marouaneMJH/faker/rng"
)

type Generator struct {
	ctx   *core.Context
	names *name.Generator
}

func New(ctx *core.Context) *Generator {
	// Config validation cannot fail on the zero value.
	names, _ := name.New(ctx, name.Config{})
	return &Generator{ctx: ctx, names: names}
}

func (g *Generator) Name() string { return "internet" }

func (g *Generator) Generate() (any, error) {
	return g.Email()
}

func (g *Generator) table() *locale.Set {
	return locale.Table(g.ctx.Locale())
}

// Username builds "first.last" from the locale name lists, lowercased.
// Draw order: gender, first name, last name.
func (g *Generator) Username() (string, error) {
	first, err := g.names.FirstName()
	if err != nil {
		return "", err
	}
	last, err := g.names.LastName()
	if err != nil {
		return "", err
	}
	username := strings.ToLower(first) + "." + strings.ToLower(last)
	return strings.ReplaceAll(username, " ", ""), nil
}

// Email combines a username with a free email domain.
func (g *Generator) Email() (string, error) {
	username, err := g.Username()
	if err != nil {
		return "", err
	}
	domain, err := rng.Pick(g.ctx.Rng(), g.table().FreeEmailDomains)
	if err != nil {
		return "", err
	}
	return username + "@" + domain, nil
}

// DomainName builds "lastname.tld" from a last name and a locale TLD.
func (g *Generator) DomainName() (string, error) {
	last, err := g.names.LastName()
	if err != nil {
		return "", err
	}
	tld, err := rng.Pick(g.ctx.Rng(), g.table().TLDs)
	if err != nil {
		return "", err
	}
	host := strings.ReplaceAll(strings.ToLower(last), " ", "")
	return host + "." + tld, nil
}

// IPv4 draws four octets in [0, 255].
func (g *Generator) IPv4() (string, error) {
	var octets [4]int
	for i := range octets {
		o, err := g.ctx.Rng().Int(0, 255)
		if err != nil {
			return "", err
		}
		octets[i] = o
	}
	return fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3]), nil
}

// MACAddress draws six octets in [0, 255].
func (g *Generator) MACAddress() (string, error) {
	var octets [6]int
	for i := range octets {
		o, err := g.ctx.Rng().Int(0, 255)
		if err != nil {
			return "", err
		}
		octets[i] = o
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		octets[0], octets[1], octets[2], octets[3], octets[4], octets[5]), nil
}
