// Package format expands the '#' digit templates used by the locale
// phone and zip format strings.
package format

import (
	"strconv"
	"strings"

	"github.com/marouaneMJH/faker/rng"
)

// FillDigits replaces every '#' in template with one random digit,
// left to right, one draw per digit.
func FillDigits(r *rng.Rand, template string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))
	for _, ch := range template {
		if ch != '#' {
			b.WriteRune(ch)
			continue
		}
		d, err := r.Int(0, 9)
		if err != nil {
			return "", err
		}
		b.WriteString(strconv.Itoa(d))
	}
	return b.String(), nil
}
