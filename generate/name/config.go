package name

import "fmt"

const (
	GenderFemale = "female"
	GenderMale   = "male"
)

// Config controls the name generator. The zero value is valid and
// means "draw the gender at random for every name".
type Config struct {
	// Gender restricts first names to one of the two name lists. Empty
	// means one boolean draw decides the gender per generated name.
	Gender string
}

// Normalize validates the configuration.
func (c *Config) Normalize() error {
	switch c.Gender {
	case "", GenderFemale, GenderMale:
		return nil
	default:
		return fmt.Errorf("invalid Gender configuration: %q must be %q or %q", c.Gender, GenderFemale, GenderMale)
	}
}
