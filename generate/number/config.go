package number

import "fmt"

const (
	defaultMax  = 1000
	defaultFMax = 1.0
)

// Config controls the number generator. Zero values select the
// defaults: integers in [0, 1000] and floats in [0, 1).
type Config struct {
	// Min and Max bound Int, both ends inclusive. Min == Max is
	// allowed.
	Min int
	Max int

	// FMin and FMax bound Float, max exclusive. FMin must be strictly
	// below FMax: a degenerate float range is rejected here even
	// though the raw PRNG would accept it.
	FMin float64
	FMax float64

	// Precision is the number of decimal digits Float rounds to.
	// Zero means no rounding.
	Precision int
}

// Normalize applies defaults and validates the ranges.
func (c *Config) Normalize() error {
	if c.Min == 0 && c.Max == 0 {
		c.Max = defaultMax
	}
	if c.FMin == 0 && c.FMax == 0 {
		c.FMax = defaultFMax
	}

	if c.Min > c.Max {
		return fmt.Errorf("invalid Min/Max configuration: %d > %d", c.Min, c.Max)
	}
	if c.FMin >= c.FMax {
		return fmt.Errorf("invalid FMin/FMax configuration: %v must be strictly below %v", c.FMin, c.FMax)
	}
	if c.Precision < 0 {
		return fmt.Errorf("invalid Precision configuration: %d must not be negative", c.Precision)
	}
	return nil
}
