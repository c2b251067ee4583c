// Package rng implements the deterministic pseudo-random number
// generator every faker generator draws from.
//
// The algorithm is Mulberry32: a 32-bit state advanced by a fixed
// additive constant on every draw, mixed with xor-shifts and multiplies
// into the output word. The implementation is bit-for-bit compatible
// with the reference Mulberry32 stream, so a given seed produces the
// same values here as in any other faithful Mulberry32 implementation.
package rng

import (
	"errors"
	"fmt"
	"math"
)

const mulberryIncrement uint32 = 0x6D2B79F5

var (
	// ErrInvalidRange is returned when a range draw is given min > max.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInvalidProbability is returned when a probability is outside [0, 1].
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrEmptySelection is returned when a choice is requested from no candidates.
	ErrEmptySelection = errors.New("empty selection")
)

// Rand is a seeded Mulberry32 generator. It is not safe for concurrent
// use; each generation session owns exactly one Rand.
type Rand struct {
	seed  uint32
	state uint32
}

// New returns a Rand whose state starts at seed. The seed is also
// remembered unchanged for Seed().
func New(seed uint32) *Rand {
	return &Rand{seed: seed, state: seed}
}

// Uint32 advances the state one step and returns the raw output word.
func (r *Rand) Uint32() uint32 {
	r.state += mulberryIncrement
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// Next advances the state one step and returns a float64 in [0, 1).
func (r *Rand) Next() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Int returns a value in [min, max], both ends inclusive. min == max is
// allowed and returns min without ambiguity (still consumes one draw).
func (r *Rand) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, min, max)
	}
	return int(math.Floor(r.Next()*float64(max-min+1))) + min, nil
}

// Float returns a value in [min, max).
func (r *Rand) Float(min, max float64) (float64, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, min, max)
	}
	return min + r.Next()*(max-min), nil
}

// FloatPrec returns a value in [min, max) rounded to precision decimal
// digits.
func (r *Rand) FloatPrec(min, max float64, precision int) (float64, error) {
	v, err := r.Float(min, max)
	if err != nil {
		return 0, err
	}
	pow := math.Pow(10, float64(precision))
	return math.Round(v*pow) / pow, nil
}

// Bool returns true with the given probability.
func (r *Rand) Bool(probability float64) (bool, error) {
	if probability < 0 || probability > 1 {
		return false, fmt.Errorf("%w: %v is not within [0, 1]", ErrInvalidProbability, probability)
	}
	return r.Next() < probability, nil
}

// Read fills p from the output word stream, four big-endian bytes per
// draw, and never fails. It exists so byte-oriented consumers such as
// uuid.NewRandomFromReader can share the deterministic stream.
func (r *Rand) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 4 {
		w := r.Uint32()
		for j := 0; j < 4 && i+j < len(p); j++ {
			p[i+j] = byte(w >> (24 - 8*j))
		}
	}
	return len(p), nil
}

// SetSeed replaces the state with seed. The construction seed reported
// by Seed() is left untouched; only an explicit New creates a Rand with
// a different remembered seed.
func (r *Rand) SetSeed(seed uint32) {
	r.state = seed
}

// Seed returns the seed this Rand was constructed with, regardless of
// any SetSeed calls since.
func (r *Rand) Seed() uint32 {
	return r.seed
}

// State returns the current internal state.
func (r *Rand) State() uint32 {
	return r.state
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](r *Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: cannot pick from zero candidates", ErrEmptySelection)
	}
	i, err := r.Int(0, len(items)-1)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// PickWeighted returns an element of items chosen proportionally to its
// weight. Weights must be non-negative with a positive total and match
// items in length.
func PickWeighted[T any](r *Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: cannot pick from zero candidates", ErrEmptySelection)
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("%w: %d candidates but %d weights", ErrInvalidRange, len(items), len(weights))
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			return zero, fmt.Errorf("%w: negative weight %v", ErrInvalidRange, w)
		}
		total += w
	}
	if total <= 0 {
		return zero, fmt.Errorf("%w: total weight must be positive", ErrInvalidRange)
	}
	target := r.Next() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i], nil
		}
	}
	return items[len(items)-1], nil
}

// Shuffle returns a new slice holding a Fisher-Yates permutation of
// items. The input is never modified. Shuffling an empty slice is valid
// and returns an empty slice.
func Shuffle[T any](r *Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j, _ := r.Int(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
