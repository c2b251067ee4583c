package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate/number"
)

func TestConfig_Normalize(t *testing.T) {
	type testcase struct {
		config    number.Config
		expect    number.Config
		expectErr bool
	}

	testcases := map[string]testcase{
		"zero value gets defaults": {
			config: number.Config{},
			expect: number.Config{Max: 1000, FMax: 1},
		},
		"explicit bounds kept": {
			config: number.Config{Min: 5, Max: 10, FMin: 0.5, FMax: 2},
			expect: number.Config{Min: 5, Max: 10, FMin: 0.5, FMax: 2},
		},
		"integer min equals max is allowed": {
			config: number.Config{Min: 7, Max: 7, FMax: 1},
			expect: number.Config{Min: 7, Max: 7, FMax: 1},
		},
		"inverted integer range rejected": {
			config:    number.Config{Min: 10, Max: 5},
			expectErr: true,
		},
		"degenerate float range rejected": {
			config:    number.Config{Max: 10, FMin: 3, FMax: 3},
			expectErr: true,
		},
		"inverted float range rejected": {
			config:    number.Config{Max: 10, FMin: 3, FMax: 1},
			expectErr: true,
		},
		"negative precision rejected": {
			config:    number.Config{Max: 10, FMax: 1, Precision: -1},
			expectErr: true,
		},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			err := tc.config.Normalize()
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, tc.config)
		})
	}
}

func newGenerator(t *testing.T, seed int64, conf number.Config) *number.Generator {
	t.Helper()
	ctx, err := core.New(core.WithSeed(seed))
	require.NoError(t, err)
	g, err := number.New(ctx, conf)
	require.NoError(t, err)
	return g
}

func TestGenerator_Int(t *testing.T) {
	g := newGenerator(t, 3, number.Config{Min: -3, Max: 3})
	for i := 0; i < 200; i++ {
		v, err := g.Int()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
	}
}

func TestGenerator_Float(t *testing.T) {
	g := newGenerator(t, 3, number.Config{Max: 1, FMin: 1.5, FMax: 2.5, Precision: 2})
	for i := 0; i < 200; i++ {
		v, err := g.Float()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 1.5)
		// Rounding to two decimals may land exactly on the upper bound.
		require.LessOrEqual(t, v, 2.5)
		require.Equal(t, math.Round(v*100)/100, v, "rounded to two decimals")
	}
}

func TestGenerator_Digit(t *testing.T) {
	g := newGenerator(t, 3, number.Config{})
	for i := 0; i < 100; i++ {
		v, err := g.Digit()
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 9)
	}
}
