package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marouaneMJH/faker/core"
)

func TestNew_Defaults(t *testing.T) {
	ctx, err := core.New()
	require.NoError(t, err)
	require.Equal(t, "en", ctx.Locale())
	require.Equal(t, ctx.Seed(), ctx.InitialSeed())
	require.Equal(t, "en", ctx.InitialLocale())
	require.NotNil(t, ctx.Rng())
}

func TestNew_Validation(t *testing.T) {
	type testcase struct {
		opts      []core.Option
		expectErr error
	}

	testcases := map[string]testcase{
		"negative seed rejected": {
			opts:      []core.Option{core.WithSeed(-1)},
			expectErr: core.ErrInvalidSeed,
		},
		"unsupported locale rejected": {
			opts:      []core.Option{core.WithLocale("xx")},
			expectErr: core.ErrUnsupportedLocale,
		},
		"zero seed is valid": {
			opts: []core.Option{core.WithSeed(0)},
		},
		"supported locale accepted": {
			opts: []core.Option{core.WithSeed(42), core.WithLocale("fr")},
		},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			ctx, err := core.New(tc.opts...)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				require.Nil(t, ctx)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, ctx)
		})
	}
}

func TestNew_UnsupportedLocaleEnumeratesCodes(t *testing.T) {
	_, err := core.New(core.WithLocale("xx"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "ar, de, en, es, fr")
}

func TestContext_Reproducibility(t *testing.T) {
	a, err := core.New(core.WithSeed(42), core.WithLocale("en"))
	require.NoError(t, err)
	b, err := core.New(core.WithSeed(42), core.WithLocale("en"))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Rng().Uint32(), b.Rng().Uint32(), "draw %d", i)
	}
}

func TestContext_SetSeed(t *testing.T) {
	ctx, err := core.New(core.WithSeed(42))
	require.NoError(t, err)

	before := ctx.Rng().Uint32()

	require.NoError(t, ctx.SetSeed(12345))
	require.Equal(t, uint32(12345), ctx.Seed())
	require.Equal(t, uint32(42), ctx.InitialSeed())

	// The rebuilt PRNG starts over from the new seed.
	fresh, err := core.New(core.WithSeed(12345))
	require.NoError(t, err)
	require.Equal(t, fresh.Rng().Uint32(), ctx.Rng().Uint32())

	// Reseeding never retroactively alters values already drawn.
	replay, err := core.New(core.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, before, replay.Rng().Uint32())
}

func TestContext_SetSeedRejectsNegative(t *testing.T) {
	ctx, err := core.New(core.WithSeed(42))
	require.NoError(t, err)

	require.ErrorIs(t, ctx.SetSeed(-5), core.ErrInvalidSeed)
	require.Equal(t, uint32(42), ctx.Seed())
}

func TestContext_SetLocale(t *testing.T) {
	ctx, err := core.New(core.WithLocale("en"))
	require.NoError(t, err)

	require.NoError(t, ctx.SetLocale("fr"))
	require.Equal(t, "fr", ctx.Locale())

	err = ctx.SetLocale("xx")
	require.ErrorIs(t, err, core.ErrUnsupportedLocale)
	require.Equal(t, "fr", ctx.Locale(), "failed SetLocale must leave the previous locale active")
}

func TestContext_Clone(t *testing.T) {
	ctx, err := core.New(core.WithSeed(42), core.WithLocale("de"))
	require.NoError(t, err)

	// Advance the original so the clone has to carry live state, not
	// just the seed.
	for i := 0; i < 3; i++ {
		ctx.Rng().Uint32()
	}

	clone := ctx.Clone()
	require.Equal(t, ctx.Seed(), clone.Seed())
	require.Equal(t, ctx.Locale(), clone.Locale())

	// Both sides produce the same next draw.
	require.Equal(t, ctx.Rng().Uint32(), clone.Rng().Uint32())

	// Drawing from one does not advance the other.
	ctx.Rng().Uint32()
	ctx.Rng().Uint32()
	require.NotEqual(t, ctx.Rng().State(), clone.Rng().State())

	// Nor does mutating one side's locale leak into the other.
	require.NoError(t, clone.SetLocale("es"))
	require.Equal(t, "de", ctx.Locale())
}

func TestContext_Reset(t *testing.T) {
	ctx, err := core.New(core.WithSeed(42), core.WithLocale("fr"))
	require.NoError(t, err)
	ctx.Rng().Uint32()

	ctx.Reset()

	require.Equal(t, "en", ctx.Locale())
	require.Equal(t, uint32(42), ctx.InitialSeed(), "the construction snapshot survives a reset")
	require.NotNil(t, ctx.Rng())
	require.Equal(t, ctx.Seed(), ctx.Rng().Seed(), "the PRNG is rebuilt from the fresh seed")
}

func TestLocales(t *testing.T) {
	require.Equal(t, []string{"ar", "de", "en", "es", "fr"}, core.Locales())

	require.True(t, core.LocaleSupported("en"))
	require.False(t, core.LocaleSupported("xx"))
	require.False(t, core.LocaleSupported(""))
}
