package name_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate/name"
	"github.com/marouaneMJH/faker/locale"
)

func TestConfig_Normalize(t *testing.T) {
	type testcase struct {
		config    name.Config
		expectErr bool
	}

	testcases := map[string]testcase{
		"empty gender is valid":   {config: name.Config{}},
		"female gender is valid":  {config: name.Config{Gender: name.GenderFemale}},
		"male gender is valid":    {config: name.Config{Gender: name.GenderMale}},
		"unknown gender rejected": {config: name.Config{Gender: "other"}, expectErr: true},
	}
	for tn, tc := range testcases {
		t.Run(tn, func(t *testing.T) {
			if tc.expectErr {
				require.Error(t, tc.config.Normalize())
				return
			}
			require.NoError(t, tc.config.Normalize())
		})
	}
}

func TestGenerator_FullNamePinned(t *testing.T) {
	ctx, err := core.New(core.WithSeed(12345), core.WithLocale("en"))
	require.NoError(t, err)
	g, err := name.New(ctx, name.Config{})
	require.NoError(t, err)

	full, err := g.FullName()
	require.NoError(t, err)
	require.Equal(t, "Ethan Lewis", full)
}

func TestGenerator_Deterministic(t *testing.T) {
	build := func() *name.Generator {
		ctx, err := core.New(core.WithSeed(4242), core.WithLocale("fr"))
		require.NoError(t, err)
		g, err := name.New(ctx, name.Config{})
		require.NoError(t, err)
		return g
	}

	a, b := build(), build()
	for i := 0; i < 50; i++ {
		av, err := a.FullName()
		require.NoError(t, err)
		bv, err := b.FullName()
		require.NoError(t, err)
		require.Equal(t, av, bv, "draw %d", i)
	}
}

func TestGenerator_GenderedConfig(t *testing.T) {
	ctx, err := core.New(core.WithSeed(9), core.WithLocale("en"))
	require.NoError(t, err)
	g, err := name.New(ctx, name.Config{Gender: name.GenderFemale})
	require.NoError(t, err)

	females := locale.Table("en").FirstNamesFemale
	for i := 0; i < 100; i++ {
		first, err := g.FirstName()
		require.NoError(t, err)
		require.Contains(t, females, first)
	}
}
