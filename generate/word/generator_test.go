package word_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marouaneMJH/faker/core"
	"github.com/marouaneMJH/faker/generate/word"
	"github.com/marouaneMJH/faker/locale"
)

func TestConfig_Normalize(t *testing.T) {
	type testcase struct {
		config    word.Config
		expectErr bool
	}

	testcases := map[string]testcase{
		"zero value gets defaults":     {config: word.Config{}},
		"explicit range kept":          {config: word.Config{MinWords: 2, MaxWords: 4}},
		"single word sentences":        {config: word.Config{MinWords: 1, MaxWords: 1}},
		"zero min with max rejected":   {config: word.Config{MaxWords: 4}, expectErr: true},
		"inverted word range rejected": {config: word.Config{MinWords: 5, MaxWords: 2}, expectErr: true},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			if tc.expectErr {
				require.Error(t, tc.config.Normalize())
				return
			}
			require.NoError(t, tc.config.Normalize())
		})
	}
}

func newGenerator(t *testing.T, seed int64, conf word.Config) *word.Generator {
	t.Helper()
	ctx, err := core.New(core.WithSeed(seed))
	require.NoError(t, err)
	g, err := word.New(ctx, conf)
	require.NoError(t, err)
	return g
}

func TestGenerator_Word(t *testing.T) {
	g := newGenerator(t, 15, word.Config{})
	all := locale.Words()

	for i := 0; i < 100; i++ {
		w, err := g.Word()
		require.NoError(t, err)
		require.Contains(t, all, w)
	}
}

func TestGenerator_Words(t *testing.T) {
	g := newGenerator(t, 15, word.Config{})

	ws, err := g.Words(7)
	require.NoError(t, err)
	require.Len(t, ws, 7)

	ws, err = g.Words(0)
	require.NoError(t, err)
	require.Empty(t, ws)

	_, err = g.Words(-1)
	require.Error(t, err)
}

func TestGenerator_Sentence(t *testing.T) {
	g := newGenerator(t, 15, word.Config{MinWords: 3, MaxWords: 5})

	for i := 0; i < 50; i++ {
		s, err := g.Sentence()
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(s, "."))

		n := len(strings.Fields(s))
		require.GreaterOrEqual(t, n, 3)
		require.LessOrEqual(t, n, 5)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := newGenerator(t, 16, word.Config{})
	b := newGenerator(t, 16, word.Config{})

	for i := 0; i < 50; i++ {
		av, err := a.Sentence()
		require.NoError(t, err)
		bv, err := b.Sentence()
		require.NoError(t, err)
		require.Equal(t, av, bv, "draw %d", i)
	}
}
