package actrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmptyAlphabet(t *testing.T) {
	_, err := New(WithAlphabet('z', 'A'))
	require.ErrorIs(t, err, ErrEmptyAlphabet)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.EqualValues(t, 'A', cfg.AlphabetStart)
	require.EqualValues(t, 'z', cfg.AlphabetEnd)
	require.False(t, cfg.CaseInsensitive)
}

func TestNew_SingleByteAlphabet(t *testing.T) {
	tr, err := New(WithAlphabet('a', 'a'))
	require.NoError(t, err)
	tr.AddPattern([]byte("aa"))
	matches := collectMatches(t, tr, "aaa")
	require.Len(t, matches, 2, "expected 2 overlapping matches of 'aa' in 'aaa'")
}
