package actrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type match struct {
	pattern string
	start   int
}

func collectMatches(t *testing.T, tr *Trie, text string) []match {
	t.Helper()
	var got []match
	unsub := tr.SubscribeFoundSubstrings(func(e FoundEvent) {
		got = append(got, match{pattern: string(e.Pattern), start: e.Start})
	})
	defer unsub()
	tr.Scan([]byte(text))
	return got
}

func newTrie(t *testing.T, patterns []string, opts ...ConfigOption) *Trie {
	t.Helper()
	tr, err := New(opts...)
	require.NoError(t, err)
	for _, p := range patterns {
		tr.AddPattern([]byte(p))
	}
	return tr
}

func TestScan_Scenario1(t *testing.T) {
	patterns := []string{"a", "ab", "ba", "aa", "bb", "fasb"}
	tr := newTrie(t, patterns)

	got := collectMatches(t, tr, "ababcdacafaasbfasbabcc")

	want := []match{
		{"a", 0}, {"ab", 0}, {"ba", 1}, {"a", 2}, {"ab", 2},
		{"a", 6}, {"a", 8}, {"a", 10}, {"aa", 10}, {"a", 11},
		{"a", 15}, {"fasb", 14}, {"ba", 17}, {"a", 18}, {"ab", 18},
	}

	require.Equal(t, want, got)
}

func TestScan_Scenario2_Count(t *testing.T) {
	patterns := []string{"ABC", "CDE", "CDEF"}
	tr := newTrie(t, patterns)

	text := "ABCDEFGHABCDEFGADCVABCDEBACBCBABDBEBCBABABBCDEBCBABDEBCABDBCBACABCDBEBACBCDEWBCBABCDE"
	got := collectMatches(t, tr, text)

	require.Len(t, got, 13)

	wantPrefix := []match{
		{"ABC", 0}, {"CDE", 2}, {"CDEF", 2}, {"ABC", 8}, {"CDE", 10}, {"CDEF", 10},
	}
	require.Equal(t, wantPrefix, got[:len(wantPrefix)])

	wantSuffix := []match{{"ABC", 80}, {"CDE", 82}}
	require.Equal(t, wantSuffix, got[len(got)-len(wantSuffix):])
}

func TestScan_Scenario3_Count(t *testing.T) {
	patterns := []string{"aba", "baca", "abacaba", "ccbba", "cabaaba"}
	tr := newTrie(t, patterns)

	text := "abccbaabacabaababacabaccbbabaccabacabaabacabaccbbaabaabacabaabacabaccbbacabaaba" +
		"abacabaccbbabacabaabacabaccbbabaccabacabaccbbaabacabaccbbabacabaabacaba"

	got := collectMatches(t, tr, text)
	require.Len(t, got, 45)

	wantOrdered := []match{{"aba", 49}, {"baca", 50}, {"abacaba", 49}}
	var atPos49 []match
	for _, m := range got {
		if m.start == 49 || m.start == 50 {
			atPos49 = append(atPos49, m)
		}
	}
	require.Equal(t, wantOrdered, atPos49)
}

func TestScan_ResetOnNewPattern(t *testing.T) {
	tr := newTrie(t, nil)
	tr.AddPattern([]byte("xyz"))

	got := collectMatches(t, tr, "xyz")
	require.Equal(t, []match{{"xyz", 0}}, got)

	tr.AddPattern([]byte("yz")) // forces reset

	got = collectMatches(t, tr, "xyz")
	require.Equal(t, []match{{"yz", 1}}, got)
}

func TestAddPattern_BadInput(t *testing.T) {
	tr, err := New(WithAlphabet('A', 'z'))
	require.NoError(t, err)

	var badEvents []BadInputEvent
	unsub := tr.SubscribeBadInput(func(e BadInputEvent) { badEvents = append(badEvents, e) })
	defer unsub()

	tr.AddPattern([]byte("ab[")) // '[' (0x5B) sits between 'Z' and 'a', still inside 'A'..'z'
	require.Empty(t, badEvents, "expected no bad-input events for 'ab['")
	require.Equal(t, 6, tr.NodeCount()) // null, preroot, root, a, b, [

	tr.AddPattern([]byte("ab@")) // '@' (0x40) is below 'A' (0x41), outside the alphabet
	require.Len(t, badEvents, 1)
	require.Equal(t, BadInputEvent{Index: 2, Byte: '@'}, badEvents[0])
	require.Equal(t, 6, tr.NodeCount(), "rejected pattern must add no nodes")
}

func TestScan_EmptyText_NoEvents(t *testing.T) {
	tr := newTrie(t, []string{"a"})

	fired := false
	unsub := tr.SubscribeFoundSubstrings(func(FoundEvent) { fired = true })
	defer unsub()
	unsubPass := tr.SubscribePassingThrough(func(PassEvent) { fired = true })
	defer unsubPass()

	tr.Scan(nil)
	require.False(t, fired, "expected no events on empty text")
}

func TestBuild_IdempotentOnReadyTrie(t *testing.T) {
	tr := newTrie(t, []string{"a", "ab"})
	tr.Build()

	var linkEvents int
	unsub := tr.SubscribeUpdatedNodes(func(e NodeEvent) {
		if e.Kind == LinksComputed {
			linkEvents++
		}
	})
	defer unsub()

	tr.Build() // no-op; must emit nothing
	require.Zero(t, linkEvents, "Build on a ready trie must emit no events")
}

func TestScan_AutoBuildEquivalentToExplicitBuild(t *testing.T) {
	patterns := []string{"a", "ab", "ba", "aa", "bb", "fasb"}
	text := "ababcdacafaasbfasbabcc"

	fresh := newTrie(t, patterns)
	freshMatches := collectMatches(t, fresh, text)

	built := newTrie(t, patterns)
	built.Build()
	builtMatches := collectMatches(t, built, text)

	require.Equal(t, freshMatches, builtMatches)
}

func TestCaseInsensitiveAlphabet(t *testing.T) {
	tr := newTrie(t, []string{"abc"}, WithCaseInsensitive())
	got := collectMatches(t, tr, "ABC")
	require.Equal(t, []match{{"ABC", 0}}, got)
}
