// Package actrie implements an Aho-Corasick automaton for multi-pattern
// exact substring search over a fixed, contiguous byte alphabet, and
// publishes its internal evolution as a stream of events suitable for
// step-by-step visualization.
//
// A Trie moves through two lifecycle states:
//
//	Editable - AddPattern is accepted; Scan auto-builds first.
//	Ready    - Scan is accepted; AddPattern auto-resets first.
//
// Four event ports let an observer reconstruct the automaton's state and
// watch every scan transition without coupling to the algorithm itself:
//
//	UpdatedNodes    - a node was added to the trie, or its links were
//	                  computed during Build.
//	FoundSubstrings - a pattern occurrence ends at the current scan
//	                  position.
//	BadInput        - a pattern byte fell outside the configured
//	                  alphabet.
//	PassingThrough  - the scanner transitioned to a node while
//	                  consuming text.
//
// Errors (sentinel):
//
//	ErrEmptyAlphabet      - AlphabetEnd < AlphabetStart in the supplied Config.
//	ErrInvariantViolation - CheckInvariants found a structural inconsistency.
//
// Complexity: AddPattern is O(len(pattern)); Build is
// O(alphabetLen * nodeCount); Scan is O(len(text) + matches found).
package actrie
