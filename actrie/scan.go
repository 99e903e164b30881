package actrie

import "github.com/actrie-vis/actrie/internal/arena"

// Scan drives the totalized transition function across text, emitting a
// PassingThrough event for every byte consumed and a FoundSubstrings
// event for every pattern occurrence ending at that position.
//
// If the automaton is Editable, Scan builds it first.
//
// At each position, the immediate match (the node currently occupied, the
// longest pattern ending here) is emitted first, followed by progressively
// shorter matches surfaced by walking the compressed-suffix-link chain,
// matching the reference implementation's inner-before-outer enumeration.
func (t *Trie) Scan(text []byte) {
	if t.state == editable {
		t.Build()
	}

	// An empty pattern makes Root accepting; its zero-length match is
	// reported at every position, after any longer match ending there.
	rootAccepting := t.arena.Get(arena.Root).Accepting()

	current := arena.Root
	for i, b := range text {
		sym, ok := t.symbolIndex(b)
		if !ok {
			current = arena.Root
			t.passingThrough.Notify(PassEvent{Node: arena.Root})
			if rootAccepting {
				t.emitFound(arena.Root, i, text)
			}
			continue
		}

		current = t.arena.Get(current).Edges[sym]
		t.passingThrough.Notify(PassEvent{Node: current})

		node := t.arena.Get(current)
		if node.Accepting() {
			t.emitFound(current, i, text)
		}

		for anc := node.CompressedSuffixLink; anc != arena.Root; anc = t.arena.Get(anc).CompressedSuffixLink {
			t.emitFound(anc, i, text)
		}
		if rootAccepting && current != arena.Root {
			t.emitFound(arena.Root, i, text)
		}
	}
}

// emitFound notifies FoundSubstrings for the pattern ending at node,
// at the position-th byte of text.
func (t *Trie) emitFound(node arena.Index, position int, text []byte) {
	n := t.arena.Get(node)
	length := t.patternLengths[n.WordIndex]
	start := position + 1 - length
	t.foundSubstrings.Notify(FoundEvent{
		Pattern:      text[start : start+length],
		Start:        start,
		TerminalNode: node,
	})
}
