package actrie

import "github.com/actrie-vis/actrie/internal/arena"

// AddPattern inserts pattern into the trie.
//
// If the automaton is Ready, AddPattern calls Reset first, returning to
// Editable: every previously inserted pattern is discarded, and only
// patterns added after that reset are matched by the next Scan.
//
// Validation runs to completion before any node is appended: on the first
// byte that falls outside the configured alphabet, AddPattern emits a
// BadInput event carrying that byte's offset and value, and returns
// without mutating the arena at all for this call.
//
// Re-inserting a pattern whose full path already ends at an accepting
// node is not rejected: the pattern-length table grows by one regardless,
// and the node's WordIndex is overwritten to point at the new entry. This
// leaks the old pattern-length slot; it is a known wart inherited from
// the reference implementation, not a bug to work around.
func (t *Trie) AddPattern(pattern []byte) {
	if t.state == ready {
		t.Reset()
	}

	for i, b := range pattern {
		if _, ok := t.symbolIndex(b); !ok {
			t.badInput.Notify(BadInputEvent{Index: i, Byte: b})
			return
		}
	}

	current := arena.Root
	for _, b := range pattern {
		sym, _ := t.symbolIndex(b) // already validated above
		node := t.arena.Get(current)
		next := node.Edges[sym]
		if next == arena.Null {
			newIdx := t.arena.Append()
			t.arena.Get(current).Edges[sym] = newIdx
			t.updatedNodes.Notify(NodeEvent{
				Kind:       NodeAdded,
				Index:      newIdx,
				Parent:     current,
				EdgeSymbol: byte(sym) + t.cfg.AlphabetStart,
				Snapshot:   *t.arena.Get(newIdx),
			})
			current = newIdx
		} else {
			current = next
		}
	}

	wordIdx := uint32(len(t.patternLengths))
	t.patternLengths = append(t.patternLengths, len(pattern))
	t.arena.Get(current).WordIndex = wordIdx
}
