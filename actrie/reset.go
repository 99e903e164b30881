package actrie

import "github.com/actrie-vis/actrie/internal/arena"

// Reset clears the automaton back to its freshly-constructed state: the
// arena and pattern-length table are emptied and the three reserved nodes
// are recreated, then the initial-nodes preamble is emitted on
// UpdatedNodes. The Trie transitions to Editable.
func (t *Trie) Reset() {
	t.arena.Reset()
	t.resetState()
}

// resetState performs the bookkeeping shared by New and Reset: clear the
// pattern-length table, return to Editable, and (re-)emit the
// initial-nodes preamble for the three reserved nodes.
func (t *Trie) resetState() {
	t.patternLengths = t.patternLengths[:0]
	t.state = editable
	t.preambleSent = false

	for _, idx := range []arena.Index{arena.Null, arena.PreRoot, arena.Root} {
		t.updatedNodes.Notify(NodeEvent{Kind: NodeAdded, Index: idx, Snapshot: *t.arena.Get(idx)})
	}
	t.preambleSent = true
}
