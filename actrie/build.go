package actrie

import "github.com/actrie-vis/actrie/internal/arena"

// Build computes suffix links and compressed suffix links for every node
// reachable from Root, and totalizes the transition function by
// short-circuiting missing edges through the suffix-link chain.
//
// Build is idempotent-safe: calling it while already Ready is a no-op.
// Events are emitted in breadth-first order of the original trie, with a
// node's children visited in ascending alphabet-index order; this
// ordering is part of the public contract, not an implementation detail.
func (t *Trie) Build() {
	if t.state == ready {
		return
	}

	root := t.arena.Get(arena.Root)
	root.SuffixLink = arena.PreRoot
	root.CompressedSuffixLink = arena.Root
	t.updatedNodes.Notify(NodeEvent{Kind: LinksComputed, Index: arena.Root, Snapshot: *root})

	alphabetLen := t.cfg.alphabetLen()
	queue := []arena.Index{arena.Root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		vNode := t.arena.Get(v)
		vSuffixLink := vNode.SuffixLink

		for sym := 0; sym < alphabetLen; sym++ {
			u := t.arena.Get(vSuffixLink).Edges[sym]
			c := vNode.Edges[sym]

			if c == arena.Null {
				// Pure transition-function completion: no structural
				// addition, so no event.
				vNode.Edges[sym] = u
				continue
			}

			cNode := t.arena.Get(c)
			cNode.SuffixLink = u

			uNode := t.arena.Get(u)
			if uNode.Accepting() || u == arena.Root {
				cNode.CompressedSuffixLink = u
			} else {
				cNode.CompressedSuffixLink = uNode.CompressedSuffixLink
			}

			t.updatedNodes.Notify(NodeEvent{
				Kind:       LinksComputed,
				Index:      c,
				Parent:     v,
				EdgeSymbol: byte(sym) + t.cfg.AlphabetStart,
				Snapshot:   *cNode,
			})
			queue = append(queue, c)
		}
	}

	t.state = ready
}
