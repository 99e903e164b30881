package actrie

import (
	"fmt"

	"github.com/actrie-vis/actrie/internal/arena"
)

// CheckInvariants re-derives invariants I1-I6 from spec section 3 over
// the current automaton and returns ErrInvariantViolation, wrapped with
// detail, on the first one that fails. It is not called on any hot path;
// it exists for tests and for callers who want a release-mode assertion
// pass rather than panics scattered through Build and Scan.
func (t *Trie) CheckInvariants() error {
	size := t.arena.Len()
	if size < 3 {
		return fmt.Errorf("%w: arena has %d nodes, want >= 3", ErrInvariantViolation, size)
	}

	preRoot := t.arena.Get(arena.PreRoot)
	for sym, e := range preRoot.Edges {
		if e != arena.Root {
			return fmt.Errorf("%w: preRoot.Edges[%d] = %d, want Root", ErrInvariantViolation, sym, e)
		}
	}

	built := t.state == ready
	for idx := arena.Index(2); idx < arena.Index(size); idx++ {
		n := t.arena.Get(idx)
		for sym, e := range n.Edges {
			if built {
				if e < 2 || int(e) >= size {
					return fmt.Errorf("%w: node %d edge[%d] = %d out of [2,%d) after build", ErrInvariantViolation, idx, sym, e, size)
				}
			} else if e != arena.Null && (int(e) < 1 || int(e) >= size) {
				return fmt.Errorf("%w: node %d edge[%d] = %d out of [1,%d) before build", ErrInvariantViolation, idx, sym, e, size)
			}
		}

		if built {
			if int(n.SuffixLink) < 1 || int(n.SuffixLink) >= size {
				return fmt.Errorf("%w: node %d suffix_link = %d out of [1,%d)", ErrInvariantViolation, idx, n.SuffixLink, size)
			}
			if int(n.CompressedSuffixLink) < 1 || int(n.CompressedSuffixLink) >= size {
				return fmt.Errorf("%w: node %d compressed_suffix_link = %d out of [1,%d)", ErrInvariantViolation, idx, n.CompressedSuffixLink, size)
			}
		}

		if n.Accepting() && int(n.WordIndex) >= len(t.patternLengths) {
			return fmt.Errorf("%w: node %d word_index %d out of range [0,%d)", ErrInvariantViolation, idx, n.WordIndex, len(t.patternLengths))
		}
	}

	root := t.arena.Get(arena.Root)
	if built {
		if root.CompressedSuffixLink != arena.Root {
			return fmt.Errorf("%w: compressed_suffix_link(root) = %d, want Root", ErrInvariantViolation, root.CompressedSuffixLink)
		}
		if root.SuffixLink != arena.PreRoot {
			return fmt.Errorf("%w: suffix_link(root) = %d, want PreRoot", ErrInvariantViolation, root.SuffixLink)
		}
	}

	return nil
}
