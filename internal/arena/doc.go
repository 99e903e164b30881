// Package arena is an append-only, integer-indexed store of automaton
// nodes.
//
// A node's identity is its Index, never a pointer: suffix links, the
// compressed-suffix-link chain, and every edge are expressed as indices
// into the same Arena. Indices issued by Append are monotonically
// non-decreasing and stay valid until the next Reset; the backing slice
// may itself reallocate on growth, but that is invisible to callers.
//
// The first three indices are reserved and carry fixed meaning for the
// lifetime of the Arena:
//
//	Null    - "no such node"; never visited while scanning.
//	PreRoot - every edge points at Root, so Root's own suffix link can
//	          resolve uniformly through PreRoot with no special case.
//	Root    - the automaton's initial state.
package arena
