package actrie

import "github.com/actrie-vis/actrie/internal/arena"

// NodeEventKind distinguishes the two causes of an UpdatedNodes
// notification.
type NodeEventKind int

const (
	// NodeAdded marks a brand-new node: either part of the initial-nodes
	// preamble emitted on Reset, or appended while walking a pattern in
	// AddPattern.
	NodeAdded NodeEventKind = iota

	// LinksComputed marks a node whose SuffixLink and
	// CompressedSuffixLink were just assigned during Build.
	LinksComputed
)

// NodeEvent is the payload of the UpdatedNodes port.
type NodeEvent struct {
	Kind NodeEventKind

	// Index is the node this event describes.
	Index arena.Index

	// Parent is the trie-parent of Index, the node whose edge leads to
	// it, for both NodeAdded and LinksComputed. It is arena.Null for the
	// three reserved nodes.
	Parent arena.Index

	// EdgeSymbol is the byte labelling the edge from Parent to Index.
	// It is the zero byte for the three reserved nodes, which have no
	// incoming trie edge.
	EdgeSymbol byte

	// Snapshot is a copy of the node's fields at the moment of
	// notification. Its Edges slice is shared with the Arena's backing
	// storage; a subscriber that wants to retain it across further
	// mutation must copy it.
	Snapshot arena.Node
}

// FoundEvent is the payload of the FoundSubstrings port: one pattern
// occurrence ending at the scan position that produced it.
type FoundEvent struct {
	// Pattern is the matched bytes, a sub-slice of the text passed to
	// Scan. It is only valid until the next mutation of that slice by
	// the caller.
	Pattern []byte

	// Start is the index in the scanned text where Pattern begins.
	Start int

	// TerminalNode is the automaton node the match ends at.
	TerminalNode arena.Index
}

// BadInputEvent is the payload of the BadInput port: a pattern byte fell
// outside the configured alphabet.
type BadInputEvent struct {
	// Index is the byte offset within the rejected pattern.
	Index int

	// Byte is the offending byte value, before any case-folding.
	Byte byte
}

// PassEvent is the payload of the PassingThrough port: the scanner's
// current node after consuming one byte of text.
type PassEvent struct {
	Node arena.Index
}

// SubscribeUpdatedNodes attaches fn to the UpdatedNodes port. If the
// initial-nodes preamble has already been emitted since the most recent
// Reset, fn immediately receives a replay of it: one NodeAdded event for
// each of the three reserved nodes. Nodes appended by AddPattern since
// that Reset are not replayed, and neither are LinksComputed events.
func (t *Trie) SubscribeUpdatedNodes(fn func(NodeEvent)) func() {
	unsub := t.updatedNodes.Subscribe(fn)
	if t.preambleSent {
		for _, idx := range []arena.Index{arena.Null, arena.PreRoot, arena.Root} {
			fn(NodeEvent{Kind: NodeAdded, Index: idx, Snapshot: *t.arena.Get(idx)})
		}
	}
	return unsub
}

// SubscribeFoundSubstrings attaches fn to the FoundSubstrings port.
func (t *Trie) SubscribeFoundSubstrings(fn func(FoundEvent)) func() {
	return t.foundSubstrings.Subscribe(fn)
}

// SubscribeBadInput attaches fn to the BadInput port.
func (t *Trie) SubscribeBadInput(fn func(BadInputEvent)) func() {
	return t.badInput.Subscribe(fn)
}

// SubscribePassingThrough attaches fn to the PassingThrough port.
func (t *Trie) SubscribePassingThrough(fn func(PassEvent)) func() {
	return t.passingThrough.Subscribe(fn)
}
