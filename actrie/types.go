package actrie

import (
	"errors"

	"github.com/actrie-vis/actrie/internal/arena"
	"github.com/actrie-vis/actrie/observer"
)

// Sentinel errors for Trie construction and invariant checking.
var (
	// ErrEmptyAlphabet indicates a Config whose AlphabetEnd is less than
	// its AlphabetStart.
	ErrEmptyAlphabet = errors.New("actrie: alphabet_end must be >= alphabet_start")

	// ErrInvariantViolation marks a structural inconsistency detected by
	// CheckInvariants. It signals a programming error in this package,
	// never a data-dependent condition; callers should treat it as
	// fatal rather than retry.
	ErrInvariantViolation = errors.New("actrie: invariant violation")
)

// lifecycleState tracks which operations a Trie currently accepts.
// It is never exported: callers observe behavior (AddPattern auto-resets,
// Scan auto-builds), not state.
type lifecycleState int

const (
	editable lifecycleState = iota
	ready
)

// Config holds the construction-time parameters of a Trie: the byte
// range it matches over, and whether bytes are case-folded before being
// indexed into that range.
type Config struct {
	// AlphabetStart is the inclusive lower bound of the matched byte
	// range.
	AlphabetStart byte

	// AlphabetEnd is the inclusive upper bound of the matched byte
	// range.
	AlphabetEnd byte

	// CaseInsensitive, if true, lowercases ASCII letters before
	// indexing them into the alphabet.
	CaseInsensitive bool
}

// ConfigOption configures a Config at construction time.
type ConfigOption func(*Config)

// WithAlphabet sets the inclusive byte range the Trie matches over.
func WithAlphabet(start, end byte) ConfigOption {
	return func(c *Config) {
		c.AlphabetStart = start
		c.AlphabetEnd = end
	}
}

// WithCaseInsensitive enables ASCII case-folding before alphabet
// indexing.
func WithCaseInsensitive() ConfigOption {
	return func(c *Config) {
		c.CaseInsensitive = true
	}
}

// DefaultConfig returns the alphabet the reference implementation uses:
// the byte range 'A'..'z' inclusive (covering upper- and lower-case ASCII
// letters plus the punctuation between them), case-sensitive.
func DefaultConfig() Config {
	return Config{AlphabetStart: 'A', AlphabetEnd: 'z', CaseInsensitive: false}
}

func (c Config) alphabetLen() int {
	return int(c.AlphabetEnd) - int(c.AlphabetStart) + 1
}

// Trie is an Aho-Corasick automaton over a fixed byte alphabet, with four
// outbound event ports describing every structural change and scan-time
// transition. It is not safe for concurrent use: all operations on one
// Trie must happen on a single goroutine.
type Trie struct {
	cfg Config

	arena          *arena.Arena
	patternLengths []int
	state          lifecycleState
	preambleSent   bool

	updatedNodes    observer.Multicast[NodeEvent]
	foundSubstrings observer.Multicast[FoundEvent]
	badInput        observer.Multicast[BadInputEvent]
	passingThrough  observer.Multicast[PassEvent]
}

// New constructs a Trie in the Editable state and emits the initial-nodes
// preamble (see SubscribeUpdatedNodes) to any port already subscribed,
// which for a brand-new Trie is none.
func New(opts ...ConfigOption) (*Trie, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.AlphabetEnd < cfg.AlphabetStart {
		return nil, ErrEmptyAlphabet
	}

	t := &Trie{
		cfg:   cfg,
		arena: arena.New(cfg.alphabetLen()),
	}
	t.resetState()
	return t, nil
}

// NodeCount returns the number of nodes in the automaton, reserved nodes
// included.
func (t *Trie) NodeCount() int {
	return t.arena.Len()
}

// PatternCount returns the number of patterns inserted since the last
// Reset.
func (t *Trie) PatternCount() int {
	return len(t.patternLengths)
}

// symbolIndex maps a text byte to its alphabet index, applying
// case-folding first if configured. ok is false if b lies outside the
// configured alphabet after folding.
func (t *Trie) symbolIndex(b byte) (sym int, ok bool) {
	if t.cfg.CaseInsensitive && b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	if b < t.cfg.AlphabetStart || b > t.cfg.AlphabetEnd {
		return 0, false
	}
	return int(b - t.cfg.AlphabetStart), true
}
