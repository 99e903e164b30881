// Command actriedemo wires patterns and text into an actrie.Trie and logs
// every event it publishes.
//
// This stands in for the "test harness" and "user-input controller" the
// core intentionally leaves out: a real frontend (a GUI renderer, a
// windowing shell) would subscribe to the same four ports and paint
// instead of logging. Nothing here is part of the core's public contract.
//
// Usage:
//
//	go run ./cmd/actriedemo
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/actrie-vis/actrie/actrie"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	tr, err := actrie.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to construct trie")
	}

	unsubNodes := tr.SubscribeUpdatedNodes(func(e actrie.NodeEvent) {
		log.Debug().
			Str("kind", nodeEventKindString(e.Kind)).
			Uint32("index", uint32(e.Index)).
			Uint32("parent", uint32(e.Parent)).
			Str("edge", string(rune(e.EdgeSymbol))).
			Msg("updated_nodes")
	})
	defer unsubNodes()

	unsubBad := tr.SubscribeBadInput(func(e actrie.BadInputEvent) {
		log.Warn().Int("index", e.Index).Uint8("byte", e.Byte).Msg("bad_input")
	})
	defer unsubBad()

	unsubPass := tr.SubscribePassingThrough(func(e actrie.PassEvent) {
		log.Debug().Uint32("node", uint32(e.Node)).Msg("passing_through")
	})
	defer unsubPass()

	var matches []string
	unsubFound := tr.SubscribeFoundSubstrings(func(e actrie.FoundEvent) {
		matches = append(matches, string(e.Pattern))
		log.Info().
			Str("pattern", string(e.Pattern)).
			Int("start", e.Start).
			Uint32("node", uint32(e.TerminalNode)).
			Msg("found_substrings")
	})
	defer unsubFound()

	for _, pattern := range []string{"he", "she", "his", "hers"} {
		tr.AddPattern([]byte(pattern))
	}
	tr.Build()

	text := "ushers"
	tr.Scan([]byte(text))

	log.Info().Strs("matches", matches).Str("text", text).Msg("scan complete")
}

func nodeEventKindString(k actrie.NodeEventKind) string {
	if k == actrie.NodeAdded {
		return "node_added"
	}
	return "links_computed"
}
