package slotkit

import "strings"

// ClassIf is a conditional class contribution: the class is included
// only when On is true. Build with When.
type ClassIf struct {
	Class string
	On    bool
}

// When creates a conditional class contribution for ClassNames.
//
//	ClassNames("btn", When("btn-block", cfg.Block))
func When(class string, on bool) ClassIf {
	return ClassIf{Class: class, On: on}
}

// ClassNames composes an ordered sequence of class contributions into a
// single deduplicated class string.
//
// Accepted contribution types:
//   - string: contributes its whitespace-separated tokens in order
//   - ClassIf: contributes its tokens only when the condition is true
//   - []string: each element contributes as a string
//   - nil: skipped
//
// Tokens are deduplicated across the whole sequence with the first
// occurrence keeping its position. Empty strings, false conditions, and
// unrecognized contribution types are skipped silently - malformed input
// degrades to "contributes nothing" rather than failing a render.
//
//	ClassNames("a b", When("c", true), When("d", false), "a") // "a b c"
//
// ClassNames is pure and order-stable: identical input always yields an
// identical string. Rendered markup is snapshotted by consumers, so this
// determinism is load-bearing, not cosmetic.
func ClassNames(contributions ...any) string {
	var tokens []string
	seen := make(map[string]struct{})

	add := func(s string) {
		for _, tok := range strings.Fields(s) {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}

	for _, c := range contributions {
		switch v := c.(type) {
		case nil:
			continue
		case string:
			add(v)
		case ClassIf:
			if v.On {
				add(v.Class)
			}
		case []string:
			for _, s := range v {
				add(s)
			}
		}
	}

	return strings.Join(tokens, " ")
}
