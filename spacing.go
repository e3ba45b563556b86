package coca

import "strings"

// Separator is the spacing decision for a token relative to the token
// before it in the stream.
type Separator int

const (
	// NoSpace joins the token directly to the previous output.
	NoSpace Separator = iota
	// Space puts a single space before the token.
	Space
	// ParagraphBreak replaces the token with a newline; the token's
	// word is never written.
	ParagraphBreak
)

// String returns the name of the separator.
func (s Separator) String() string {
	switch s {
	case NoSpace:
		return "no-space"
	case Space:
		return "space"
	case ParagraphBreak:
		return "paragraph-break"
	}
	return "unknown"
}

// noSpacePunct are the punctuation words never preceded by a space.
var noSpacePunct = map[string]bool{
	",": true, ":": true, ";": true, "?": true, "!": true, ".": true,
}

// beContractionTags are the tags accepted on apostrophe contractions of
// "be" ('m, 're, 's, ...).
var beContractionTags = map[string]bool{
	"vbm":           true, // I'm
	"vbr":           true, // you're
	"vbx":           true, // there's
	"vbz":           true, // what's, that's, etc.
	"vbz_ge":        true, // leaguer's
	"vbz_ge_mc222%": true, // 1990's
	"vbz_ge_vhz@":   true, // House's
	"vbz_mc222%_ge": true, // 41's
	"vbz_vhz@":      true, // that's
	"vbz_vhz@_ge":   true, // Brigitte's
	"vbz_zz222":     true, // c's
	"vhz":           true, // who's
	"vhz@":          true, // one's
	"vm22":          true, // let's
}

// haveContractionTags are the tags accepted on apostrophe contractions
// of "have" ('ve, 'd).
var haveContractionTags = map[string]bool{
	"vh0":    true, // I've
	"vhd":    true, // I'd
	"vhd_vm": true, // they'd
	"vhi":    true, // could've
	"vm":     true, // I'd
	"vm_vhd": true, // we'd
}

// willContractionTags are the tags accepted on apostrophe contractions
// of "will" ('ll).
var willContractionTags = map[string]bool{
	"vm": true, // I'll
}

// elisionTags mark a bare apostrophe standing for an elided syllable
// (them → 'em).
var elisionTags = map[string]bool{
	`"@`:    true,
	`ge_"@`: true,
}

// possessiveTags are the tags accepted on "'s" genitives and special
// plurals.
var possessiveTags = map[string]bool{
	"ge":            true, // Joe DiMaggio's
	"ge_vbz":        true, // 2003's
	"ge_vbz_vhz@":   true, // Poor's
	"ge_vhz@":       true, // archipelago's
	"mc222%":        true, // 1800's
	"mc222%_ge":     true, // 30's
	"mc222%_vbz":    true, // Philip II's
	"mc222%_vbz_ge": true, // 463's
	"zz222":         true, // A's
	"zz222_vbz":     true, // W's
}

// upperPossessiveTags are the tags accepted on the capitalized genitive
// "'S" (NASA'S).
var upperPossessiveTags = map[string]bool{
	"ge":     true,
	"ge_vbz": true,
}

// uncertainApostropheTags mark a bare apostrophe whose role in the
// corpus is unclear; the original annotation gives too little to place
// it, so it gets a space. Kept separate from elisionTags on purpose:
// the two resolutions conflict and await corpus-owner review.
var uncertainApostropheTags = map[string]bool{
	`"@_ge`: true,
	`ge_"`:  true,
}

// isMarker reports whether t is the paragraph marker with consistent
// lemma and tag.
func isMarker(t Token) bool {
	return t.Word == ParagraphMarker && t.Lemma == ParagraphMarker && t.POS == "y"
}

// DecideSeparator decides what separates cur from the token before it:
// nothing, a single space, or a paragraph break. prev is nil at the
// start of the stream. The rules are tried in order and the first match
// wins. A word/lemma shape that matches a contraction or punctuation
// rule but carries a tag outside that rule's whitelist yields an
// UnrecognizedTagError; spacing is never guessed.
//
// DecideSeparator is pure: it has no side effects and the same pair
// always produces the same decision.
func DecideSeparator(cur Token, prev *Token) (Separator, error) {
	// No space before the first word.
	if prev == nil {
		return NoSpace, nil
	}

	// No space after a paragraph break.
	if prev.Word == ParagraphMarker {
		if !isMarker(*prev) {
			return NoSpace, &UnrecognizedTagError{Token: *prev, Rule: "paragraph marker"}
		}
		return NoSpace, nil
	}

	// Parentheses hug their content on both sides.
	if (prev.POS == "y" && prev.Word == "(" && prev.Lemma == "(") ||
		(cur.POS == "y" && cur.Word == ")" && cur.Lemma == ")") {
		return NoSpace, nil
	}

	// Sentence punctuation attaches to the word before it.
	if noSpacePunct[cur.Word] && cur.POS == "y" {
		return NoSpace, nil
	}

	if strings.HasPrefix(cur.Word, "'") {
		return decideApostrophe(cur)
	}

	if strings.HasPrefix(cur.Word, `"`) {
		if cur.Word == `"` && cur.Lemma == `"` && cur.POS == "y" {
			// Bare "; the annotation has too little to space this
			// properly.
			return NoSpace, nil
		}
		return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "quotation mark"}
	}

	// Negative contractions: don't, isn't, ...
	if cur.Word == "n't" {
		if cur.Lemma != "n't" || cur.POS != "xx" {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "negative contraction"}
		}
		return NoSpace, nil
	}

	// Paragraph markers become a newline; the marker itself is never
	// written.
	if cur.Word == ParagraphMarker {
		if !isMarker(cur) {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "paragraph marker"}
		}
		return ParagraphBreak, nil
	}

	if cur.Word == "..." {
		if cur.Lemma != "..." || cur.POS != "..." {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "ellipsis"}
		}
		return NoSpace, nil
	}

	return Space, nil
}

// decideApostrophe handles every word starting with an apostrophe:
// contractions, elisions and genitives. Anything not covered by one of
// the whitelists is an error rather than a guess.
func decideApostrophe(cur Token) (Separator, error) {
	switch cur.Lemma {
	case "be":
		if !beContractionTags[cur.POS] {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "contraction of be"}
		}
		return NoSpace, nil
	case "have":
		if !haveContractionTags[cur.POS] {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "contraction of have"}
		}
		return NoSpace, nil
	case "will":
		if !willContractionTags[cur.POS] {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "contraction of will"}
		}
		return NoSpace, nil
	}

	// Them → 'em.
	if cur.Word == "'" && cur.Lemma == "'" && elisionTags[cur.POS] {
		return NoSpace, nil
	}

	// Possessives and special plurals.
	if cur.Word == "'s" {
		if cur.Lemma != "'s" || !possessiveTags[cur.POS] {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "possessive 's"}
		}
		return NoSpace, nil
	}
	if cur.Word == "'S" {
		if cur.Lemma != "'s" || !upperPossessiveTags[cur.POS] {
			return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "possessive 'S"}
		}
		return NoSpace, nil
	}

	// Bare '; the annotation has too little to space this properly.
	if cur.Word == "'" && cur.Lemma == "'" && cur.POS == "ge" {
		return NoSpace, nil
	}

	// Bare ' of unclear role; spaced, unlike the elision case above.
	if cur.Word == "'" && cur.Lemma == "'" && uncertainApostropheTags[cur.POS] {
		return Space, nil
	}

	return NoSpace, &UnrecognizedTagError{Token: cur, Rule: "apostrophe"}
}
