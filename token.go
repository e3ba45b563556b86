package coca

import "fmt"

// ParagraphMarker is the sentinel word the corpus inserts for a paragraph
// break. Marker tokens are rendered as a newline, never as text.
const ParagraphMarker = "<p>"

// Token is one annotated unit from a wlp file: the excerpt it belongs to,
// the surface word as it appeared in the source text, its dictionary lemma
// (empty when the corpus left it unresolved) and its CLAWS part-of-speech
// tag. Tags are an open vocabulary; specific literal values are matched by
// the spacing rules.
type Token struct {
	Excerpt int
	Word    string
	Lemma   string
	POS     string
}

// String renders the token for diagnostics.
func (t Token) String() string {
	return fmt.Sprintf("excerpt=%d word=%q lemma=%q pos=%q",
		t.Excerpt, t.Word, t.Lemma, t.POS)
}

// wordLemma keys the per-line special-case tables on the second and third
// fields of a 3-field line.
type wordLemma struct {
	word  string
	lemma string
}

// fillerTokens are 3-field lines that stand in for material omitted from
// the corpus sample. They produce no token.
var fillerTokens = map[wordLemma]bool{
	{"@", "ii"}:      true,
	{"&nbsp;", "zz"}: true,
}

// hyphenFragments are 3-field lines where a line-break hyphen was glued
// onto the following word during tagging. The emitted token restores the
// detached form "- word"; the raw word moves to the lemma slot and the
// third field is really the tag.
var hyphenFragments = map[wordLemma]bool{
	{"-a", "at1"}:        true,
	{"-the", "at"}:       true,
	{"-The", "at"}:       true,
	{"-that", "dd1_cst"}: true,
	{"-but", "ccb"}:      true,
	{"-and", "cc"}:       true,
}

// irregularThreeField lists 3-field lines (URLs, photo credits, compound
// oddities) whose third field is really the tag. Keyed by that tag; the
// value is the set of words known to carry it, nil accepting any word
// (phone numbers under "mcmc" are too varied to enumerate). The word is
// emitted verbatim, repeated into the lemma slot.
var irregularThreeField = map[string][]string{
	"fo":    {"@owjc.org", "1,150-bottle-strong"},
	"mcmc":  nil, // phone numbers
	"fu":    {"SHATZ/DREAMWORKS", "myrecipes.com/"},
	"vvg":   {"Spatchcocking"},
	"np1":   {"WALL/PARAMOUNT"},
	"zz_nn": {"proofdc.com", "newseum.org"},
	"nnu":   {"www.clifton.co.uk", "grom.it"},
	"nnu2":  {"euro-cents"},
	"zz":    {"--"},
}
