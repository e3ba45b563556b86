package coca

import (
	"bufio"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// ParseLine converts one raw wlp line into a Token. Lines are
// whitespace-delimited: an excerpt number followed by one field (an
// excerpt marker), two fields (irregular word+lemma lines needing the
// special-case tables) or three fields (word, lemma, tag). ok is false
// for structural lines that produce no token (markers and fillers).
// Any other shape is a MalformedLineError carrying num.
func ParseLine(num int, text string) (tok Token, ok bool, err error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Token{}, false, &MalformedLineError{
			Line: num, Text: text,
			Reason: "want an excerpt number and 1-3 fields",
		}
	}

	excerpt, aerr := strconv.Atoi(fields[0])
	if aerr != nil {
		return Token{}, false, &MalformedLineError{
			Line: num, Text: text,
			Reason: "excerpt field is not a number",
		}
	}
	word := fields[1]

	switch len(fields) {
	case 2:
		// Excerpt division marker: "@@<excerpt-num>".
		n, aerr := strconv.Atoi(strings.TrimPrefix(word, "@@"))
		if !strings.HasPrefix(word, "@@") || aerr != nil || n != excerpt {
			return Token{}, false, &MalformedLineError{
				Line: num, Text: text,
				Reason: "2-field line is not a matching @@ marker",
			}
		}
		return Token{}, false, nil

	case 3:
		lemma := fields[2]
		key := wordLemma{word, lemma}
		switch {
		case fillerTokens[key]:
			return Token{}, false, nil
		case hyphenFragments[key]:
			// Restore the line-break hyphen as its own fragment.
			return Token{
				Excerpt: excerpt,
				Word:    "- " + word[1:],
				Lemma:   word,
				POS:     lemma,
			}, true, nil
		}
		if words, known := irregularThreeField[lemma]; known &&
			(words == nil || slices.Contains(words, word)) {
			return Token{Excerpt: excerpt, Word: word, Lemma: word, POS: lemma}, true, nil
		}
		// Remaining 3-field lines carry the tag in the lemma slot and
		// never got a lemma.
		return Token{Excerpt: excerpt, Word: word, Lemma: "", POS: lemma}, true, nil

	case 4:
		return Token{Excerpt: excerpt, Word: word, Lemma: fields[2], POS: fields[3]}, true, nil
	}

	return Token{}, false, &MalformedLineError{
		Line: num, Text: text,
		Reason: "too many fields",
	}
}

// Scanned pairs a token with the zero-based index of the line it came
// from, for error reporting.
type Scanned struct {
	Line  int
	Token Token
}

// Parser streams Tokens from a wlp input in the style of bufio.Scanner:
// Scan advances to the next token, Token and Line report it, and Err
// reports the first fatal error once Scan returns false. Marker and
// filler lines are consumed without producing a token. A Parser is
// one-shot; build a new one for each traversal.
type Parser struct {
	sc    *bufio.Scanner
	first int
	last  int // exclusive; <= 0 means end of input
	next  int // index of the next raw line
	num   int
	tok   Token
	err   error
	log   *slog.Logger
}

// NewParser returns a Parser over r restricted to raw line indices in
// [first, last). last <= 0 reads to the end of input.
func NewParser(r io.Reader, first, last int) *Parser {
	return &Parser{sc: bufio.NewScanner(r), first: first, last: last}
}

// SetLogger enables per-line debug traces on log. nil disables tracing.
func (p *Parser) SetLogger(log *slog.Logger) { p.log = log }

// Scan advances the parser to the next token. It returns false at the
// end of the selected line range or on the first error.
func (p *Parser) Scan() bool {
	if p.err != nil {
		return false
	}
	for p.last <= 0 || p.next < p.last {
		if !p.sc.Scan() {
			p.err = p.sc.Err()
			return false
		}
		num := p.next
		p.next++
		if num < p.first {
			continue
		}
		tok, ok, err := ParseLine(num, p.sc.Text())
		if err != nil {
			p.err = err
			return false
		}
		if !ok {
			continue
		}
		if p.log != nil {
			p.log.Debug("parsed token", "line", num, "token", tok.String())
		}
		p.num, p.tok = num, tok
		return true
	}
	return false
}

// Token returns the token produced by the last successful Scan.
func (p *Parser) Token() Token { return p.tok }

// Line returns the line index of the token from the last successful Scan.
func (p *Parser) Line() int { return p.num }

// Err returns the first error encountered, or nil if the stream ended
// cleanly.
func (p *Parser) Err() error { return p.err }

// Each returns a lazy, one-shot sequence over the parser's remaining
// tokens. The sequence stops early on a parse error; check Err after
// ranging. Every yielded pointer refers to a distinct value.
func (p *Parser) Each() iter.Seq[*Scanned] {
	return func(yield func(*Scanned) bool) {
		for p.Scan() {
			if !yield(&Scanned{Line: p.Line(), Token: p.Token()}) {
				return
			}
		}
	}
}
