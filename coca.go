// Package coca reconstructs readable prose from the word-lemma-PoS
// ("wlp") annotation files of the COCA corpus, reversing the corpus
// tokenization so that words, contractions and punctuation are spaced
// the way the source text was.
//
// The pipeline is a single pull-based stream: raw lines are parsed into
// Tokens, a two-token sliding window pairs each token with its
// predecessor, and a rule engine decides the separator for every pair.
// Nothing is buffered beyond the window and the current line, so memory
// use is independent of corpus size. Any line or tag the rules do not
// recognize aborts the whole run with its position attached; a silently
// guessed spacing would corrupt the output without detection, so the
// package fails loudly instead.
package coca

import (
	"bufio"
	"io"
	"log/slog"
)

// Detokenizer drives the full pipeline over one input stream.
// The zero value processes every line with tracing disabled.
type Detokenizer struct {
	// First and Last restrict processing to raw line indices in
	// [First, Last). Last <= 0 reads to the end of input.
	First, Last int

	// Log receives per-token debug traces when non-nil.
	Log *slog.Logger
}

// Run reads wlp lines from r and writes the reconstructed text to w,
// incrementally, one fragment per token. Paragraph markers come out as
// newlines and every other token boundary as zero or one space. The
// writer is flushed on every return path, so on error the output holds
// everything reconstructed up to the failing line.
func (d *Detokenizer) Run(w io.Writer, r io.Reader) error {
	p := NewParser(r, d.First, d.Last)
	p.SetLogger(d.Log)

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for pair := range Window(p.Each(), 2) {
		prev, cur := pair[0], pair[1]
		var prevTok *Token
		if prev != nil {
			prevTok = &prev.Token
		}
		if d.Log != nil {
			d.Log.Debug("placing token",
				"line", cur.Line, "cur", cur.Token.String())
		}

		sep, err := DecideSeparator(cur.Token, prevTok)
		if err != nil {
			return &PipelineError{Line: cur.Line, Cur: cur.Token, Prev: prevTok, Err: err}
		}

		// A paragraph marker renders as a newline even when an earlier
		// rule (previous token also a marker, or an open parenthesis)
		// fixed its separator before the marker rule was reached.
		if cur.Token.Word == ParagraphMarker {
			if !isMarker(cur.Token) {
				return &PipelineError{
					Line: cur.Line, Cur: cur.Token, Prev: prevTok,
					Err: &UnrecognizedTagError{Token: cur.Token, Rule: "paragraph marker"},
				}
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			continue
		}

		if sep == Space {
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(cur.Token.Word); err != nil {
			return err
		}
	}
	if err := p.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// Detokenize runs a zero-value Detokenizer over the whole of r,
// writing the reconstructed text to w.
func Detokenize(w io.Writer, r io.Reader) error {
	return (&Detokenizer{}).Run(w, r)
}
