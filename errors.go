package coca

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two ways a wlp stream can be unusable.
var (
	// ErrMalformedLine indicates a line whose shape matches no known
	// corpus convention.
	ErrMalformedLine = errors.New("malformed line")
	// ErrUnrecognizedTag indicates a token whose tag falls outside the
	// whitelist of the spacing rule its word and lemma matched.
	ErrUnrecognizedTag = errors.New("unrecognized tag")
)

// MalformedLineError reports a raw input line that cannot be parsed:
// a field count outside {2,3,4}, a non-numeric excerpt field, or an
// excerpt marker whose suffix disagrees with the excerpt number.
type MalformedLineError struct {
	Line   int    // zero-based index of the offending line
	Text   string // the raw line
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// UnrecognizedTagError reports a token that matched one of the
// contraction or punctuation rules but carries a tag the rule does not
// accept. This signals either an unmodeled corpus convention or genuine
// corruption; the caller must not guess a spacing instead.
type UnrecognizedTagError struct {
	Token Token
	Rule  string // the rule that rejected the token
}

func (e *UnrecognizedTagError) Error() string {
	return fmt.Sprintf("%s: tag %q not valid for %s", e.Rule, e.Token.POS, e.Token)
}

func (e *UnrecognizedTagError) Unwrap() error { return ErrUnrecognizedTag }

// PipelineError attaches the stream position at which detokenization
// failed: the failing line index, the token being placed and the one
// before it (nil at the start of the stream).
type PipelineError struct {
	Line int
	Cur  Token
	Prev *Token
	Err  error
}

func (e *PipelineError) Error() string {
	if e.Prev != nil {
		return fmt.Sprintf("line %d: %v (cur %s, prev %s)", e.Line, e.Err, e.Cur, *e.Prev)
	}
	return fmt.Sprintf("line %d: %v (cur %s, no prev)", e.Line, e.Err, e.Cur)
}

func (e *PipelineError) Unwrap() error { return e.Err }
