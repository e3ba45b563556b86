package coca

import (
	"errors"
	"testing"
)

func tk(word, lemma, pos string) Token {
	return Token{Excerpt: 1, Word: word, Lemma: lemma, POS: pos}
}

func prev(word, lemma, pos string) *Token {
	t := tk(word, lemma, pos)
	return &t
}

func TestDecideSeparator(t *testing.T) {
	tests := []struct {
		name    string
		cur     Token
		prev    *Token
		want    Separator
		wantErr error
	}{
		{"first token", tk("Anything", "anything", "nn1"), nil, NoSpace, nil},
		{"after paragraph marker", tk("Word", "word", "nn1"), prev("<p>", "<p>", "y"), NoSpace, nil},
		{"after open paren", tk("inside", "inside", "ii"), prev("(", "(", "y"), NoSpace, nil},
		{"before close paren", tk(")", ")", "y"), prev("word", "word", "nn1"), NoSpace, nil},
		{"comma", tk(",", ",", "y"), prev("word", "word", "nn1"), NoSpace, nil},
		{"period", tk(".", ".", "y"), prev("cat", "cat", "nn1"), NoSpace, nil},
		{"question mark", tk("?", "?", "y"), prev("what", "what", "ddq"), NoSpace, nil},
		{"plain word default", tk("cat", "cat", "nn1"), prev("The", "the", "at"), Space, nil},

		// Contractions of be.
		{"'m of be", tk("'m", "be", "vbm"), prev("I", "i", "pps1"), NoSpace, nil},
		{"'re of be", tk("'re", "be", "vbr"), prev("you", "you", "ppy"), NoSpace, nil},
		{"'s of be", tk("'s", "be", "vbz"), prev("that", "that", "dd1"), NoSpace, nil},
		{"'m of be, bad tag", tk("'m", "be", "zz9"), prev("I", "i", "pps1"), NoSpace, ErrUnrecognizedTag},

		// Contractions of have and will.
		{"'ve of have", tk("'ve", "have", "vh0"), prev("I", "i", "pps1"), NoSpace, nil},
		{"'d of have", tk("'d", "have", "vhd"), prev("they", "they", "pphs2"), NoSpace, nil},
		{"'d of have, bad tag", tk("'d", "have", "nn1"), prev("I", "i", "pps1"), NoSpace, ErrUnrecognizedTag},
		{"'ll of will", tk("'ll", "will", "vm"), prev("I", "i", "pps1"), NoSpace, nil},
		{"'ll of will, bad tag", tk("'ll", "will", "xx"), prev("I", "i", "pps1"), NoSpace, ErrUnrecognizedTag},

		// Elided them ('em) and bare apostrophes.
		{"elision quote-at", tk("'", "'", `"@`), prev("get", "get", "vv0"), NoSpace, nil},
		{"elision ge-quote-at", tk("'", "'", `ge_"@`), prev("get", "get", "vv0"), NoSpace, nil},
		{"bare apostrophe ge", tk("'", "'", "ge"), prev("dogs", "dog", "nn2"), NoSpace, nil},
		// The two unclear bare-apostrophe tags resolve to a space,
		// unlike the elision tags above; kept separate on purpose.
		{"unclear quote-at-ge", tk("'", "'", `"@_ge`), prev("dogs", "dog", "nn2"), Space, nil},
		{"unclear ge-quote", tk("'", "'", `ge_"`), prev("dogs", "dog", "nn2"), Space, nil},

		// Possessives.
		{"possessive 's", tk("'s", "'s", "ge"), prev("Joe", "joe", "np1"), NoSpace, nil},
		{"possessive decade", tk("'s", "'s", "mc222%"), prev("1800", "1800", "mc"), NoSpace, nil},
		{"possessive 's, bad tag", tk("'s", "'s", "zz9"), prev("Joe", "joe", "np1"), NoSpace, ErrUnrecognizedTag},
		{"possessive 'S", tk("'S", "'s", "ge"), prev("NASA", "nasa", "np1"), NoSpace, nil},
		{"possessive 'S, bad tag", tk("'S", "'s", "mc222%"), prev("NASA", "nasa", "np1"), NoSpace, ErrUnrecognizedTag},

		// Unmatched apostrophe shapes are errors, never guesses.
		{"unknown apostrophe word", tk("'twas", "", "xx"), prev("it", "it", "ppl"), NoSpace, ErrUnrecognizedTag},

		// Quotation marks.
		{"bare double quote", tk(`"`, `"`, "y"), prev("said", "say", "vvd"), NoSpace, nil},
		{"quote-leading word", tk(`"Hello`, "", "uh"), prev("said", "say", "vvd"), NoSpace, ErrUnrecognizedTag},

		// Negative contraction.
		{"n't", tk("n't", "n't", "xx"), prev("do", "do", "vd0"), NoSpace, nil},
		{"n't, bad tag", tk("n't", "n't", "rr"), prev("do", "do", "vd0"), NoSpace, ErrUnrecognizedTag},

		// Paragraph marker and ellipsis.
		{"paragraph marker", tk("<p>", "<p>", "y"), prev("end", "end", "nn1"), ParagraphBreak, nil},
		{"paragraph marker, bad tag", tk("<p>", "<p>", "nn1"), prev("end", "end", "nn1"), NoSpace, ErrUnrecognizedTag},
		{"ellipsis", tk("...", "...", "..."), prev("wait", "wait", "vv0"), NoSpace, nil},
		{"ellipsis, bad lemma", tk("...", ".", "..."), prev("wait", "wait", "vv0"), NoSpace, ErrUnrecognizedTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecideSeparator(tt.cur, tt.prev)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecideSeparator err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecideSeparator: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecideSeparator = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecideSeparatorFirstTokenAlwaysBare(t *testing.T) {
	// Whatever the first token looks like, nothing precedes it.
	for _, cur := range []Token{
		tk("cat", "cat", "nn1"),
		tk(",", ",", "y"),
		tk("'m", "be", "vbm"),
	} {
		sep, err := DecideSeparator(cur, nil)
		if err != nil {
			t.Errorf("DecideSeparator(%v, nil): %v", cur, err)
			continue
		}
		if sep != NoSpace {
			t.Errorf("DecideSeparator(%v, nil) = %v, want NoSpace", cur, sep)
		}
	}
}

func TestDecideSeparatorIsPure(t *testing.T) {
	cur := tk("'m", "be", "vbm")
	p := prev("I", "i", "pps1")
	first, err1 := DecideSeparator(cur, p)
	second, err2 := DecideSeparator(cur, p)
	if first != second || (err1 == nil) != (err2 == nil) {
		t.Errorf("DecideSeparator is not stable: (%v,%v) then (%v,%v)",
			first, err1, second, err2)
	}
}

func TestUnrecognizedTagErrorContext(t *testing.T) {
	_, err := DecideSeparator(tk("'m", "be", "zz9"), prev("I", "i", "pps1"))
	var terr *UnrecognizedTagError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *UnrecognizedTagError", err)
	}
	if terr.Token.Word != "'m" || terr.Token.POS != "zz9" {
		t.Errorf("error token = %v, want the rejected token", terr.Token)
	}
	if terr.Rule == "" {
		t.Error("error does not name the rejecting rule")
	}
}
