// Package stream owns ordered sequences of tokens on behalf of the fix
// engine. Fixes never insert or remove slots: a "deleted" token is
// cleared in place, so indexes handed out by rules stay valid for the
// lifetime of the stream.
package stream

import (
	"fmt"
	"strings"

	"phpfix/internal/token"
)

// Stream is an index-stable sequence of tokens wrapped from one lexer
// dump. It is owned by a single pass at a time and is not safe for
// concurrent mutation.
type Stream struct {
	toks []token.Token
}

// FromPrototypes wraps each lexer prototype into a token. The first
// malformed prototype aborts the whole stream: a partial stream would
// silently shift every later index.
func FromPrototypes(protos []token.Prototype) (*Stream, error) {
	toks := make([]token.Token, len(protos))
	for i, p := range protos {
		t, err := token.New(p)
		if err != nil {
			return nil, fmt.Errorf("stream: prototype %d: %w", i, err)
		}
		toks[i] = t
	}
	return &Stream{toks: toks}, nil
}

// Len returns the number of slots, cleared ones included.
func (s *Stream) Len() int { return len(s.toks) }

// Empty reports whether the stream has no slots at all. A stream of
// only cleared tokens is not empty.
func (s *Stream) Empty() bool { return len(s.toks) == 0 }

// At returns the token at index i. The pointer stays valid until the
// stream is discarded; mutating through it is how fixes are applied.
func (s *Stream) At(i int) *token.Token { return &s.toks[i] }

// ClearAt neutralizes the token at index i in place.
func (s *Stream) ClearAt(i int) { s.toks[i].Clear() }

// Prototypes re-serializes every token back to the lexer's shape.
// Cleared tokens come out as bare empty strings.
func (s *Stream) Prototypes() []token.Prototype {
	protos := make([]token.Prototype, len(s.toks))
	for i := range s.toks {
		protos[i] = s.toks[i].Prototype()
	}
	return protos
}

// Generate concatenates token content back into source text. Cleared
// tokens contribute nothing.
func (s *Stream) Generate() string {
	var b strings.Builder
	for i := range s.toks {
		b.WriteString(s.toks[i].Content())
	}
	return b.String()
}

// NextNonWhitespace returns the index of the first token after i that
// is not whitespace, or -1. Cleared tokens count as whitespace here:
// their content trims to nothing.
func (s *Stream) NextNonWhitespace(i int) int {
	for j := i + 1; j < len(s.toks); j++ {
		if !s.toks[j].IsWhitespace() {
			return j
		}
	}
	return -1
}

// IndexOfKind returns the first index at or after from whose token
// matches kind, or -1.
func (s *Stream) IndexOfKind(k token.Kind, from int) int {
	for j := from; j < len(s.toks); j++ {
		if s.toks[j].IsGivenKind(k) {
			return j
		}
	}
	return -1
}
