package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidToken reports a malformed prototype at construction time.
// A correct lexer never emits one, so construction fails fast instead
// of propagating a half-built token.
var ErrInvalidToken = errors.New("invalid token prototype")

// Token is one lexical element of a source file. The fields are
// unexported so the invariant "non-kinded implies no id and no line"
// holds structurally: only New and Clear write them.
type Token struct {
	text   string
	kind   Kind
	line   int
	kinded bool
}

// New wraps a lexer prototype into a Token. Kind ids are accepted as
// opaque tags without range validation.
func New(p Prototype) (Token, error) {
	if !p.Kinded {
		return Token{text: p.Text}, nil
	}
	if p.Text == "" {
		return Token{}, fmt.Errorf("%w: kinded prototype with empty text (kind %d)", ErrInvalidToken, p.ID)
	}
	if p.Line < 0 {
		return Token{}, fmt.Errorf("%w: negative line %d", ErrInvalidToken, p.Line)
	}
	return Token{text: p.Text, kind: p.ID, line: p.Line, kinded: true}, nil
}

// MustNew is New for prototypes known to be well-formed, e.g. literals
// in tests and rule fixtures.
func MustNew(p Prototype) Token {
	t, err := New(p)
	if err != nil {
		panic(err)
	}
	return t
}

// Content returns the token text. It is empty after Clear.
func (t Token) Content() string { return t.text }

// ID returns the kind id and whether the token carries one.
func (t Token) ID() (Kind, bool) { return t.kind, t.kinded }

// Line returns the 1-based source line and whether the lexer recorded
// one.
func (t Token) Line() (int, bool) {
	if !t.kinded || t.line == 0 {
		return 0, false
	}
	return t.line, true
}

// IsKinded reports whether the token was built from a kinded triple as
// opposed to a bare symbol.
func (t Token) IsKinded() bool { return t.kinded }

// Prototype re-serializes the token back into the shape the lexer
// emitted it in. A cleared token serializes as a bare empty string.
func (t Token) Prototype() Prototype {
	if !t.kinded {
		return Bare(t.text)
	}
	return Kinded(t.kind, t.text, t.line)
}

// Clear resets the token to an empty bare token in place. Its slot in
// a containing stream stays valid; only the semantic payload is gone.
// Clearing an already cleared token is a no-op.
func (t *Token) Clear() {
	t.text = ""
	t.kind = 0
	t.line = 0
	t.kinded = false
}

// Name returns the registry name of the token's kind ("T_COMMENT",
// "T_CLASS", ...). It is empty for bare tokens and for ids the active
// registry does not know.
func (t Token) Name() string {
	if !t.kinded {
		return ""
	}
	name, ok := activeTables().registry.Name(t.kind)
	if !ok {
		return ""
	}
	return name
}

// IsGivenKind reports whether the token is kinded and its id is one of
// kinds. Bare tokens never match. This is the single matching
// primitive; every named predicate below is a thin wrapper over the
// same membership check with a precomputed table.
func (t Token) IsGivenKind(kinds ...Kind) bool {
	if !t.kinded {
		return false
	}
	for _, k := range kinds {
		if t.kind == k {
			return true
		}
	}
	return false
}

func (t Token) inTable(set map[Kind]struct{}) bool {
	if !t.kinded {
		return false
	}
	_, ok := set[t.kind]
	return ok
}

// IsCast reports whether the token is one of the cast operators
// ((array), (bool), (double), (int), (object), (string), (unset)).
func (t Token) IsCast() bool { return t.inTable(activeTables().casts) }

// IsClassy reports whether the token opens a class-like declaration.
// The table is version-aware: kinds the active registry does not
// define (trait before 5.4, enum before 8.1) never match.
func (t Token) IsClassy() bool { return t.inTable(activeTables().classy) }

// IsComment reports whether the token is a line, block, or
// documentation comment.
func (t Token) IsComment() bool { return t.inTable(activeTables().comments) }

// IsKeyword reports whether the token's kind is in the keyword table
// of the active language version.
func (t Token) IsKeyword() bool { return t.inTable(activeTables().keywords) }

// IsNativeConstant reports whether the token spells one of the literal
// constants true, false, or null, case-insensitively. This checks
// content, not kind: the constants share a kind with plain
// identifiers.
func (t Token) IsNativeConstant() bool {
	if !t.kinded {
		return false
	}
	switch strings.ToLower(t.text) {
	case "true", "false", "null":
		return true
	}
	return false
}

// DefaultWhitespaces is the cutset IsWhitespace trims by default.
const DefaultWhitespaces = " \t\n"

// IsWhitespace reports whether the token is pure whitespace under the
// default cutset.
func (t Token) IsWhitespace() bool { return t.IsWhitespaceIn(DefaultWhitespaces) }

// IsWhitespaceIn reports whether the token is pure whitespace under a
// caller-chosen cutset. The kind is authoritative when present: a
// kinded token whose kind is not the whitespace kind is never
// whitespace, whatever its content. Bare tokens are judged by content
// alone.
func (t Token) IsWhitespaceIn(cutset string) bool {
	if t.kinded {
		tab := activeTables()
		if !tab.hasWhitespace || t.kind != tab.whitespace {
			return false
		}
	}
	return strings.Trim(t.text, cutset) == ""
}
