package token

// Prototype is the raw lexer output unit: either a bare symbol (just
// text) or a kinded (id, text, line) triple. Line is 1-based; 0 means
// the lexer did not record one.
type Prototype struct {
	ID     Kind
	Text   string
	Line   int
	Kinded bool
}

// Bare builds the prototype of a bare symbol token.
func Bare(text string) Prototype {
	return Prototype{Text: text}
}

// Kinded builds the prototype of a kinded token. Pass line 0 when the
// lexer did not record a line.
func Kinded(id Kind, text string, line int) Prototype {
	return Prototype{ID: id, Text: text, Line: line, Kinded: true}
}
