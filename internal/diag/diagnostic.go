package diag

// Pos locates a diagnostic inside a token stream. phpfix sees token
// dumps rather than raw source, so positions are stream indexes plus
// whatever line the lexer recorded (0 when it recorded none).
type Pos struct {
	Index int
	Line  int
}

// Note attaches secondary context to a diagnostic.
type Note struct {
	Pos Pos
	Msg string
}

// Fix describes an in-place repair: the listed tokens are cleared.
// Clearing is the only edit primitive — it keeps every other index in
// the stream valid, which later passes depend on.
type Fix struct {
	ID           string
	Title        string
	ClearIndexes []int
}

// Diagnostic is one finding over a token stream.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  Pos
	Notes    []Note
	Fixes    []Fix
}
