package token

// Kind is an opaque lexical kind id assigned by the active language
// version's kind registry. Bare single-character tokens carry no kind.
type Kind int

// Registry resolves lexical kinds for one language version. It is the
// injected capability behind Name and every classification predicate:
// kinds a version does not define simply fail to resolve, which is how
// version-conditional tables (trait, enum, the unset cast) stay correct
// without the caller knowing which version is active.
type Registry interface {
	// Lookup resolves a kind name (e.g. "T_CLASS") to its id.
	Lookup(name string) (Kind, bool)
	// Name returns the human-readable name of a kind id.
	Name(k Kind) (string, bool)
}
