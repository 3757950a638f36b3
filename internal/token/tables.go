package token

import "sync"

// tables holds the classification sets for one registry. Built once on
// first use, read-only afterwards.
type tables struct {
	registry      Registry
	keywords      map[Kind]struct{}
	classy        map[Kind]struct{}
	casts         map[Kind]struct{}
	comments      map[Kind]struct{}
	whitespace    Kind
	hasWhitespace bool
}

var classifier struct {
	mu  sync.RWMutex
	reg Registry
	tab *tables
}

// Configure installs the kind registry behind Name and the
// classification predicates. Call it once at startup before tokens are
// classified; a later call discards the cached tables and rebuilds them
// against the new registry.
func Configure(r Registry) {
	classifier.mu.Lock()
	defer classifier.mu.Unlock()
	classifier.reg = r
	classifier.tab = nil
}

// activeTables returns the table set for the configured registry,
// building it on first use. Without Configure the registry is empty:
// every name lookup misses and every predicate degrades to false.
func activeTables() *tables {
	classifier.mu.RLock()
	tab := classifier.tab
	classifier.mu.RUnlock()
	if tab != nil {
		return tab
	}

	classifier.mu.Lock()
	defer classifier.mu.Unlock()
	if classifier.tab == nil {
		reg := classifier.reg
		if reg == nil {
			reg = emptyRegistry{}
		}
		classifier.tab = buildTables(reg)
	}
	return classifier.tab
}

type emptyRegistry struct{}

func (emptyRegistry) Lookup(string) (Kind, bool) { return 0, false }
func (emptyRegistry) Name(Kind) (string, bool)   { return "", false }

var (
	castKindNames = []string{
		"T_ARRAY_CAST", "T_BOOL_CAST", "T_DOUBLE_CAST", "T_INT_CAST",
		"T_OBJECT_CAST", "T_STRING_CAST", "T_UNSET_CAST",
	}
	classyKindNames  = []string{"T_CLASS", "T_INTERFACE", "T_TRAIT", "T_ENUM"}
	commentKindNames = []string{"T_COMMENT", "T_DOC_COMMENT"}
)

const whitespaceKindName = "T_WHITESPACE"

func buildTables(r Registry) *tables {
	tab := &tables{
		registry: r,
		keywords: resolveSet(r, keywordKindNames),
		classy:   resolveSet(r, classyKindNames),
		casts:    resolveSet(r, castKindNames),
		comments: resolveSet(r, commentKindNames),
	}
	tab.whitespace, tab.hasWhitespace = r.Lookup(whitespaceKindName)
	return tab
}

// resolveSet probes names against the registry and keeps those the
// active version defines. Missing names are skipped, not errors.
func resolveSet(r Registry, names []string) map[Kind]struct{} {
	set := make(map[Kind]struct{}, len(names))
	for _, name := range names {
		if k, ok := r.Lookup(name); ok {
			set[k] = struct{}{}
		}
	}
	return set
}
