package token

import "testing"

func TestKeywordKindNamesUnique(t *testing.T) {
	seen := make(map[string]bool, len(keywordKindNames))
	for _, name := range keywordKindNames {
		if seen[name] {
			t.Fatalf("duplicate keyword name %s", name)
		}
		seen[name] = true
	}
	// spot-check both ends of the version range
	for _, name := range []string{"T_ABSTRACT", "T_CLASS", "T_TRAIT", "T_ENUM", "T_YIELD_FROM"} {
		if !seen[name] {
			t.Fatalf("keyword list is missing %s", name)
		}
	}
}

func TestResolveSetSkipsUndefined(t *testing.T) {
	set := resolveSet(emptyRegistry{}, keywordKindNames)
	if len(set) != 0 {
		t.Fatalf("empty registry resolved %d kinds", len(set))
	}
}
