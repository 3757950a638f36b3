package fix

import (
	"fmt"

	"phpfix/internal/diag"
	"phpfix/internal/stream"
	"phpfix/internal/token"
)

// Rule inspects a stream and reports fixable findings. Rules only
// read the stream; mutation happens later in Apply.
type Rule interface {
	ID() string
	Check(s *stream.Stream) []diag.Diagnostic
}

// Rules returns the built-in rule set in execution order. An empty
// cutset means token.DefaultWhitespaces.
func Rules(cutset string) []Rule {
	return []Rule{
		DoubleWhitespaceRule{Cutset: cutset},
		TrailingWhitespaceRule{Cutset: cutset},
	}
}

// RulesByID filters the built-in set to the given ids. Unknown ids are
// reported so a typo in phpfix.toml does not silently disable a rule.
func RulesByID(cutset string, ids []string) ([]Rule, error) {
	byID := make(map[string]Rule)
	for _, r := range Rules(cutset) {
		byID[r.ID()] = r
	}
	out := make([]Rule, 0, len(ids))
	for _, id := range ids {
		r, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("fix: unknown rule %q", id)
		}
		out = append(out, r)
	}
	return out, nil
}

// CheckAll runs every rule over the stream.
func CheckAll(s *stream.Stream, rules []Rule) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, r := range rules {
		out = append(out, r.Check(s)...)
	}
	return out
}

func cutsetOrDefault(cutset string) string {
	if cutset == "" {
		return token.DefaultWhitespaces
	}
	return cutset
}

// DoubleWhitespaceRule flags the second of two adjacent whitespace
// tokens; clearing it merges the run without shifting indexes.
type DoubleWhitespaceRule struct {
	Cutset string
}

func (DoubleWhitespaceRule) ID() string { return "double-whitespace" }

func (r DoubleWhitespaceRule) Check(s *stream.Stream) []diag.Diagnostic {
	cutset := cutsetOrDefault(r.Cutset)
	var out []diag.Diagnostic
	for i := 1; i < s.Len(); i++ {
		cur, prev := s.At(i), s.At(i-1)
		// Cleared slots trim to empty and would look like whitespace;
		// require non-empty content on both sides.
		if cur.Content() == "" || prev.Content() == "" {
			continue
		}
		if !cur.IsWhitespaceIn(cutset) || !prev.IsWhitespaceIn(cutset) {
			continue
		}
		line, _ := cur.Line()
		out = append(out, diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.FixDoubleWhitespace,
			Message:  "adjacent whitespace tokens",
			Primary:  diag.Pos{Index: i, Line: line},
			Fixes: []diag.Fix{{
				ID:           fmt.Sprintf("double-whitespace@%d", i),
				Title:        "merge adjacent whitespace",
				ClearIndexes: []int{i},
			}},
		})
	}
	return out
}

// TrailingWhitespaceRule flags a whitespace token at the very end of
// the stream.
type TrailingWhitespaceRule struct {
	Cutset string
}

func (TrailingWhitespaceRule) ID() string { return "trailing-whitespace" }

func (r TrailingWhitespaceRule) Check(s *stream.Stream) []diag.Diagnostic {
	cutset := cutsetOrDefault(r.Cutset)
	for i := s.Len() - 1; i >= 0; i-- {
		t := s.At(i)
		if t.Content() == "" {
			continue
		}
		if !t.IsWhitespaceIn(cutset) {
			return nil
		}
		line, _ := t.Line()
		return []diag.Diagnostic{{
			Severity: diag.SevWarning,
			Code:     diag.FixTrailingWhitespace,
			Message:  "trailing whitespace at end of stream",
			Primary:  diag.Pos{Index: i, Line: line},
			Fixes: []diag.Fix{{
				ID:           fmt.Sprintf("trailing-whitespace@%d", i),
				Title:        "drop trailing whitespace",
				ClearIndexes: []int{i},
			}},
		}}
	}
	return nil
}
