package fix_test

import (
	"errors"
	"testing"

	"phpfix/internal/diag"
	"phpfix/internal/fix"
	"phpfix/internal/token"
)

func whitespaceFinding(index int, id string) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.FixDoubleWhitespace,
		Message:  "adjacent whitespace tokens",
		Primary:  diag.Pos{Index: index},
		Fixes: []diag.Fix{{
			ID:           id,
			Title:        "merge adjacent whitespace",
			ClearIndexes: []int{index},
		}},
	}
}

func TestApplyOnce(t *testing.T) {
	configureLatest(t)
	s := mustStream(t,
		token.Bare(" "),
		token.Bare(" "),
		token.Bare(" "),
	)
	diags := []diag.Diagnostic{
		whitespaceFinding(1, "ws@1"),
		whitespaceFinding(2, "ws@2"),
	}

	res, err := fix.Apply(s, diags, fix.ApplyOptions{Mode: fix.ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].ID != "ws@1" {
		t.Fatalf("unexpected applied set: %+v", res.Applied)
	}
	if s.At(1).Content() != "" {
		t.Fatalf("token 1 not cleared")
	}
	if s.At(2).Content() != " " {
		t.Fatalf("token 2 must stay intact in once mode")
	}
}

func TestApplyAll(t *testing.T) {
	configureLatest(t)
	s := mustStream(t,
		token.Bare(" "),
		token.Bare(" "),
		token.Bare(" "),
	)
	diags := []diag.Diagnostic{
		whitespaceFinding(1, "ws@1"),
		whitespaceFinding(2, "ws@2"),
	}

	res, err := fix.Apply(s, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(res.Applied) != 2 {
		t.Fatalf("applied %d fixes, want 2", len(res.Applied))
	}
	if s.At(1).Content() != "" || s.At(2).Content() != "" {
		t.Fatalf("not all fixes were applied")
	}
	if res.Applied[0].Cleared != 1 {
		t.Fatalf("Cleared = %d, want 1", res.Applied[0].Cleared)
	}
}

func TestApplyByID(t *testing.T) {
	configureLatest(t)
	s := mustStream(t,
		token.Bare(" "),
		token.Bare(" "),
		token.Bare(" "),
	)
	diags := []diag.Diagnostic{
		whitespaceFinding(1, "ws@1"),
		whitespaceFinding(2, "ws@2"),
	}

	res, err := fix.Apply(s, diags, fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: "ws@2"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].ID != "ws@2" {
		t.Fatalf("unexpected applied set: %+v", res.Applied)
	}
	if s.At(1).Content() != " " || s.At(2).Content() != "" {
		t.Fatalf("wrong token cleared")
	}
}

func TestApplyUnknownID(t *testing.T) {
	configureLatest(t)
	s := mustStream(t, token.Bare(" "), token.Bare(" "))
	diags := []diag.Diagnostic{whitespaceFinding(1, "ws@1")}

	res, err := fix.Apply(s, diags, fix.ApplyOptions{Mode: fix.ApplyModeID, TargetID: "nope"})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].ID != "nope" {
		t.Fatalf("unknown id must be reported as skipped: %+v", res.Skipped)
	}
}

func TestApplyOutOfRangeIndex(t *testing.T) {
	configureLatest(t)
	s := mustStream(t, token.Bare(" "))
	diags := []diag.Diagnostic{whitespaceFinding(5, "ws@5")}

	res, err := fix.Apply(s, diags, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("out-of-range fix must be skipped: %+v", res.Skipped)
	}
	if s.At(0).Content() != " " {
		t.Fatalf("stream must stay untouched")
	}
}

func TestApplyNoDiagnostics(t *testing.T) {
	configureLatest(t)
	s := mustStream(t, token.Bare(" "))

	if _, err := fix.Apply(s, nil, fix.ApplyOptions{Mode: fix.ApplyModeAll}); !errors.Is(err, fix.ErrNoFixes) {
		t.Fatalf("err = %v, want ErrNoFixes", err)
	}
}

func TestApplyNilStream(t *testing.T) {
	if _, err := fix.Apply(nil, nil, fix.ApplyOptions{}); err == nil {
		t.Fatalf("nil stream must be an error")
	}
}

func TestApplySynthesizesMissingIDs(t *testing.T) {
	configureLatest(t)
	s := mustStream(t, token.Bare(" "), token.Bare(" "))
	d := whitespaceFinding(1, "")

	res, err := fix.Apply(s, []diag.Diagnostic{d}, fix.ApplyOptions{Mode: fix.ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].ID == "" {
		t.Fatalf("missing fix id must be synthesized: %+v", res.Applied)
	}
}
