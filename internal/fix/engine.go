package fix

import (
	"errors"
	"fmt"
	"sort"

	"phpfix/internal/diag"
	"phpfix/internal/stream"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	ApplyModeOnce ApplyMode = iota
	ApplyModeAll
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID      string
	Title   string
	Code    diag.Code
	Message string
	Cleared int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// ApplyResult aggregates applied and skipped fixes.
type ApplyResult struct {
	Applied []AppliedFix
	Skipped []SkippedFix
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects fixes from diagnostics, selects a subset according to
// opts, and applies them by clearing tokens on s. Clearing never shifts
// indexes, so every candidate computed up front stays valid no matter
// how many fixes run before it.
func Apply(s *stream.Stream, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{
		Applied: make([]AppliedFix, 0),
		Skipped: make([]SkippedFix, 0),
	}
	if s == nil {
		return result, fmt.Errorf("fix: stream is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}

	sortCandidates(candidates)

	selected, selectionSkips := selectCandidates(candidates, opts)
	result.Skipped = append(result.Skipped, selectionSkips...)
	if len(selected) == 0 {
		return result, ErrNoFixes
	}

	for _, c := range selected {
		applied, skip, ok := applyOne(s, c)
		if !ok {
			result.Skipped = append(result.Skipped, skip)
			continue
		}
		result.Applied = append(result.Applied, applied)
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// gatherCandidates flattens diagnostics into fix candidates. Fixes
// without clear targets are ignored; fixes without an ID get a
// synthesized one from the diagnostic code, position, and fix index.
func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	var out []candidate
	order := 0
	for _, d := range diagnostics {
		for i, f := range d.Fixes {
			if len(f.ClearIndexes) == 0 {
				continue
			}
			if f.ID == "" {
				f.ID = fmt.Sprintf("%s@%d/%d", d.Code, d.Primary.Index, i)
			}
			out = append(out, candidate{diag: d, fix: f, order: order})
			order++
		}
	}
	return out
}

func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].diag.Primary.Index != cands[j].diag.Primary.Index {
			return cands[i].diag.Primary.Index < cands[j].diag.Primary.Index
		}
		return cands[i].order < cands[j].order
	})
}

func selectCandidates(cands []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeAll:
		return cands, nil
	case ApplyModeID:
		var selected []candidate
		for _, c := range cands {
			if c.fix.ID == opts.TargetID {
				selected = append(selected, c)
			}
		}
		if len(selected) == 0 {
			return nil, []SkippedFix{{ID: opts.TargetID, Reason: "no fix with this id"}}
		}
		return selected, nil
	default:
		return cands[:1], nil
	}
}

func applyOne(s *stream.Stream, c candidate) (AppliedFix, SkippedFix, bool) {
	for _, idx := range c.fix.ClearIndexes {
		if idx < 0 || idx >= s.Len() {
			skip := SkippedFix{
				ID:     c.fix.ID,
				Title:  c.fix.Title,
				Reason: fmt.Sprintf("clear index %d out of range [0,%d)", idx, s.Len()),
			}
			return AppliedFix{}, skip, false
		}
	}
	for _, idx := range c.fix.ClearIndexes {
		s.ClearAt(idx)
	}
	applied := AppliedFix{
		ID:      c.fix.ID,
		Title:   c.fix.Title,
		Code:    c.diag.Code,
		Message: c.diag.Message,
		Cleared: len(c.fix.ClearIndexes),
	}
	return applied, SkippedFix{}, true
}
