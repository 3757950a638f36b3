package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"phpfix/internal/diag"
	"phpfix/internal/fix"
	"phpfix/internal/stream"
	"phpfix/internal/wire"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <dump.mptok>...",
	Short: "Apply available fixes to one or more token dumps",
	Long:  "Run the rule set over token dumps, surface fixable findings, and apply them according to the chosen strategy.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fix with a specific identifier")
	fixCmd.Flags().Bool("write", false, "write the fixed dump back in place")
	fixCmd.Flags().String("source", "", "write regenerated source text to this file ('-' for stdout)")
	fixCmd.Flags().Int("jobs", 0, "max dumps fixed in parallel (0 = GOMAXPROCS)")
}

type fixFileResult struct {
	Path     string
	Result   *fix.ApplyResult
	ApplyErr error
	Err      error
}

func runFix(cmd *cobra.Command, args []string) error {
	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	sourceOut, err := cmd.Flags().GetString("source")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}
	// id уникален только внутри одного дампа
	if targetID != "" && len(args) > 1 {
		return fmt.Errorf("fix: --id can only be used with a single dump")
	}
	if sourceOut != "" && len(args) > 1 {
		return fmt.Errorf("fix: --source can only be used with a single dump")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	opts := fix.ApplyOptions{Mode: mode, TargetID: targetID}

	phpVersion, err := cmd.Root().PersistentFlags().GetString("php")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	m, _, err := loadManifest(".")
	if err != nil {
		return err
	}
	if _, err := resolveRegistry(phpVersion, m); err != nil {
		return err
	}

	cutset := ""
	var enabled []string
	if m != nil {
		cutset = m.Config.Whitespace.Cutset
		enabled = m.Config.Rules.Enabled
	}
	rules := fix.Rules(cutset)
	if len(enabled) > 0 {
		rules, err = fix.RulesByID(cutset, enabled)
		if err != nil {
			return err
		}
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]fixFileResult, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = fixOneDump(path, rules, opts, maxDiagnostics, write, sourceOut)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return reportFixResults(results)
}

func fixOneDump(path string, rules []fix.Rule, opts fix.ApplyOptions, maxDiagnostics int, write bool, sourceOut string) fixFileResult {
	out := fixFileResult{Path: path}

	s, err := loadStream(path)
	if err != nil {
		out.Err = err
		return out
	}

	bag := diag.NewBag(maxDiagnostics)
	bag.AddAll(fix.CheckAll(s, rules))
	bag.Sort()
	bag.Dedup()

	out.Result, out.ApplyErr = fix.Apply(s, bag.Items(), opts)
	if out.ApplyErr != nil && !errors.Is(out.ApplyErr, fix.ErrNoFixes) {
		return out
	}

	if write && out.Result != nil && len(out.Result.Applied) > 0 {
		if err := writeDump(path, s); err != nil {
			out.Err = err
			return out
		}
	}
	if sourceOut != "" {
		if err := writeSource(sourceOut, s); err != nil {
			out.Err = err
		}
	}
	return out
}

// writeDump replaces the dump atomically: encode to a sibling temp
// file, then rename over the original.
func writeDump(path string, s *stream.Stream) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	if err := wire.Encode(f, s.Prototypes()); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fix: %w", err)
	}
	return os.Rename(tmp, path)
}

func writeSource(path string, s *stream.Stream) error {
	text := s.Generate()
	if path == "-" {
		_, err := fmt.Fprint(os.Stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

var (
	dumpPathColor = color.New(color.FgCyan, color.Bold)
	appliedColor  = color.New(color.FgGreen)
	skippedColor  = color.New(color.FgYellow)
)

func reportFixResults(results []fixFileResult) error {
	var firstErr error
	for _, r := range results {
		if len(results) > 1 {
			dumpPathColor.Fprintf(os.Stdout, "%s:\n", r.Path)
		}
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if err := printApplyResult(r.Result, r.ApplyErr); err != nil {
			return err
		}
	}
	return firstErr
}

func printApplyResult(res *fix.ApplyResult, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		appliedColor.Fprintf(os.Stdout, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			fmt.Fprintf(os.Stdout, "  %s [%s] %s (%d cleared)\n", item.Title, item.ID, item.Code, item.Cleared)
		}
	}

	if len(res.Skipped) > 0 {
		skippedColor.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}
	return nil
}
