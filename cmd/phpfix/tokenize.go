package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"phpfix/internal/stream"
	"phpfix/internal/wire"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] dump.mptok",
	Short: "Decode and print a PHP token dump",
	Long:  `Tokenize decodes a msgpack token dump produced by a PHP lexer and prints the wrapped tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	phpVersion, err := cmd.Root().PersistentFlags().GetString("php")
	if err != nil {
		return fmt.Errorf("failed to get php flag: %w", err)
	}

	m, _, err := loadManifest(".")
	if err != nil {
		return err
	}
	if _, err := resolveRegistry(phpVersion, m); err != nil {
		return err
	}

	s, err := loadStream(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		return formatTokensPretty(os.Stdout, s)
	case "json":
		return formatTokensJSON(os.Stdout, s)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func loadStream(path string) (*stream.Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	protos, err := wire.Decode(f)
	if err != nil {
		return nil, err
	}
	return stream.FromPrototypes(protos)
}

// formatTokensPretty prints one token per line with the kind-name
// column aligned on display width.
func formatTokensPretty(w io.Writer, s *stream.Stream) error {
	nameWidth := 0
	for i := 0; i < s.Len(); i++ {
		if width := runewidth.StringWidth(displayName(s, i)); width > nameWidth {
			nameWidth = width
		}
	}
	for i := 0; i < s.Len(); i++ {
		t := s.At(i)
		if _, err := fmt.Fprintf(w, "%4d: %s %q", i, runewidth.FillRight(displayName(s, i), nameWidth), t.Content()); err != nil {
			return err
		}
		if line, ok := t.Line(); ok {
			if _, err := fmt.Fprintf(w, " line %d", line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func displayName(s *stream.Stream, i int) string {
	t := s.At(i)
	if name := t.Name(); name != "" {
		return name
	}
	if t.IsKinded() {
		// Kinded, but the active registry does not know the id.
		return "T_UNKNOWN"
	}
	return "<raw>"
}

type tokenOutput struct {
	Kind string `json:"kind,omitempty"`
	ID   int    `json:"id,omitempty"`
	Text string `json:"text"`
	Line int    `json:"line,omitempty"`
}

func formatTokensJSON(w io.Writer, s *stream.Stream) error {
	output := make([]tokenOutput, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		t := s.At(i)
		out := tokenOutput{
			Kind: t.Name(),
			Text: t.Content(),
		}
		if id, ok := t.ID(); ok {
			out.ID = int(id)
		}
		if line, ok := t.Line(); ok {
			out.Line = line
		}
		output = append(output, out)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
