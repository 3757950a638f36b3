package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"phpfix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "phpfix",
	Short: "PHP token-stream analyzer and fixer",
	Long:  `phpfix inspects token dumps produced by a PHP lexer, reports fixable findings, and applies fixes by clearing tokens in place`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		color.NoColor = !(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))
		return nil
	},
}

// main registers subcommands and persistent flags, then executes the
// root command. A command error exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("php", "", "PHP version of the kind registry (default: phpfix.toml, then latest)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to report per dump")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
