package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"spanned/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "spanned",
	Short: "Byte-accurate line and column locator",
	Long:  `spanned resolves byte offsets and substring matches in text files to line:column positions, counting columns in Unicode scalar values or raw bytes`,
}

// main registers subcommands and persistent flags, then executes the root
// command. Command execution errors exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the target stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
