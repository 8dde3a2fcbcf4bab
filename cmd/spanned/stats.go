package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spanned/internal/driver"
	"spanned/internal/srcfile"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] file...",
	Short: "Report byte, scalar-value, and line counts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type statsPayload struct {
	Path    string `json:"path"`
	Bytes   uint32 `json:"bytes"`
	Scalars uint32 `json:"scalars"`
	Lines   uint32 `json:"lines"`
}

func runStats(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	enc := json.NewEncoder(os.Stdout)
	failed := 0
	for _, path := range args {
		file, err := srcfile.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		st := driver.Summarize(file)

		if format == "json" {
			payload := statsPayload{Path: file.Path, Bytes: st.Bytes, Scalars: st.Scalars, Lines: st.Lines}
			if err := enc.Encode(payload); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%s: %d bytes, %d scalars, %d lines\n", file.Path, st.Bytes, st.Scalars, st.Lines)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}
