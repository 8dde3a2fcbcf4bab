package main

import (
	"encoding/json"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"spanned/internal/driver"
	"spanned/internal/linecache"
	"spanned/internal/render"
)

var locateCmd = &cobra.Command{
	Use:   "locate [flags] file...",
	Short: "Resolve byte offsets to line:column positions",
	Long:  `Locate maps byte offsets (--offset) and substring matches (--find) within each file to line:column positions`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLocate,
}

func init() {
	locateCmd.Flags().IntSlice("offset", nil, "byte offset to resolve (repeatable)")
	locateCmd.Flags().String("find", "", "resolve every occurrence of this substring")
	locateCmd.Flags().Bool("bytes", false, "count columns in bytes instead of Unicode scalar values")
	locateCmd.Flags().Bool("snippet", false, "print the source line with a caret")
	locateCmd.Flags().Bool("no-cache", false, "skip the newline index cache")
	locateCmd.Flags().String("cache-dir", "", "cache directory override (default: XDG cache)")
	locateCmd.Flags().Int("jobs", 0, "max files processed in parallel (0 = GOMAXPROCS)")
	locateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type locatePayload struct {
	Path   string `json:"path"`
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	rawOffsets, _ := flags.GetIntSlice("offset")
	find, _ := flags.GetString("find")
	byteCols, _ := flags.GetBool("bytes")
	snippet, _ := flags.GetBool("snippet")
	noCache, _ := flags.GetBool("no-cache")
	cacheDir, _ := flags.GetString("cache-dir")
	jobs, _ := flags.GetInt("jobs")
	format, _ := flags.GetString("format")

	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	if len(rawOffsets) == 0 && find == "" {
		return fmt.Errorf("nothing to resolve: pass --offset and/or --find")
	}

	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	utf8Mode := cfg.Input.UTF8 && !byteCols
	snippet = snippet || cfg.Render.Snippet

	offsets := make([]uint32, 0, len(rawOffsets))
	for _, off := range rawOffsets {
		v, err := safecast.Conv[uint32](off)
		if err != nil {
			return fmt.Errorf("invalid offset %d: %w", off, err)
		}
		offsets = append(offsets, v)
	}

	cache, err := openCache(noCache, cacheDir)
	if err != nil {
		return err
	}

	results, err := driver.LocateFiles(cmd.Context(), args, driver.Request{
		UTF8:    utf8Mode,
		Jobs:    jobs,
		Cache:   cache,
		Offsets: offsets,
		Find:    find,
	})
	if err != nil {
		return err
	}

	opts := render.Options{
		Color:    useColor(cmd, os.Stdout),
		TabWidth: cfg.Render.TabWidth,
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			failed++
			continue
		}
		switch format {
		case "json":
			if err := printLocateJSON(res); err != nil {
				return err
			}
		default:
			printLocatePretty(res, opts, snippet && !quiet)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func printLocatePretty(res driver.FileResult, opts render.Options, snippet bool) {
	for _, p := range res.Positions {
		fmt.Println(render.Location(res.Path, p.Line, p.Col, opts))
		if snippet {
			lineOff := int(p.Offset - p.LineStart)
			render.Snippet(os.Stdout, driver.LineText(res.File.Content, p), lineOff, opts)
		}
	}
}

func printLocateJSON(res driver.FileResult) error {
	enc := json.NewEncoder(os.Stdout)
	for _, p := range res.Positions {
		payload := locatePayload{
			Path:   res.Path,
			Offset: p.Offset,
			Line:   p.Line,
			Col:    p.Col,
		}
		if err := enc.Encode(payload); err != nil {
			return err
		}
	}
	return nil
}

// openCache honors --no-cache and --cache-dir. Кэш — это ускорение, не
// обязательное условие: nil отключает его целиком.
func openCache(noCache bool, dir string) (*linecache.Cache, error) {
	if noCache {
		return nil, nil
	}
	if dir != "" {
		return linecache.OpenAt(dir)
	}
	cache, err := linecache.Open("spanned")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return cache, nil
}
