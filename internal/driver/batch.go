package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"spanned/internal/linecache"
	"spanned/internal/srcfile"
)

// Request configures a batch locate run over several files.
type Request struct {
	UTF8    bool
	Jobs    int    // <= 0 means GOMAXPROCS
	Cache   *linecache.Cache
	Offsets []uint32
	Find    string // substring whose occurrences are added to Offsets
}

// FileResult holds everything resolved for one file. Err is per-file: one
// unreadable file does not sink the batch.
type FileResult struct {
	Path      string
	File      *srcfile.File
	Positions []Position
	Err       error
}

// LocateFiles resolves the request against every path in parallel. Results
// come back in input order regardless of scheduling. The only возможная
// ошибка — отмена контекста.
func LocateFiles(ctx context.Context, paths []string, req Request) ([]FileResult, error) {
	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = locateOne(path, req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func locateOne(path string, req Request) FileResult {
	file, err := srcfile.Load(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}

	offsets := append([]uint32(nil), req.Offsets...)
	if req.Find != "" {
		offsets = append(offsets, FindOffsets(file.Content, req.Find)...)
	}

	positions, err := Resolve(file, offsets, req.UTF8, req.Cache)
	if err != nil {
		return FileResult{Path: path, File: file, Err: err}
	}
	return FileResult{Path: path, File: file, Positions: positions}
}
