package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"golang.org/x/sync/errgroup"
)

// Writer writes rendered pages to an output directory.
type Writer struct {
	Log    *log.Logger // required
	OutDir string      // required

	// Jobs is the maximum number of pages written at the same time.
	// Defaults to 1.
	Jobs int

	// DryRun reports what would be written
	// without touching the filesystem.
	DryRun bool
}

// Write writes all pages, stopping at the first failure.
// Pages that were already written are left in place.
func (w *Writer) Write(ctx context.Context, pages []*Page) error {
	if w.DryRun {
		for _, p := range pages {
			w.Log.Printf("Would write docs for %v to %v", p.Symbol, filepath.Join(w.OutDir, p.Path))
		}
		return nil
	}

	if err := os.MkdirAll(w.OutDir, 0o1755); err != nil {
		return errtrace.Wrap(err)
	}

	jobs := w.Jobs
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, p := range pages {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errtrace.Wrap(err)
			}

			path := filepath.Join(w.OutDir, p.Path)
			if err := os.WriteFile(path, []byte(p.Text), 0o644); err != nil {
				return errtrace.Wrap(err)
			}

			w.Log.Printf("Wrote docs for %v", p.Symbol)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errtrace.Wrap(err)
	}

	// The caller's context may have been cancelled
	// before any page was started.
	return errtrace.Wrap(ctx.Err())
}
