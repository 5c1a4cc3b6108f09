package pipeline

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/backmassage/avcp/internal/config"
	"github.com/backmassage/avcp/internal/media"
)

// Builder produces one descriptor per path. *media.Builder satisfies it.
type Builder interface {
	Build(ctx context.Context, path string) (*media.FileDescriptor, error)
}

// Options tunes ProcessAll.
type Options struct {
	Jobs     int       // Concurrent builds; clamped to [config.MinJobs, config.MaxJobs].
	Progress io.Writer // Progress bar destination; nil disables the bar.
}

// Diagnostic is a per-input failure reported alongside the batch.
type Diagnostic struct {
	Index int
	Path  string
	Err   error
}

// Batch is the outcome of ProcessAll. Files has exactly one descriptor per
// input path, in input order.
type Batch struct {
	Files       []*media.FileDescriptor
	Diagnostics []Diagnostic
	Stats       RunStats
}

// ProcessAll builds a descriptor for every path using up to opts.Jobs
// workers. A failing input never stops the batch: it gets the non-media
// sentinel and a Diagnostic. Once ctx is cancelled no new builds start and
// the remaining paths are recorded the same way with ctx.Err().
func ProcessAll(ctx context.Context, b Builder, paths []string, opts Options) *Batch {
	start := time.Now()
	batch := &Batch{Files: make([]*media.FileDescriptor, len(paths))}

	var (
		mu  sync.Mutex
		bar = newProgress(opts.Progress, len(paths))
	)
	record := func(i int, path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			batch.Diagnostics = append(batch.Diagnostics, Diagnostic{Index: i, Path: path, Err: err})
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	var g errgroup.Group
	g.SetLimit(clampJobs(opts.Jobs))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			batch.Files[i] = &media.FileDescriptor{Name: path}
			record(i, path, err)
			continue
		}
		i, path := i, path
		g.Go(func() error {
			d, err := b.Build(ctx, path)
			if d == nil {
				d = &media.FileDescriptor{Name: path}
			}
			batch.Files[i] = d
			record(i, path, err)
			return nil
		})
	}
	_ = g.Wait()

	if bar != nil {
		_ = bar.Finish()
	}
	sort.Slice(batch.Diagnostics, func(a, b int) bool {
		return batch.Diagnostics[a].Index < batch.Diagnostics[b].Index
	})
	batch.Stats = tally(batch)
	batch.Stats.Elapsed = time.Since(start)
	return batch
}

func tally(batch *Batch) RunStats {
	s := RunStats{Total: len(batch.Files), Failed: len(batch.Diagnostics)}
	for _, d := range batch.Files {
		if d.IsMedia() {
			s.Media++
		}
	}
	s.NotMedia = s.Total - s.Media - s.Failed
	return s
}

func clampJobs(n int) int {
	switch {
	case n < config.MinJobs:
		return config.MinJobs
	case n > config.MaxJobs:
		return config.MaxJobs
	}
	return n
}

func newProgress(w io.Writer, total int) *progressbar.ProgressBar {
	if w == nil || total < 2 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("probing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
