package transform

import (
	"context"
	"runtime"
	"sync"

	"cutter/core/progress"
	"cutter/feature/naming"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// outputExt is the encoding every derivative is written in. The publish
// phase's content type must stay in sync with it.
const outputExt = "jpg"

// unit is one (source, spec) pair, the unit of scheduling and of
// failure isolation.
type unit struct {
	source string
	spec   CropSpec
}

// outcome is the terminal state of one unit: a produced path, or a
// recorded failure.
type outcome struct {
	path string
	err  error
}

// Engine fans the (sources x specs) cross product out onto a bounded
// worker pool and collects the produced artifact paths.
type Engine struct {
	logger   *zap.Logger
	reporter *progress.Reporter
	workers  int
}

// NewEngine creates an Engine. workers bounds the pool; values < 1 fall
// back to the CPU count, since decode and resample are CPU-bound and
// extra workers only grow the set of decoded images held in memory.
func NewEngine(logger *zap.Logger, reporter *progress.Reporter, workers int) *Engine {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Engine{logger: logger, reporter: reporter, workers: workers}
}

// Run processes every (source, spec) pair and returns the paths of the
// derivatives it produced, in no particular order. A unit that fails to
// decode or write is logged and dropped; its siblings are unaffected,
// so the result holds up to len(sources)*len(specs) paths. The manifest
// is only assembled after all units have finished, and the caller owns
// it exclusively once returned.
//
// A launched run always drives every unit to a terminal state; the
// context is passed through for API symmetry with the network phases
// but does not abort scheduled work.
func (e *Engine) Run(ctx context.Context, sources []string, specs []CropSpec, outputDir string) []string {
	units := make([]unit, 0, len(sources)*len(specs))
	for _, src := range sources {
		for _, spec := range specs {
			units = append(units, unit{source: src, spec: spec})
		}
	}

	e.logger.Info("Processing files",
		zap.Int("sources", len(sources)),
		zap.Int("sizes", len(specs)),
		zap.Int("units", len(units)),
	)

	outcomes := make(chan outcome)

	// Single collector goroutine: workers share no result slice, and
	// progress uses the completion count as numerator.
	var produced []string
	var collector sync.WaitGroup
	collector.Add(1)
	go func() {
		defer collector.Done()
		completed := 0
		e.reporter.Report(completed, len(units), "Processed")
		for out := range outcomes {
			completed++
			if out.err == nil {
				produced = append(produced, out.path)
			}
			e.reporter.Report(completed, len(units), "Processed")
		}
	}()

	var pool errgroup.Group
	pool.SetLimit(e.workers)
	for _, u := range units {
		u := u
		pool.Go(func() error {
			outcomes <- e.process(u, outputDir)
			return nil
		})
	}

	// Join barrier: workers first, then the collector drains.
	_ = pool.Wait()
	close(outcomes)
	collector.Wait()

	return produced
}

// process runs one unit to its terminal state. Output paths are
// pre-computed and injective over (source stem, spec), so concurrent
// units never write to the same file.
func (e *Engine) process(u unit, outputDir string) outcome {
	path := naming.DerivePath(naming.Stem(u.source), u.spec.Width, u.spec.Height, outputDir, outputExt)

	img, err := Transform(u.source, u.spec)
	if err != nil {
		e.logger.Warn("Skipping unit: transform failed",
			zap.String("source", u.source),
			zap.String("size", u.spec.String()),
			zap.Error(err),
		)
		return outcome{err: err}
	}

	if err := imaging.Save(img, path); err != nil {
		err = &EncodeError{Path: path, Err: err}
		e.logger.Warn("Skipping unit: save failed",
			zap.String("source", u.source),
			zap.String("size", u.spec.String()),
			zap.Error(err),
		)
		return outcome{err: err}
	}

	return outcome{path: path}
}
