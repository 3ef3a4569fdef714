package pipeline

import (
	"context"
	"fmt"

	"cutter/core/progress"
	"cutter/core/storage"
	"cutter/core/workspace"
	"cutter/feature/naming"
	"cutter/feature/remote"
	"cutter/feature/transform"

	"go.uber.org/zap"
)

// Config is the resolved, validated configuration of one batch run. It
// is constructed once at the command boundary and passed by value; no
// phase mutates it.
type Config struct {
	// FilesPath is the directory sources are read from (and, for remote
	// runs, downloaded into).
	FilesPath string
	// WorkDir is the working directory prepared before the run.
	WorkDir string
	// Specs is the ordered sequence of target geometries.
	Specs []transform.CropSpec
	// Bucket, Region and Prefix address the remote gallery. An empty
	// Bucket makes the run purely local.
	Bucket string
	Region string
	Prefix string
	// FetchRemote materializes sources from the bucket before the
	// transform phase.
	FetchRemote bool
	// Overwrite also fetches keys that already carry derivative
	// markers, so their thumbnails get regenerated.
	Overwrite bool
	// Clean wipes the working directory before the run.
	Clean bool
	// Verbose emits every progress update and an expanded config dump.
	Verbose bool
}

// Pipeline runs batches. The storage client may be nil for purely local
// configurations.
type Pipeline struct {
	store  storage.Client
	logger *zap.Logger
}

// New creates a Pipeline.
func New(store storage.Client, logger *zap.Logger) *Pipeline {
	return &Pipeline{store: store, logger: logger}
}

// Run executes one batch: prepare the working directory, optionally
// fetch sources from the remote, resolve the local source set,
// transform the (source x spec) cross product, and optionally publish
// the produced derivatives. Phases are strictly sequential; each one
// completes (or fails) before the next starts. The returned manifest
// holds the paths of every derivative produced.
func (p *Pipeline) Run(ctx context.Context, cfg Config) ([]string, error) {
	if cfg.Verbose {
		p.explain(cfg)
	}

	reporter := progress.New(p.logger, cfg.Verbose)
	policy := naming.UnderscorePolicy{}

	if err := workspace.Prepare(cfg.WorkDir, cfg.Clean || cfg.Overwrite); err != nil {
		return nil, err
	}

	if cfg.FetchRemote && cfg.Bucket != "" {
		if p.store == nil {
			return nil, fmt.Errorf("remote fetch requested but no storage client configured")
		}
		if err := workspace.Prepare(cfg.FilesPath, cfg.Clean || cfg.Overwrite); err != nil {
			return nil, err
		}
		rec := remote.NewReconciler(p.store, p.logger, reporter, policy)
		if _, err := rec.Fetch(ctx, cfg.Bucket, cfg.Prefix, cfg.FilesPath, cfg.Overwrite); err != nil {
			return nil, err
		}
	}

	p.logger.Info("Finding files", zap.String("path", cfg.FilesPath))
	sources, err := naming.Resolve(cfg.FilesPath, policy)
	if err != nil {
		return nil, err
	}

	engine := transform.NewEngine(p.logger, reporter, 0)
	manifest := engine.Run(ctx, sources, cfg.Specs, cfg.FilesPath)

	if cfg.Bucket != "" {
		if p.store == nil {
			return nil, fmt.Errorf("publish requested but no storage client configured")
		}
		rec := remote.NewReconciler(p.store, p.logger, reporter, policy)
		if err := rec.Publish(ctx, cfg.Bucket, cfg.Prefix, manifest); err != nil {
			return nil, err
		}
	}

	p.logger.Info("Done",
		zap.Int("sources", len(sources)),
		zap.Int("produced", len(manifest)),
	)

	return manifest, nil
}

// explain logs the expanded configuration the way an operator would
// want to read it before a long batch.
func (p *Pipeline) explain(cfg Config) {
	sizes := make([]string, 0, len(cfg.Specs))
	for _, spec := range cfg.Specs {
		sizes = append(sizes, spec.String())
	}

	fields := []zap.Field{
		zap.String("files_path", cfg.FilesPath),
		zap.String("work_dir", cfg.WorkDir),
		zap.Strings("sizes", sizes),
		zap.Bool("clean", cfg.Clean),
	}
	if cfg.Bucket != "" {
		fields = append(fields,
			zap.String("bucket", cfg.Bucket),
			zap.String("region", cfg.Region),
			zap.String("prefix", cfg.Prefix),
			zap.Bool("fetch_remote", cfg.FetchRemote),
			zap.Bool("overwrite", cfg.Overwrite),
		)
	}

	p.logger.Info("Configuration", fields...)
}
