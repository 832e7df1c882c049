package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/hints"
	"github.com/alnah/go-cv2pdf/internal/logging"
)

// runRender renders the CV once per style, concurrently through the pool.
func runRender(ctx context.Context, f *renderFlags, env *Environment) error {
	envCfg := loadEnvConfig()
	cfg, err := loadConfig(f.common.config, envCfg)
	if err != nil {
		return err
	}
	if err := mergeFlags(f, cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, env.Stdout, env.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run", uuid.NewString()))
	warnUnknownEnvVars(logger)

	// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS value,
	// in which case the runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))

	plan := newRenderPlan(cfg)
	in, err := cv2pdf.LoadInputs(ctx, plan.inputs)
	if err != nil {
		return inputError(plan.inputs, err)
	}

	jobs, err := plan.jobs(in.Personal.Name())
	if err != nil {
		return err
	}

	size := min(cv2pdf.ResolvePoolSize(plan.workers), len(jobs))
	pool := env.NewPool(size, plan.converterOptions(in.Template)...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing browsers", zap.Error(err))
		}
	}()
	logger.Debug("starting", zap.Int("styles", len(jobs)), zap.Int("workers", pool.Size()))

	start := env.Now()
	g, gctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		g.Go(func() error {
			return renderOne(gctx, pool, in, plan, job, logger, env)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("done", zap.Int("files", len(jobs)), zap.Duration("elapsed", env.Now().Sub(start)))
	return nil
}

// renderOne converts a single style and writes its files.
// A lone style was already loaded by LoadInputs.
func renderOne(ctx context.Context, pool Pool, in *cv2pdf.Inputs, plan *renderPlan, job renderJob, logger *zap.Logger, env *Environment) error {
	style := in.Style
	if len(plan.styles) > 1 {
		var err error
		style, err = cv2pdf.ResolveStyle(job.style, plan.inputs.AssetPath)
		if err != nil {
			return styleError(job.style, plan.inputs.AssetPath, err)
		}
	}

	conv, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer pool.Release(conv)

	start := env.Now()
	res, err := conv.Convert(ctx, cv2pdf.Input{
		Personal: in.Personal,
		Style:    style,
		Date:     plan.date,
		BaseDir:  in.BaseDir,
		HTMLOnly: plan.htmlOnly,
	})
	if err != nil {
		return fmt.Errorf("style %q: %w%s", job.style, err, convertHint(err))
	}

	if err := writeOutput(job.htmlPath, res.HTML); err != nil {
		return err
	}
	if plan.htmlOnly {
		logger.Info("rendered", zap.String("style", job.style), zap.String("html", job.htmlPath))
		return nil
	}
	if err := writeOutput(job.pdfPath, res.PDF); err != nil {
		return err
	}

	logger.Info("rendered",
		zap.String("style", job.style),
		zap.String("pdf", job.pdfPath),
		zap.Int("pages", res.Pages),
		zap.Duration("elapsed", env.Now().Sub(start)),
	)
	return nil
}

// writeOutput writes a generated file and tags failures as output errors.
func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// inputError appends a hint naming the flag of the missing input.
func inputError(paths cv2pdf.InputPaths, err error) error {
	var se *cv2pdf.StyleError
	if errors.As(err, &se) {
		return styleError(se.Ref, paths.AssetPath, se.Err)
	}
	switch {
	case errors.Is(err, cv2pdf.ErrReadInput) && !fileutil.FileExists(paths.Personal):
		return fmt.Errorf("%w%s", err, hints.ForInputNotFound("personal"))
	case errors.Is(err, cv2pdf.ErrReadInput):
		return fmt.Errorf("%w%s", err, hints.ForInputNotFound("template"))
	}
	return err
}

// styleError appends a hint matching the style failure.
func styleError(ref, assetPath string, err error) error {
	switch {
	case errors.Is(err, cv2pdf.ErrStyleNotFound):
		available, _ := cv2pdf.ListPresets(assetPath)
		return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(available))
	case errors.Is(err, cv2pdf.ErrParseInput):
		return fmt.Errorf("style %q: %w%s", ref, err, hints.ForStyleInvalid(ref))
	}
	return fmt.Errorf("style %q: %w", ref, err)
}

// convertHint suggests a fix for browser and timeout failures.
func convertHint(err error) string {
	switch {
	case errors.Is(err, cv2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	}
	return ""
}
