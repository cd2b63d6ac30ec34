package remux

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"trackmux/internal/language"
	"trackmux/internal/logging"
	"trackmux/internal/plan"
)

var (
	// ErrProbeFailed reports a failed dummy-mode ffmpeg run.
	ErrProbeFailed = errors.New("probe failed")
	// ErrTranscodeFailed reports that a stream could not be extracted.
	ErrTranscodeFailed = errors.New("transcode failed")
	// ErrMuxFailed reports a failed mkvmerge run. Intermediates are kept.
	ErrMuxFailed = errors.New("mux failed")
	// ErrCleanupFailed reports that an intermediate could not be removed.
	ErrCleanupFailed = errors.New("cleanup failed")
)

// Run executes p.
func (r *Runner) Run(ctx context.Context, p *plan.Plan) error {
	if r == nil {
		return errors.New("remux runner not initialized")
	}
	if p == nil {
		return errors.New("remux plan is required")
	}

	script := r.Commands(p)
	logger := logging.WithContext(ctx, r.logger)
	logger.Info(
		"remux started",
		logging.String(logging.FieldEventType, "remux_start"),
		logging.Bool("dummy", p.Dummy()),
		logging.String("language", language.DisplayName(p.Language())),
		logging.Int("inputs", len(p.Inputs())),
		logging.Int("jobs", len(script.Phase(PhaseTranscode))),
	)
	start := time.Now()

	var err error
	if p.Dummy() {
		err = r.phase(ctx, PhaseProbe, func(ctx context.Context, logger *slog.Logger) error {
			return r.runSteps(ctx, logger, script.Phase(PhaseProbe), ErrProbeFailed)
		})
	} else {
		err = r.runFull(ctx, script)
	}
	if err != nil {
		return err
	}

	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "remux_complete"),
		logging.Duration("duration", time.Since(start)),
	}
	if !p.Dummy() {
		attrs = append(attrs, logging.String("output", p.OutputPath()))
	}
	logger.Info("remux completed", logging.Args(attrs...)...)
	return nil
}

func (r *Runner) runFull(ctx context.Context, script Script) error {
	if err := r.phase(ctx, PhaseTranscode, func(ctx context.Context, logger *slog.Logger) error {
		return r.transcode(ctx, logger, script.Phase(PhaseTranscode))
	}); err != nil {
		return err
	}
	if err := r.phase(ctx, PhaseMux, func(ctx context.Context, logger *slog.Logger) error {
		return r.runSteps(ctx, logger, script.Phase(PhaseMux), ErrMuxFailed)
	}); err != nil {
		return err
	}
	return r.phase(ctx, PhaseCleanup, func(_ context.Context, logger *slog.Logger) error {
		return r.cleanup(logger, script.Cleanup)
	})
}

// transcode runs every step concurrently. The first failure cancels the
// rest; Wait returns only after all of them have exited.
func (r *Runner) transcode(ctx context.Context, logger *slog.Logger, steps []Step) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, step := range steps {
		step := step
		g.Go(func() error {
			if err := r.exec(gctx, logger, step); err != nil {
				return fmt.Errorf("%w: stream %s: %w", ErrTranscodeFailed, step.Label, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) runSteps(ctx context.Context, logger *slog.Logger, steps []Step, sentinel error) error {
	for _, step := range steps {
		if err := r.exec(ctx, logger, step); err != nil {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	return nil
}

func (r *Runner) cleanup(logger *slog.Logger, files []string) error {
	for _, file := range files {
		if err := r.remove(file); err != nil {
			return fmt.Errorf("%w: remove %s: %w", ErrCleanupFailed, file, err)
		}
		logger.Debug("intermediate removed", logging.String("file", file))
	}
	return nil
}

func (r *Runner) exec(ctx context.Context, logger *slog.Logger, step Step) error {
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "command_start"),
		logging.Command(step.Command.Name, step.Command.Args),
	}
	if step.Label != "" {
		attrs = append(attrs, logging.String(logging.FieldStream, step.Label))
	}
	logger.Info("command started", logging.Args(attrs...)...)
	return r.commands.Run(ctx, step.Command)
}

func (r *Runner) phase(ctx context.Context, name string, fn func(context.Context, *slog.Logger) error) error {
	ctx = logging.WithPhase(ctx, name)
	logger := logging.WithContext(ctx, r.logger)
	start := time.Now()
	logger.Info("phase started", logging.String(logging.FieldEventType, "phase_start"))

	if err := fn(ctx, logger); err != nil {
		logging.ErrorWithContext(logger, "phase failed", "phase_failure",
			logging.Duration("duration", time.Since(start)),
			logging.String(logging.FieldErrorHint, phaseHint(name)),
			logging.Error(err),
		)
		return err
	}

	logger.Info(
		"phase completed",
		logging.String(logging.FieldEventType, "phase_complete"),
		logging.Duration("duration", time.Since(start)),
	)
	return nil
}

func phaseHint(name string) string {
	switch name {
	case PhaseProbe:
		return "check that every input is readable by ffmpeg"
	case PhaseTranscode:
		return "verify the stream specifiers against the ffmpeg probe output (run without --name)"
	case PhaseMux:
		return "intermediate files were kept; inspect the mkvmerge output above"
	case PhaseCleanup:
		return "the output file is complete; remove the remaining intermediates manually"
	default:
		return "check logs for details"
	}
}
