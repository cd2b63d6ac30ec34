package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"trackmux/internal/deps"
	"trackmux/internal/logging"
	"trackmux/internal/plan"
	"trackmux/internal/preflight"
	"trackmux/internal/remux"
	"trackmux/internal/workdir"
)

type remuxFlags struct {
	inputs      []string
	video       string
	english     []string
	ukrainian   []string
	russian     []string
	other       []string
	subtitles   []string
	trackNames  []string
	language    string
	prefix      string
	title       string
	destination string
	dryRun      bool
}

func (f *remuxFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringArrayVarP(&f.inputs, "input", "i", nil, "Input file; repeat for more. The first input supplies the video")
	fs.StringVarP(&f.video, "video", "v", plan.DefaultVideo, "Video stream of the primary input")
	fs.StringArrayVarP(&f.english, "audio-english", "e", nil, "English audio stream specifier (repeatable)")
	fs.StringArrayVarP(&f.ukrainian, "audio-ukrainian", "u", nil, "Ukrainian audio stream specifier (repeatable)")
	fs.StringArrayVarP(&f.russian, "audio-russian", "r", nil, "Russian audio stream specifier (repeatable)")
	fs.StringArrayVarP(&f.other, "audio-other", "o", nil, "Audio stream in --language (repeatable)")
	fs.StringArrayVarP(&f.subtitles, "subtitles", "s", nil, "Subtitle stream specifier (repeatable)")
	fs.StringArrayVarP(&f.trackNames, "track-names", "t", nil, "Track name in mux order; o = Original, d = Dub (repeatable)")
	fs.StringVarP(&f.language, "language", "l", plan.DefaultLanguage, "Original language of the content (ISO 639)")
	fs.StringVarP(&f.prefix, "prefix", "p", "", "Output file name prefix")
	fs.StringVarP(&f.title, "name", "n", "", "Title; without it only the inputs are probed")
	fs.StringVarP(&f.destination, "destination", "d", plan.DefaultDestination, "Output directory")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Print the commands a run would execute and exit")
	_ = cmd.MarkFlagRequired("input")
}

func (f *remuxFlags) options(cmd *cobra.Command) plan.Options {
	return plan.Options{
		Inputs:      f.inputs,
		Video:       f.video,
		English:     f.english,
		Ukrainian:   f.ukrainian,
		Russian:     f.russian,
		Other:       f.other,
		Subtitles:   f.subtitles,
		TrackNames:  f.trackNames,
		Language:    f.language,
		Prefix:      f.prefix,
		Title:       f.title,
		TitleSet:    cmd.Flags().Changed("name"),
		Destination: f.destination,
	}
}

func runRemux(cmd *cobra.Command, ctx *commandContext, flags *remuxFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	p, err := plan.New(flags.options(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, p.String())

	runner := remux.NewRunner(remux.Tools{FFmpeg: cfg.FFmpegBinary(), MKVMerge: cfg.MKVMergeBinary()}, logger)
	if flags.dryRun {
		fmt.Fprintln(out, renderScript(runner.Commands(p)))
		return nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	if err := preflight.Err(preflight.RunAll(p, workDir)); err != nil {
		return err
	}
	if err := deps.Require(deps.CheckBinaries(toolRequirements(cfg, p.Dummy()))); err != nil {
		return err
	}

	if cfg.Workdir.Lock && !p.Dummy() {
		lock, err := workdir.Acquire(workDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logging.WarnWithContext(logger, "working directory lock not released", "lock_release_failed",
					logging.String("lock", lock.Path()),
					logging.Error(err),
					logging.String(logging.FieldImpact, "the next run in this directory may report it as locked"),
					logging.String(logging.FieldErrorHint, "delete the lock file once no trackmux run is active"),
				)
			}
		}()
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = logging.WithRunID(runCtx, uuid.NewString())

	return runner.Run(runCtx, p)
}

func renderScript(script remux.Script) string {
	rows := make([][]string, 0, len(script.Steps)+len(script.Cleanup))
	for _, step := range script.Steps {
		rows = append(rows, []string{strconv.Itoa(len(rows) + 1), step.Phase, step.Label, step.Command.String()})
	}
	for _, file := range script.Cleanup {
		rows = append(rows, []string{strconv.Itoa(len(rows) + 1), remux.PhaseCleanup, "", "remove " + file})
	}
	return renderTable(
		[]string{"#", "Phase", "Stream", "Command"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}
