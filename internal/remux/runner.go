package remux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"trackmux/internal/deps"
	"trackmux/internal/logging"
	"trackmux/internal/textutil"
)

// ErrToolNotFound reports that a child process could not be started because
// its executable does not exist.
var ErrToolNotFound = errors.New("executable not found")

// maxOutputTailLines bounds how much captured child output is attached to an error.
const maxOutputTailLines = 10

// Tools names the executables a run spawns.
type Tools struct {
	FFmpeg   string
	MKVMerge string
}

// Command is one child process invocation.
type Command struct {
	Name string
	Args []string
	// Stream wires the child's stdout/stderr to the terminal instead of
	// capturing them.
	Stream bool
}

// String renders the command line for logs and dry-run output.
func (c Command) String() string {
	return logging.CommandLine(c.Name, c.Args)
}

// CommandRunner executes a child process and waits for it to exit.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) error
}

// CommandRunnerFunc adapts a function to CommandRunner.
type CommandRunnerFunc func(ctx context.Context, cmd Command) error

// Run calls f.
func (f CommandRunnerFunc) Run(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// Runner executes plans.
type Runner struct {
	tools    Tools
	logger   *slog.Logger
	commands CommandRunner
	remove   func(string) error
}

// NewRunner constructs a runner. Empty tool names fall back to the platform
// defaults.
func NewRunner(tools Tools, logger *slog.Logger) *Runner {
	tools.FFmpeg = textutil.FirstNonEmpty(tools.FFmpeg, deps.ExecutableName("ffmpeg"))
	tools.MKVMerge = textutil.FirstNonEmpty(tools.MKVMerge, deps.ExecutableName("mkvmerge"))
	return &Runner{
		tools:    tools,
		logger:   logging.NewComponentLogger(logger, "remux"),
		commands: execRunner{stdout: os.Stdout, stderr: os.Stderr},
		remove:   os.Remove,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (r *Runner) WithCommandRunner(c CommandRunner) {
	if r != nil && c != nil {
		r.commands = c
	}
}

// WithRemover replaces the function used to delete intermediates.
func (r *Runner) WithRemover(fn func(string) error) {
	if r != nil && fn != nil {
		r.remove = fn
	}
}

// Tools returns the executables the runner spawns.
func (r *Runner) Tools() Tools {
	return r.tools
}

type execRunner struct {
	stdout io.Writer
	stderr io.Writer
}

func (e execRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Stream {
		cmd.Stdout = e.stdout
		cmd.Stderr = e.stderr
		return commandError(c, cmd.Run(), nil)
	}
	output, err := cmd.CombinedOutput()
	return commandError(c, err, output)
}

func commandError(c Command, err error, output []byte) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrToolNotFound, c.Name)
	}
	if tail := outputTail(output, maxOutputTailLines); tail != "" {
		return fmt.Errorf("%s: %w: %s", c.Name, err, tail)
	}
	return fmt.Errorf("%s: %w", c.Name, err)
}

func outputTail(output []byte, maxLines int) string {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) == 0 {
		return ""
	}
	lines := strings.Split(string(trimmed), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}
