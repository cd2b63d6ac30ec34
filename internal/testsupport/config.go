// Package testsupport builds configurations, stub tools, and input files for
// tests that drive trackmux end to end.
package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"trackmux/internal/config"
)

// Stub tool bodies understood by WithStubbedTools.
const (
	// FFmpegStub creates the file named by its last argument.
	FFmpegStub = "for last; do :; done\n: > \"$last\"\n"
	// MKVMergeStub creates the file that follows -o.
	MKVMergeStub = "while [ $# -gt 0 ]; do\n  if [ \"$1\" = \"-o\" ]; then : > \"$2\"; fi\n  shift\ndone\n"
	// OKStub exits successfully without side effects.
	OKStub = "exit 0\n"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config rooted in a per-test temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithStubbedTools writes shell stubs for ffmpeg and mkvmerge and points the
// config at them. Tests using it are skipped where no POSIX shell exists.
func WithStubbedTools(ffmpegBody, mkvmergeBody string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tools.FFmpeg = WriteStub(b.t, filepath.Join(b.baseDir, "bin"), "ffmpeg", ffmpegBody)
		b.cfg.Tools.MKVMerge = WriteStub(b.t, filepath.Join(b.baseDir, "bin"), "mkvmerge", mkvmergeBody)
	}
}

// WithLogDir enables the log file under the config's temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// WriteStub writes an executable shell script and returns its path.
func WriteStub(t testing.TB, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
}
