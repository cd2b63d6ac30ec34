package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"trackmux/internal/deps"
	"trackmux/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	cfg := isolatedConfig(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, cfg)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
}

func TestLogFlagsOverrideConfig(t *testing.T) {
	cfg := isolatedConfig(t)
	if _, _, err := runCLI(t, []string{"--log-level", "verbose", "config", "validate"}, cfg); err == nil {
		t.Fatal("expected invalid --log-level to be rejected")
	}
	if _, _, err := runCLI(t, []string{"--log-format", "JSON", "config", "validate"}, cfg); err != nil {
		t.Fatalf("expected case-insensitive --log-format, got %v", err)
	}
}

func TestCheckReportsMissingTools(t *testing.T) {
	cfg := isolatedConfig(t)
	missing := testsupport.NewConfig(t)
	missing.Tools.FFmpeg = "/nonexistent/ffmpeg"
	missing.Tools.MKVMerge = "/nonexistent/mkvmerge"
	testsupport.WriteConfig(t, cfg, missing)

	out, _, err := runCLI(t, []string{"check"}, cfg)
	if !errors.Is(err, deps.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	requireContains(t, out, "== Dependencies ==")
	requireContains(t, out, "FFmpeg")
	requireContains(t, out, "MKVToolNix")
}

func TestCheckPassesWithStubTools(t *testing.T) {
	cfg := stubbedConfig(t, testsupport.OKStub, testsupport.OKStub)

	out, _, err := runCLI(t, []string{"check"}, cfg)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "[OK] Ready (")
	requireContains(t, out, "bin/ffmpeg")
}
