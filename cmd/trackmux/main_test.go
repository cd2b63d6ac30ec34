package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"trackmux/internal/testsupport"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

// isolatedConfig points HOME at a temp dir and returns a config path that
// does not exist yet, so defaults apply.
func isolatedConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	return filepath.Join(base, "trackmux.toml")
}

// stubbedConfig writes a config whose tools are shell stubs with the given
// bodies and returns its path.
func stubbedConfig(t *testing.T, ffmpegBody, mkvmergeBody string) string {
	t.Helper()
	path := isolatedConfig(t)
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedTools(ffmpegBody, mkvmergeBody))
	testsupport.WriteConfig(t, path, cfg)
	return path
}
