package remux

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExecRunnerToolNotFound(t *testing.T) {
	err := execRunner{}.Run(context.Background(), Command{Name: "trackmux-no-such-tool"})
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestExecRunnerAttachesOutputTail(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	err = execRunner{}.Run(context.Background(), Command{
		Name: sh,
		Args: []string{"-c", "echo first; echo boom; exit 3"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit status 3, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected captured output in error, got %v", err)
	}
}

func TestOutputTail(t *testing.T) {
	out := []byte("1\n2\n3\n4\n")
	if got := outputTail(out, 2); got != "3\n4" {
		t.Fatalf("outputTail = %q", got)
	}
	if got := outputTail([]byte("  \n"), 2); got != "" {
		t.Fatalf("expected empty tail, got %q", got)
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "mkvmerge", Args: []string{"--title", "My Show"}}
	if got := cmd.String(); got != `mkvmerge --title "My Show"` {
		t.Fatalf("String = %q", got)
	}
}
