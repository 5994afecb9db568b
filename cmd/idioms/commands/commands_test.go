package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/hasbyte1/go-collection-idioms/idioms"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"IDIOMS_FORMAT", "IDIOMS_ONLY", "IDIOMS_VERBOSE"} {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unsetenv %s: %v", k, err)
		}
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunSelectedDemos(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "run", "partition", "minus")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "[Sammidev, Sammi]\n[Dev]\n[dev]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunAllDemos(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "Student(name=sammidev, nim=200311)\n") || !strings.HasSuffix(out, "House\nequal\n") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunOnlyFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("IDIOMS_ONLY", "minus")
	out, _, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "[dev]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFlagOverridesEnvFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("IDIOMS_FORMAT", "json")
	out, _, err := execute(t, "run", "--format", "text", "minus")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "[dev]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunJSONFormat(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "--format", "json", "run", "minus")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, `"snippet":"minus"`) || !strings.Contains(out, `"lines":["[dev]"]`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunUnknownDemo(t *testing.T) {
	clearEnv(t)
	_, _, err := execute(t, "run", "nope")
	if !errors.Is(err, idioms.ErrSnippetNotFound) {
		t.Fatalf("expected ErrSnippetNotFound, got %v", err)
	}
}

func TestInvalidFormat(t *testing.T) {
	clearEnv(t)
	_, _, err := execute(t, "run", "--format", "yaml")
	if !errors.Is(err, idioms.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	clearEnv(t)
	_, stderr, err := execute(t, "run", "-v", "unzip")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr, "snippet=unzip lines=1") {
		t.Fatalf("expected log line, got %q", stderr)
	}
}

func TestList(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != idioms.DefaultCatalog().Len() {
		t.Fatalf("listed %d demos", len(lines))
	}
	if lines[0] != "for-each\titerate a list" {
		t.Fatalf("first line %q", lines[0])
	}
}

func TestListJSON(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "list", "--format", "json", "--only", "unzip")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "{\"name\":\"unzip\",\"title\":\"split a list of pairs\"}\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFingerprint(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "fingerprint", "minus")
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	want := "Fingerprint: " + idioms.Fingerprint("[dev]\n") + "\n"
	if out != want {
		t.Fatalf("got %q; want %q", out, want)
	}
}
