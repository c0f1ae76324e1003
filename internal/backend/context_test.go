package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.py")
	b := filepath.Join(dir, "b.py")
	missing := filepath.Join(dir, "nope.py")
	if err := os.WriteFile(a, []byte("A = 1"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(b, []byte("B = 2"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	context, log := ReadFiles([]string{a, missing, b})

	for _, want := range []string{
		"===== FILE: " + a + " =====",
		"A = 1",
		"===== FILE: " + b + " =====",
		"B = 2",
	} {
		if !strings.Contains(context, want) {
			t.Errorf("context missing %q:\n%s", want, context)
		}
	}
	if strings.Contains(context, "nope.py") {
		t.Errorf("context should not mention the missing file:\n%s", context)
	}

	if !strings.Contains(log, "Included file: "+a+" (5 chars)") {
		t.Errorf("log missing inclusion record for %s:\n%s", a, log)
	}
	if !strings.Contains(log, "File not found: "+missing) {
		t.Errorf("log missing not-found record:\n%s", log)
	}
}

func TestReadFiles_Empty(t *testing.T) {
	context, log := ReadFiles(nil)
	if context != "" || log != "" {
		t.Errorf("ReadFiles(nil) = (%q, %q), want empty", context, log)
	}
}

func TestReadFiles_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Reading a directory fails with something other than not-exist.
	context, log := ReadFiles([]string{sub})
	if context != "" {
		t.Errorf("context = %q, want empty", context)
	}
	if !strings.Contains(log, "Error reading "+sub) {
		t.Errorf("log = %q, want read-error record", log)
	}
}

func TestWithContext(t *testing.T) {
	if got := withContext("prompt", ""); got != "prompt" {
		t.Errorf("withContext with empty context = %q, want prompt unchanged", got)
	}

	got := withContext("prompt", "\n===== FILE: x =====\nbody\n")
	if !strings.HasPrefix(got, "prompt\n\n[CONTEXT]\n") {
		t.Errorf("withContext = %q, want marker after prompt", got)
	}
	if !strings.Contains(got, "body") {
		t.Errorf("withContext = %q, want file body included", got)
	}
}
