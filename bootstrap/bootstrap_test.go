package bootstrap

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// templateFiles is a minimal unbootstrapped Go workspace template.
var templateFiles = map[string]string{
	"go.work":              "go 1.25.5\n\nuse (\n\t./template\n\t./xtask\n)\n// github.com/fast/template\n",
	"go.work.sum":          "",
	"template/go.mod":      "module github.com/fast/template\n\ngo 1.25.5\n",
	"template/main.go":     "package main\n",
	"xtask/go.mod":         "module github.com/fast/template/xtask\n",
	"README.md":            "# ${projectName}\n\nhttps://github.com/fast/template\n",
	".github/semantic.yml": "repo: https://github.com/fast/template\n",
}

func newTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range templateFiles {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}
	return root
}

func TestRun_EndToEnd(t *testing.T) {
	root := newTemplate(t)
	var out bytes.Buffer
	b := New(root, DefaultPlan(), &out, &out)

	if err := b.CheckRoot(); err != nil {
		t.Fatalf("CheckRoot: %v", err)
	}
	res := b.Run("demo", "alice")
	if err := res.Err(); err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}

	want := map[string]string{
		"go.work":              "go 1.25.5\n\nuse (\n\t./demo\n\t./xtask\n)\n// github.com/alice/demo\n",
		"demo/go.mod":          "module github.com/alice/demo\n\ngo 1.25.5\n",
		"README.md":            "# demo\n\nhttps://github.com/alice/demo\n",
		".github/semantic.yml": "repo: https://github.com/alice/demo\n",
		"xtask/go.mod":         "module github.com/fast/template/xtask\n",
	}
	for name, content := range want {
		if got := readFile(t, filepath.Join(root, filepath.FromSlash(name))); got != content {
			t.Errorf("%s = %q, want %q", name, got, content)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "template")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("template directory still exists: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "demo", "main.go")); err != nil {
		t.Errorf("renamed directory lost its content: %v", err)
	}

	if got := strings.Count(out.String(), "[OK]"); got != len(res.Steps) {
		t.Errorf("expected %d [OK] lines, got %d:\n%s", len(res.Steps), got, out.String())
	}
	if !strings.Contains(out.String(), "Updating go.work...") {
		t.Errorf("missing task label in output:\n%s", out.String())
	}
}

func TestRun_RenameCollision(t *testing.T) {
	root := newTemplate(t)
	writeFile(t, filepath.Join(root, "demo", "keep.txt"), "existing")

	var out bytes.Buffer
	res := New(root, DefaultPlan(), &out, &out).Run("demo", "alice")

	failed := res.Failed()
	if len(failed) != 1 {
		t.Fatalf("expected only the rename to fail, got %+v", failed)
	}
	var collision *CollisionError
	if !errors.As(failed[0].Err, &collision) {
		t.Fatalf("expected *CollisionError, got %v", failed[0].Err)
	}
	if !strings.Contains(out.String(), `[ERROR] directory "demo" already exists`) {
		t.Errorf("collision not reported:\n%s", out.String())
	}

	if got := readFile(t, filepath.Join(root, "demo", "keep.txt")); got != "existing" {
		t.Errorf("existing directory modified: %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "template", "go.mod")); err != nil {
		t.Errorf("template directory removed: %v", err)
	}
}

func TestRun_ContinuesAfterFailedStep(t *testing.T) {
	root := newTemplate(t)
	if err := os.Remove(filepath.Join(root, "README.md")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	res := New(root, DefaultPlan(), &out, &out).Run("demo", "alice")

	failed := res.Failed()
	if len(failed) != 1 || !strings.Contains(failed[0].Label, "README.md") {
		t.Fatalf("expected README.md step to fail, got %+v", failed)
	}
	if !errors.Is(res.Err(), os.ErrNotExist) {
		t.Errorf("Err() = %v, want it to wrap os.ErrNotExist", res.Err())
	}
	// Later steps still ran.
	if got := readFile(t, filepath.Join(root, ".github", "semantic.yml")); !strings.Contains(got, "alice/demo") {
		t.Errorf("semantic.yml not updated: %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "demo")); err != nil {
		t.Errorf("rename did not run: %v", err)
	}
}

func TestRun_OptionalStepSkipped(t *testing.T) {
	root := newTemplate(t)
	if err := os.Remove(filepath.Join(root, "go.work.sum")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	res := New(root, DefaultPlan(), &out, &out).Run("demo", "alice")
	if err := res.Err(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	skipped := 0
	for _, s := range res.Steps {
		if s.Status == StatusSkipped {
			skipped++
		}
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped step, got %d", skipped)
	}
	if !strings.Contains(out.String(), "[SKIP]") {
		t.Errorf("skip not reported:\n%s", out.String())
	}
}

func TestCheckRoot(t *testing.T) {
	tests := []struct {
		name    string
		remove  string
		wantMsg string
	}{
		{name: "missing root manifest", remove: "go.work", wantMsg: "project root directory"},
		{name: "missing task runner", remove: "xtask", wantMsg: "project root directory"},
		{name: "already bootstrapped", remove: "template", wantMsg: "already been bootstrapped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTemplate(t)
			if err := os.RemoveAll(filepath.Join(root, tt.remove)); err != nil {
				t.Fatal(err)
			}

			err := New(root, DefaultPlan(), &bytes.Buffer{}, &bytes.Buffer{}).CheckRoot()
			var perr *PreconditionError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *PreconditionError, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCleanup(t *testing.T) {
	t.Run("removes leftovers", func(t *testing.T) {
		root := newTemplate(t)
		workflow := filepath.Join(root, ".github", "workflows", "ci-bootstrap.yml")
		writeFile(t, workflow, "name: bootstrap\n")

		res := New(root, DefaultPlan(), &bytes.Buffer{}, &bytes.Buffer{}).Cleanup()
		if err := res.Err(); err != nil {
			t.Fatalf("Cleanup: %v", err)
		}
		if _, err := os.Stat(workflow); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("workflow still exists: %v", err)
		}
	})

	t.Run("missing leftover is broken state", func(t *testing.T) {
		root := newTemplate(t)
		res := New(root, DefaultPlan(), &bytes.Buffer{}, &bytes.Buffer{}).Cleanup()
		if err := res.Err(); err == nil || !strings.Contains(err.Error(), "broken bootstrap cleanup state") {
			t.Fatalf("expected broken state error, got %v", err)
		}
	})
}

func TestRun_ErrorsGoToErrOut(t *testing.T) {
	root := newTemplate(t)
	writeFile(t, filepath.Join(root, "demo", "keep.txt"), "existing")

	var out, errOut bytes.Buffer
	New(root, DefaultPlan(), &out, &errOut).Run("demo", "alice")

	if strings.Contains(out.String(), "[ERROR]") {
		t.Errorf("error outcome written to out:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Renaming directory") {
		t.Errorf("task label missing from out:\n%s", out.String())
	}
	if got := errOut.String(); got != "[ERROR] directory \"demo\" already exists\n" {
		t.Errorf("errOut = %q", got)
	}
}
