package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tlasitter/internal/pool"
)

func TestPrintNodeTypes(t *testing.T) {
	var out bytes.Buffer
	if err := printNodeTypes(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"type"`) {
		t.Errorf("node-types output does not look like a schema: %.80s", out.String())
	}
}

func TestPrintQuery(t *testing.T) {
	for _, kind := range []string{"highlights", "locals"} {
		var out bytes.Buffer
		if err := printQuery(&out, kind); err != nil {
			t.Fatal(err)
		}
		if out.Len() == 0 {
			t.Errorf("query %q printed nothing", kind)
		}
	}

	var out bytes.Buffer
	if err := printQuery(&out, "tags"); err == nil {
		t.Error("expected error for unknown query kind")
	}
}

func TestVerifyBundle(t *testing.T) {
	var out bytes.Buffer
	issues, err := verifyBundle(&out)
	if err != nil {
		t.Fatal(err)
	}
	if issues != 0 {
		t.Fatalf("embedded bundle reported %d issues:\n%s", issues, out.String())
	}
	if !strings.Contains(out.String(), "passed") {
		t.Errorf("unexpected verify output: %s", out.String())
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Counter.tla")
	spec := "---- MODULE Counter ----\nVARIABLE x\nInit == x = 0\n====\n"
	if err := os.WriteFile(path, []byte(spec), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := parseFile(&out, pool.New(), path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "source_file") {
		t.Errorf("parse output missing root node: %.120s", out.String())
	}
	if strings.Contains(out.String(), "syntax error") {
		t.Errorf("valid spec reported syntax errors: %s", out.String())
	}
}

func TestParseFileReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Broken.tla")
	if err := os.WriteFile(path, []byte("---- MODULE Broken ----\nInit == (\n====\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := parseFile(&out, pool.New(), path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "syntax error") {
		t.Errorf("broken spec did not report syntax errors: %s", out.String())
	}
}

func TestParseFileMissingPath(t *testing.T) {
	var out bytes.Buffer
	if err := parseFile(&out, pool.New(), filepath.Join(t.TempDir(), "absent.tla")); err == nil {
		t.Error("expected error for missing file")
	}
}
