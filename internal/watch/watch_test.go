package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func collect(t *testing.T) (func([]string), func() [][]string) {
	t.Helper()
	var mu sync.Mutex
	var batches [][]string
	record := func(paths []string) {
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()
	}
	snapshot := func() [][]string {
		mu.Lock()
		defer mu.Unlock()
		out := make([][]string, len(batches))
		copy(out, batches)
		return out
	}
	return record, snapshot
}

func waitFor(t *testing.T, deadline time.Duration, cond func() bool) bool {
	t.Helper()
	stop := time.Now().Add(deadline)
	for time.Now().Before(stop) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcherReportsChangedSpec(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "Counter.tla")
	if err := os.WriteFile(specPath, []byte("---- MODULE Counter ----\n====\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	record, snapshot := collect(t)
	w, err := New(50*time.Millisecond, nil, record)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{specPath}); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(specPath, []byte("---- MODULE Counter ----\nVARIABLE x\n====\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ok := waitFor(t, 3*time.Second, func() bool { return len(snapshot()) > 0 })
	if !ok {
		t.Fatal("no change batch reported for modified spec")
	}
	found := false
	for _, batch := range snapshot() {
		for _, path := range batch {
			if filepath.Base(path) == "Counter.tla" {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("batches %v do not mention Counter.tla", snapshot())
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	record, snapshot := collect(t)
	w, err := New(50*time.Millisecond, nil, record)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := snapshot(); len(got) != 0 {
		t.Errorf("unexpected batches for non-spec file: %v", got)
	}
}

func TestWatcherHonorsExcludePatterns(t *testing.T) {
	dir := t.TempDir()

	record, snapshot := collect(t)
	w, err := New(50*time.Millisecond, []string{"*_draft.tla"}, record)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "Counter_draft.tla"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	if got := snapshot(); len(got) != 0 {
		t.Errorf("unexpected batches for excluded file: %v", got)
	}
}

func TestWatcherExcludeMatchesBaseNameOnly(t *testing.T) {
	dir := t.TempDir()

	record, snapshot := collect(t)
	// Path-shaped patterns never match a base name, so this must not
	// suppress reporting.
	w, err := New(50*time.Millisecond, []string{filepath.Base(dir) + "/*.tla"}, record)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Watch([]string{dir}); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "Counter.tla"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	ok := waitFor(t, 3*time.Second, func() bool { return len(snapshot()) > 0 })
	if !ok {
		t.Fatal("path-shaped exclude pattern suppressed change reporting")
	}
}

func TestWatcherRejectsBadExcludePattern(t *testing.T) {
	_, err := New(time.Millisecond, []string{"[unterminated"}, func([]string) {})
	if err == nil {
		t.Fatal("expected error for malformed exclude pattern")
	}
}
