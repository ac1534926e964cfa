package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"tlasitter"
	"tlasitter/internal/manifest"
	"tlasitter/internal/pool"
	"tlasitter/internal/watch"
)

func printNodeTypes(w io.Writer) error {
	_, err := io.WriteString(w, tlasitter.NodeTypes())
	return err
}

func printQuery(w io.Writer, kind string) error {
	switch kind {
	case "highlights":
		_, err := io.WriteString(w, tlasitter.HighlightsQuery())
		return err
	case "locals":
		_, err := io.WriteString(w, tlasitter.LocalsQuery())
		return err
	default:
		return fmt.Errorf("unknown query %q (want highlights or locals)", kind)
	}
}

func verifyBundle(w io.Writer) (int, error) {
	m, err := manifest.Load(tlasitter.Bundle(), "grammar.toml")
	if err != nil {
		return 0, fmt.Errorf("load grammar.toml: %w", err)
	}

	issues := manifest.Verify(tlasitter.Bundle(), m)
	if len(issues) == 0 {
		fmt.Fprintf(w, "Bundle verification passed: %d artifacts match grammar.toml (grammar %s, ABI %d).\n",
			len(m.Artifacts), m.Grammar.Name, m.Grammar.ABIVersion)
		return 0, nil
	}

	fmt.Fprintf(w, "Bundle verification failed (%d issues):\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	return len(issues), nil
}

func parseFile(w io.Writer, parsers *pool.Pool, path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	sp := parsers.Get()
	defer parsers.Put(sp)

	tree := sp.Parse(source, nil)
	if tree == nil {
		return fmt.Errorf("parse produced no tree for %s", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	fmt.Fprintln(w, root.ToSexp())
	if n := countErrors(root); n > 0 {
		fmt.Fprintf(w, "%s: %d syntax error(s)\n", path, n)
	}
	return nil
}

func countErrors(node *sitter.Node) int {
	if node == nil {
		return 0
	}
	count := 0
	if node.IsError() || node.IsMissing() {
		count++
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		count += countErrors(node.Child(i))
	}
	return count
}

func watchAndReparse(w io.Writer, path string, debounce time.Duration) error {
	parsers := pool.New()

	watcher, err := watch.New(debounce, nil, func(changed []string) {
		for _, p := range changed {
			if err := parseFile(w, parsers, p); err != nil {
				slog.Error("re-parse failed", "path", p, "error", err)
			}
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Watch([]string{path}); err != nil {
		return err
	}
	slog.Info("watching for changes", "path", path, "debounce", debounce)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	return nil
}
