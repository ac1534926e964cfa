package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tlasitter/internal/cshim"
	"tlasitter/internal/observability"
	"tlasitter/internal/pool"
)

var (
	parsePath   = flag.String("parse", "", "Parse a TLA+ file and print its syntax tree")
	nodeTypes   = flag.Bool("node-types", false, "Print the node-type schema and exit")
	queryKind   = flag.String("query", "", "Print a query source (highlights|locals) and exit")
	verify      = flag.Bool("verify", false, "Verify the embedded bundle against grammar.toml and exit")
	watchPath   = flag.String("watch", "", "Re-parse a TLA+ file or directory on change")
	debounce    = flag.Duration("debounce", 200*time.Millisecond, "Debounce window for -watch")
	metricsAddr = flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g. :9251)")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("tlasitter v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Feed engine allocator activity into the metrics registry.
	cshim.Default().SetHook(observability.ShimHook{})

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			slog.Info("serving metrics", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				slog.Error("metrics server failed", "error", err)
			}
		}()
	}

	switch {
	case *nodeTypes:
		exitOn(printNodeTypes(os.Stdout))
	case *queryKind != "":
		exitOn(printQuery(os.Stdout, *queryKind))
	case *verify:
		issues, err := verifyBundle(os.Stdout)
		exitOn(err)
		if issues > 0 {
			os.Exit(1)
		}
	case *parsePath != "":
		parsers := pool.New()
		exitOn(parseFile(os.Stdout, parsers, *parsePath))
	case *watchPath != "":
		exitOn(watchAndReparse(os.Stdout, *watchPath, *debounce))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func exitOn(err error) {
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
