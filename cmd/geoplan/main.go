// Command geoplan loads a route network and answers shortest-path and
// reachability queries from the command line or over HTTP.
//
// Usage:
//
//	geoplan [flags] print
//	geoplan [flags] path <from> <to>
//	geoplan [flags] reach <id>
//	geoplan [flags] serve
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/astar"
	"github.com/katalvlaran/geoplan/bfs"
	"github.com/katalvlaran/geoplan/core"
	"github.com/katalvlaran/geoplan/geo"
	"github.com/katalvlaran/geoplan/internal/config"
	"github.com/katalvlaran/geoplan/internal/httpapi"
	"github.com/katalvlaran/geoplan/internal/logging"
	"github.com/katalvlaran/geoplan/internal/metrics"
	"github.com/katalvlaran/geoplan/report"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	graph   *core.Graph
	metrics *metrics.Collector
	stdout  io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("geoplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: geoplan [flags] print | path <from> <to> | reach <id> | serve")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "YAML configuration file")
	points := fs.String("points", "", "points file (overrides config)")
	routes := fs.String("routes", "", "routes file (overrides config)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides config)")
	addr := fs.String("addr", "", "HTTP listen address for serve (overrides config)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	override(&cfg.Data.Points, *points)
	override(&cfg.Data.Routes, *routes)
	override(&cfg.Logging.Level, *logLevel)
	override(&cfg.Server.Addr, *addr)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, logger: logger, stdout: stdout}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	if cmd == "serve" {
		a.metrics = metrics.NewCollector(true)
		a.graph = core.NewGraph(core.WithLogger(logger), core.WithLoadHook(a.metrics.ObserveLoad))
	} else {
		a.graph = core.NewGraph(core.WithLogger(logger))
	}
	if err := a.graph.LoadFiles(cfg.Data.Points, cfg.Data.Routes); err != nil {
		logger.Error("cannot load network", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitError
	}

	switch cmd {
	case "print":
		err = a.print(rest)
	case "path":
		err = a.path(rest)
	case "reach":
		err = a.reach(ctx, rest)
	case "serve":
		err = a.serve(ctx, rest)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func wantArgs(args []string, n int, names string) error {
	if len(args) != n {
		return fmt.Errorf("%w: expected %s", errUsage, names)
	}
	return nil
}

func (a *app) print(args []string) error {
	if err := wantArgs(args, 0, "no arguments"); err != nil {
		return err
	}
	if err := report.Points(a.stdout, a.graph); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout)
	return report.Routes(a.stdout, a.graph)
}

func (a *app) path(args []string) error {
	if err := wantArgs(args, 2, "<from> <to>"); err != nil {
		return err
	}
	snap := a.graph.Snapshot()
	res, err := astar.Search(snap, geo.ParsePointID(args[0]), geo.ParsePointID(args[1]),
		astar.WithLogger(a.logger))
	if err != nil {
		return err
	}
	return report.Path(a.stdout, snap, res)
}

func (a *app) reach(ctx context.Context, args []string) error {
	if err := wantArgs(args, 1, "<id>"); err != nil {
		return err
	}
	res, err := bfs.BFS(a.graph.Snapshot(), geo.ParsePointID(args[0]), bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	for _, id := range res.Order {
		hop, ok := res.Parent[id]
		if !ok {
			fmt.Fprintf(a.stdout, "%s\t0\n", id)
			continue
		}
		fmt.Fprintf(a.stdout, "%s\t%d\t%s via %s\n", id, res.Depth[id], hop.From, hop.Route)
	}
	return nil
}

func (a *app) serve(ctx context.Context, args []string) error {
	if err := wantArgs(args, 0, "no arguments"); err != nil {
		return err
	}
	api := httpapi.NewServer(a.graph,
		httpapi.WithLogger(a.logger),
		httpapi.WithMetrics(a.metrics),
		httpapi.WithAllowedOrigins(a.cfg.Server.AllowedOrigins...),
	)
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      api.Handler(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
