// Command gridpathd serves the path engine to the browser UI over HTTP and
// websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/katalvlaran/gridpath/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "gridpathd: ", log.LstdFlags)
	if err := run(ctx, os.Args[1:], os.Getenv, logger); err != nil {
		logger.Fatalf("%v", err)
	}
}

// loadConfig fills a server.Config from args, falling back to the
// environment for the listen address.
func loadConfig(args []string, getenv func(string) string) (server.Config, error) {
	cfg := server.DefaultConfig()
	if addr := getenv("GRIDPATH_ADDR"); addr != "" {
		cfg.Addr = addr
	} else if port := getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return cfg, fmt.Errorf("invalid PORT=%q: %w", port, err)
		}
		cfg.Addr = ":" + port
	}

	fs := flag.NewFlagSet("gridpathd", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "largest accepted width*height")
	fs.IntVar(&cfg.MaxIterations, "max-iterations", cfg.MaxIterations, "largest accepted max_iterations")
	fs.StringVar(&cfg.DefaultStrategy, "strategy", cfg.DefaultStrategy, "strategy when a request names none (bfs, astar, genetic)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, getenv func(string) string, logger *log.Logger) error {
	cfg, err := loadConfig(args, getenv)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s (strategy=%s max-cells=%d max-iterations=%d)",
			cfg.Addr, cfg.DefaultStrategy, cfg.MaxCells, cfg.MaxIterations)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
