package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/addressbook"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/domain/contact"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/infrastructure/config"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/infrastructure/telemetry"
	"github.com/Tania526-sudo/goit-algo-hw-06/internal/metrics"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to an optional YAML config file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := telemetry.SetupLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)

	tracing := telemetry.InitTracing(cfg.Tracing.ServiceName, cfg.Version, cfg.Environment, cfg.Tracing.Enabled)
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			slog.Error("failed to shutdown tracing", "error", err)
		}
	}()

	if err := run(ctx, cfg, tracing, os.Stdout); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, tracing *telemetry.Provider, out io.Writer) error {
	ctx, span := tracing.Tracer().Start(ctx, "demo.run")
	defer span.End()

	slog.InfoContext(ctx, "starting address book demo",
		"version", cfg.Version,
		"environment", cfg.Environment)

	opts := []addressbook.Option{addressbook.WithLogger(slog.Default())}
	if cfg.Metrics.Enabled {
		registry, err := metrics.NewRegistry(cfg.Metrics.MeterName)
		if err != nil {
			return fmt.Errorf("creating metrics registry: %w", err)
		}
		opts = append(opts, addressbook.WithMetrics(registry))
	}

	book := addressbook.New(opts...)

	john, err := newRecord("John", "1234567890", "5555555555")
	if err != nil {
		return err
	}
	book.AddRecord(john)

	jane, err := newRecord("Jane", "9876543210")
	if err != nil {
		return err
	}
	book.AddRecord(jane)

	fmt.Fprintln(out, book)

	found, ok := book.Find("John")
	if !ok {
		return fmt.Errorf("record John not found")
	}
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return fmt.Errorf("editing phone: %w", err)
	}

	fmt.Fprintln(out, found)

	phone := found.FindPhone("5555555555")
	if phone == nil {
		return fmt.Errorf("phone 5555555555 not found")
	}
	fmt.Fprintf(out, "%s: %s\n", found.Name(), phone)

	book.Delete("Jane")
	fmt.Fprintln(out, book)

	slog.InfoContext(ctx, "address book demo finished", "records", book.Len())
	return nil
}

func newRecord(name string, phones ...string) (*contact.Record, error) {
	record, err := contact.NewRecord(name)
	if err != nil {
		return nil, fmt.Errorf("creating record %q: %w", name, err)
	}
	for _, p := range phones {
		if _, err := record.AddPhone(p); err != nil {
			return nil, fmt.Errorf("adding phone %q to %q: %w", p, name, err)
		}
	}
	return record, nil
}
