package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"people/internal/person"
	"people/internal/person/metrics"
	"people/internal/person/service"
	"people/internal/platform/config"
	"people/internal/platform/logger"
	"people/internal/platform/tracing"
)

// main wires the person store, service and observability, then runs the
// fixed walkthrough once. The report goes to stdout; logs go to stderr.
func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "people demo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg, stderr).With("run_id", uuid.NewString())

	tp, shutdown := tracing.Setup(cfg.TraceLog, log)
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.WarnContext(ctx, "tracer shutdown failed", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	svc := person.NewService(
		person.NewInMemoryStore(),
		service.WithLogger(log),
		service.WithMetrics(metrics.New(reg)),
		service.WithTracer(tp.Tracer("people/service")),
	)

	log.InfoContext(ctx, "starting people demo")
	if err := person.RunDemo(ctx, svc, stdout); err != nil {
		log.ErrorContext(ctx, "people demo failed", "error", err)
		return err
	}
	log.InfoContext(ctx, "people demo finished")

	if cfg.MetricsDump {
		return dumpMetrics(reg, stderr)
	}
	return nil
}

func dumpMetrics(reg *prometheus.Registry, w io.Writer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
