package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"report-service/internal/util"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrUnknownReport is returned when a report name is not in the catalog
var ErrUnknownReport = fmt.Errorf("unknown report")

// Runner executes reports with logging, tracing and metrics around each run
type Runner struct {
	gen *Generator
}

// NewRunner creates a runner over the given generator
func NewRunner(gen *Generator) *Runner {
	return &Runner{gen: gen}
}

// Run executes one report by name, writing its text to w.
// Returns the run duration for downstream bookkeeping.
func (r *Runner) Run(ctx context.Context, name string, w io.Writer) (time.Duration, error) {
	rep, ok := r.gen.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownReport, name)
	}

	runID := uuid.NewString()
	logger := util.GetLogger().With(
		zap.String("report", rep.Name),
		zap.String("run_id", runID),
	)

	ctx, span := util.StartSpan(ctx, "report.run")
	span.SetAttributes(
		attribute.String("report.name", rep.Name),
		attribute.String("report.run_id", runID),
	)
	defer span.End()

	start := time.Now()
	err := rep.Run(ctx, w)
	duration := time.Since(start)

	util.ReportDuration.WithLabelValues(rep.Name).Observe(duration.Seconds())

	if err != nil {
		span.RecordError(err)
		util.ReportFailuresTotal.WithLabelValues(rep.Name).Inc()
		logger.Error("report run failed", zap.Error(err), zap.Duration("duration", duration))
		return duration, err
	}

	util.ReportsGeneratedTotal.WithLabelValues(rep.Name).Inc()
	logger.Info("report generated", zap.Duration("duration", duration))
	return duration, nil
}

// RunAll executes every cataloged report in sequence into w.
// A failed report aborts the sequence and surfaces its error.
func (r *Runner) RunAll(ctx context.Context, w io.Writer) error {
	for _, rep := range r.gen.Reports() {
		if _, err := r.Run(ctx, rep.Name, w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
