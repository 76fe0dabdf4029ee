package worker

import (
	"bytes"
	"context"
	"time"

	"report-service/internal/report"
	"report-service/internal/util"

	"go.uber.org/zap"
)

// ReportCache is the cache surface the refresh worker writes to
type ReportCache interface {
	SetReport(ctx context.Context, name, body string) error
}

// RefreshWorker periodically re-renders every report into the cache so
// HTTP reads are served warm.
type RefreshWorker struct {
	runner   *report.Runner
	gen      *report.Generator
	cache    ReportCache
	interval time.Duration
	stop     chan struct{}
}

// NewRefreshWorker creates a new cache refresh worker
func NewRefreshWorker(runner *report.Runner, gen *report.Generator, cache ReportCache, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		runner:   runner,
		gen:      gen,
		cache:    cache,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the refresh loop until the context is cancelled or Stop is
// called. The first refresh happens immediately.
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := util.GetLogger()
	logger.Info("Starting report refresh worker", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Refresh worker context cancelled, stopping")
			return ctx.Err()
		case <-w.stop:
			logger.Info("Refresh worker stopped")
			return nil
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

// Stop signals the refresh loop to exit
func (w *RefreshWorker) Stop() {
	close(w.stop)
}

// refreshAll renders every report once; a failed report is logged and
// skipped so the rest still refresh.
func (w *RefreshWorker) refreshAll(ctx context.Context) {
	logger := util.GetLogger()

	for _, rep := range w.gen.Reports() {
		var buf bytes.Buffer
		if _, err := w.runner.Run(ctx, rep.Name, &buf); err != nil {
			logger.Warn("Failed to refresh report",
				zap.String("report", rep.Name), zap.Error(err))
			continue
		}
		if err := w.cache.SetReport(ctx, rep.Name, buf.String()); err != nil {
			logger.Warn("Failed to cache report",
				zap.String("report", rep.Name), zap.Error(err))
		}
	}
}
