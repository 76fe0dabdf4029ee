package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"report-service/internal/report"
	"report-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ReportCache is the optional cache surface in front of report runs
type ReportCache interface {
	GetReport(ctx context.Context, name string) (string, bool, error)
	SetReport(ctx context.Context, name, body string) error
}

// EventPublisher is the optional downstream notification surface
type EventPublisher interface {
	PublishReportGenerated(ctx context.Context, report string, duration time.Duration) error
}

// Handler contains HTTP handlers
type Handler struct {
	gen       *report.Generator
	runner    *report.Runner
	cache     ReportCache
	publisher EventPublisher
}

// NewHandler creates a new HTTP handler. Cache and publisher may be nil.
func NewHandler(gen *report.Generator, runner *report.Runner, cache ReportCache, publisher EventPublisher) *Handler {
	return &Handler{
		gen:       gen,
		runner:    runner,
		cache:     cache,
		publisher: publisher,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/reports", h.listReports)
		v1.GET("/reports/:name", h.getReport)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listReports returns the report catalog
func (h *Handler) listReports(c *gin.Context) {
	reports := h.gen.Reports()

	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		out = append(out, gin.H{"name": r.Name, "title": r.Title})
	}

	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// getReport runs one report and returns its text rendering
func (h *Handler) getReport(c *gin.Context) {
	name := c.Param("name")
	ctx := c.Request.Context()

	if h.cache != nil {
		body, ok, err := h.cache.GetReport(ctx, name)
		if err != nil {
			util.GetLogger().Warn("Report cache read failed",
				zap.String("report", name), zap.Error(err))
		}
		if ok {
			util.ReportCacheHitsTotal.WithLabelValues(name).Inc()
			c.String(http.StatusOK, body)
			return
		}
		util.ReportCacheMissesTotal.WithLabelValues(name).Inc()
	}

	var buf bytes.Buffer
	duration, err := h.runner.Run(ctx, name, &buf)
	if err != nil {
		if errors.Is(err, report.ErrUnknownReport) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown report",
				"name":  name,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate report",
			"details": err.Error(),
		})
		return
	}

	if h.cache != nil {
		if err := h.cache.SetReport(ctx, name, buf.String()); err != nil {
			util.GetLogger().Warn("Report cache write failed",
				zap.String("report", name), zap.Error(err))
		}
	}

	if h.publisher != nil {
		if err := h.publisher.PublishReportGenerated(ctx, name, duration); err != nil {
			util.GetLogger().Warn("Failed to publish report event",
				zap.String("report", name), zap.Error(err))
		}
	}

	c.String(http.StatusOK, buf.String())
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
