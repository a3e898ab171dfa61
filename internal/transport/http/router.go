package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/greeting_processor/internal/ports"
	"github.com/Gunvolt24/greeting_processor/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	defaultLogsLimit = 20
	maxLogsLimit     = 100
)

type Handler struct {
	service ports.LogReadService
	log     ports.Logger
	timeout time.Duration // 0 — без таймаута на обработку
}

func NewHandler(service ports.LogReadService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — gin-роутер: /ping, /metrics, /logs.
// otelServiceName пустой — otelgin не подключается; opts — провайдер и пропагатор из telemetry.
func NewRouter(h *Handler, otelServiceName string, opts ...otelgin.Option) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName, opts...))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/logs", h.listLogs)

	return r
}

// NewMetricsRouter — отдельный листенер только для /metrics.
func NewMetricsRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(c.Request.Context(), h.timeout)
	}
	return context.WithCancel(c.Request.Context())
}

func (h *Handler) listLogs(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	limit, offset := httpx.ParseLimitOffset(c, defaultLogsLimit, maxLogsLimit)

	entries, err := h.service.ListLogEntries(ctx, limit, offset)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			h.log.Warnf(ctx, "ListLogEntries timeout limit=%d offset=%d", limit, offset)
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "timeout"})
			return
		}
		h.log.Errorf(ctx, "ListLogEntries failed limit=%d offset=%d err=%v", limit, offset, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
