// Copyright 2025 NVIDIA CORPORATION
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NVIDIA/kai-queue-snapshot/pkg/capacity_snapshot"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/common/constants"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/api/common_info"
	"github.com/NVIDIA/kai-queue-snapshot/pkg/scheduler/log"
)

const (
	HealthzPath = "/healthz"
	MetricsPath = "/metrics"

	shutdownTimeout = 5 * time.Second
)

// JSON unless the client asks for XML.
var offeredFormats = []string{binding.MIMEJSON, binding.MIMEXML}

type Server struct {
	source          SnapshotSource
	builder         *capacity_snapshot.Builder
	gatherer        prometheus.Gatherer
	enableProfiling bool
	router          *gin.Engine
}

type Option func(s *Server)

// WithGatherer exposes the gatherer's metrics on MetricsPath.
func WithGatherer(gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

func WithProfiling(enabled bool) Option {
	return func(s *Server) {
		s.enableProfiling = enabled
	}
}

func New(source SnapshotSource, builder *capacity_snapshot.Builder, opts ...Option) *Server {
	s := &Server{source: source, builder: builder}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.newRouter()
	return s
}

func (s *Server) newRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	if err := router.SetTrustedProxies(nil); err != nil {
		log.InfraLogger.Warningf("Failed to reset trusted proxies: %v", err)
	}

	router.GET(constants.SchedulerAPIPath, s.getScheduler)
	router.GET(HealthzPath, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if s.gatherer != nil {
		router.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
	if s.enableProfiling {
		pprof.Register(router)
	}
	return router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on address until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.InfraLogger.V(2).Infof("Serving queue capacity snapshots on %s", address)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) getScheduler(c *gin.Context) {
	label := c.Query(constants.LabelQueryParam)
	snapshot, err := s.builder.BuildSchedulerSnapshot(s.source.Scheduler(), label)
	if err != nil {
		response := &capacity_snapshot.ErrorResponse{
			Exception: common_info.ErrorKind(err),
			Message:   err.Error(),
			Queue:     common_info.FailedQueueName(err),
		}
		c.Negotiate(errorStatus(err), gin.Negotiate{Offered: offeredFormats, Data: response})
		return
	}

	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered: offeredFormats,
		Data:    snapshot,
	})
}

func errorStatus(err error) int {
	switch common_info.ErrorKind(err) {
	case common_info.UnknownLabelKind:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.InfraLogger.V(5).Infof("%s %s %d %v", c.Request.Method, c.Request.URL.RequestURI(),
			c.Writer.Status(), time.Since(start))
	}
}
