// Package httpapi: server assembly and lifecycle.

package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/HiddeFranke/Social-Network-Analysis---Group-Robbert1/session"
)

// Server hosts one session over HTTP. Construct with New; run with
// Serve, or mount Handler on a listener of your own.
type Server struct {
	sess    *session.Session
	log     *slog.Logger
	opts    Options
	metrics *metrics
	engine  *gin.Engine
}

// New assembles the routed engine around sess. Gin's global mode is left
// to the caller; the serve command sets release mode.
func New(sess *session.Session, opts ...Option) *Server {
	o := gatherOptions(opts...)
	s := &Server{
		sess:    sess,
		log:     o.logger,
		opts:    o,
		metrics: newMetrics(o.registry),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger(o.logger))

	limited := rateLimit(o.rateRPS, o.rateBurst)
	api := engine.Group("/api/v1")
	{
		api.POST("/network", limited, s.handleUpload)
		api.GET("/network", s.handleCurrent)
		api.GET("/network/payload", s.handlePayload)
		api.POST("/network/restore", limited, s.handleRestore)
		api.DELETE("/network", limited, s.handleClear)
	}
	engine.GET("/healthz", handleHealthz)
	engine.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})))

	s.engine = engine

	return s
}

// Handler exposes the routed engine, ready to mount on any listener.
func (s *Server) Handler() http.Handler { return s.engine }

// Serve listens on the configured address until ctx ends, then drains
// in-flight requests within the shutdown grace. A clean drain returns
// nil; a listener failure returns its error.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", "addr", s.opts.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		drainCtx, cancel := context.WithTimeout(context.Background(), s.opts.grace)
		defer cancel()
		s.log.Info("shutting down", "grace", s.opts.grace.String())

		return srv.Shutdown(drainCtx)
	})

	return g.Wait()
}
