// Package server exposes workbook import over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dersesut/equipimport/internal/store"
	"github.com/dersesut/equipimport/pkg/ingest"
	"github.com/dersesut/equipimport/pkg/ingest/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Store is the persistence the server needs. A nil Store disables persistence
// and statistics.
type Store interface {
	SaveEquipment(ctx context.Context, data models.EquipmentData) (store.Counts, error)
	Stats(ctx context.Context) (*store.Stats, error)
}

// Options configures request handling.
type Options struct {
	// MaxUploadBytes caps the size of an uploaded workbook.
	MaxUploadBytes int64
	// Shape is passed to the ingest engine for every upload.
	Shape ingest.Shape
}

// Server routes API requests.
type Server struct {
	router *gin.Engine
	store  Store
	log    logrus.FieldLogger
	opts   Options
}

// New creates a server. st may be nil.
func New(opts Options, st Store, log logrus.FieldLogger) *Server {
	s := &Server{
		router: gin.New(),
		store:  st,
		log:    log,
		opts:   opts,
	}
	s.router.Use(gin.Recovery(), requestLogger(log))
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/import", s.handleImport)
	api.GET("/template", s.handleTemplate)
	api.POST("/export", s.handleExport)
	api.GET("/stats", s.handleStats)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request")
	}
}
