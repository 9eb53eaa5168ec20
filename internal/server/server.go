// Package server exposes pipeline figures and reports over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rominafarhad/pulse-ai-analyzer/dsp/core"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/pipeline"
	"github.com/rominafarhad/pulse-ai-analyzer/internal/plot"
)

// Server serves figures computed from a base configuration. Query
// parameters override fields of the base per request.
type Server struct {
	base   core.Config
	log    logrus.FieldLogger
	engine *gin.Engine
}

// New builds the router.
func New(base core.Config, log logrus.FieldLogger) *Server {
	s := &Server{base: base, log: log, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestLogger(log))

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/api/figures", s.listFigures)
	s.engine.GET("/api/figures/:name", s.figure)
	s.engine.GET("/api/report", s.report)
	s.engine.GET("/plot/:file", s.png)
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listFigures(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"figures": pipeline.FigureNames()})
}

func (s *Server) figure(c *gin.Context) {
	f, ok := s.buildFigure(c, c.Param("name"))
	if !ok {
		return
	}

	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := (plot.CSVRenderer{}).Render(&buf, f); err != nil {
			s.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) png(c *gin.Context) {
	name, ok := strings.CutSuffix(c.Param("file"), ".png")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "plots are served as <name>.png"})
		return
	}
	f, ok := s.buildFigure(c, name)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := (plot.PNGRenderer{}).Render(&buf, f); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) report(c *gin.Context) {
	res, ok := s.run(c)
	if !ok {
		return
	}
	rep, err := res.Report()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (s *Server) buildFigure(c *gin.Context, name string) (*plot.Figure, bool) {
	res, ok := s.run(c)
	if !ok {
		return nil, false
	}
	f, err := pipeline.Figure(name, res)
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return f, true
}

func (s *Server) run(c *gin.Context) (*pipeline.Result, bool) {
	cfg, err := overrides(s.base, c)
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	res, err := pipeline.Run(cfg, pipeline.WithLogger(s.log))
	if err != nil {
		s.fail(c, err)
		return nil, false
	}
	return res, true
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidParameter), errors.Is(err, core.ErrShapeMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, pipeline.ErrUnknownFigure):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// overrides applies the seed, noise, jitter, cutoff, order and
// contamination query parameters to base.
func overrides(base core.Config, c *gin.Context) (core.Config, error) {
	cfg := base
	floats := []struct {
		key string
		dst *float64
	}{
		{"noise", &cfg.NoiseLevel},
		{"jitter", &cfg.JitterAmount},
		{"cutoff", &cfg.Cutoff},
		{"contamination", &cfg.Contamination},
	}
	for _, f := range floats {
		v, ok := c.GetQuery(f.key)
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return core.Config{}, core.InvalidParameter("query %s: %q is not a number", f.key, v)
		}
		*f.dst = x
	}

	if v, ok := c.GetQuery("order"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return core.Config{}, core.InvalidParameter("query order: %q is not an integer", v)
		}
		cfg.Order = n
	}
	if v, ok := c.GetQuery("seed"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return core.Config{}, core.InvalidParameter("query seed: %q is not an integer", v)
		}
		cfg.Seed = n
	}
	return cfg, cfg.Validate()
}

func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}
