// Package server exposes the detection pipeline over HTTP: a health
// probe, a demo page, single correction and batch correction.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/pipeline"
	"github.com/ithute/ithute/internal/worker"
)

// Server wraps the pipeline behind a gin router
type Server struct {
	pipe   *pipeline.Pipeline
	batch  *worker.BatchProcessor
	logger *zap.Logger
	srv    *http.Server
}

// New creates a server over an initialized pipeline
func New(cfg *model.Config, pipe *pipeline.Pipeline, logger *zap.Logger) *Server {
	s := &Server{
		pipe:   pipe,
		batch:  worker.NewBatchProcessor(pipe, cfg.Concurrency.BatchWorkers),
		logger: logger,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(s.requestLogger(), gin.Recovery())

	router.GET("/health", s.handleHealth)
	router.GET("/", s.handleIndex)
	router.POST("/correct", s.handleCorrect)
	router.POST("/batch-correct", s.handleBatchCorrect)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start runs the server until the listener fails or Stop is called
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the server down, draining in-flight requests
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_addr", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= 500:
			s.logger.Error("request completed with server error", fields...)
		case c.Writer.Status() >= 400:
			s.logger.Warn("request completed with client error", fields...)
		default:
			s.logger.Info("request completed", fields...)
		}
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "bias-correction-api"})
}

type correctRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

func (s *Server) handleCorrect(c *gin.Context) {
	var req correctRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'text' field in request body"})
		return
	}

	result, err := s.pipe.Analyze(c.Request.Context(), req.Text, req.Language)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type batchResult struct {
	ID         string               `json:"id,omitempty"`
	Original   string               `json:"original"`
	Correction *model.RewriteResult `json:"correction,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// handleBatchCorrect accepts either a JSON body with a list of items or
// a multipart upload with a JSON file under "file".
func (s *Server) handleBatchCorrect(c *gin.Context) {
	items, err := s.readBatchItems(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := s.batch.Process(c.Request.Context(), items)
	out := make([]batchResult, 0, len(results))
	for _, r := range results {
		br := batchResult{ID: r.Item.ID, Original: r.Item.Text}
		if r.Err != nil {
			br.Error = r.Err.Error()
		} else {
			br.Correction = r.Result
		}
		out = append(out, br)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) readBatchItems(c *gin.Context) ([]worker.Item, error) {
	if file, err := c.FormFile("file"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload: %w", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		var items []worker.Item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("JSON must be a list of items")
		}
		return items, nil
	}

	var items []worker.Item
	if err := c.ShouldBindJSON(&items); err != nil {
		return nil, fmt.Errorf("JSON must be a list of items")
	}
	return items, nil
}
