// Package server 通过 HTTP 暴露推荐与情感判断接口。
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rushteam/fairrec/pkg/logging"
	"github.com/rushteam/fairrec/recommend"
)

// Server 持有只读的推荐 Engine，处理函数之间不共享可变状态。
type Server struct {
	engine *recommend.Engine
}

func New(engine *recommend.Engine) *Server {
	return &Server{engine: engine}
}

// Handler 返回完整路由。
//
//	GET  /healthz
//	GET  /metrics
//	GET  /api/v1/recommendations?interests=a,b&exclude=c&count=6
//	POST /api/v1/sentiment  {"text": "..."}
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/recommendations", s.recommendations)
		r.Post("/sentiment", s.sentiment)
	})
	return r
}

// ListenAndServe 监听 addr，ctx 结束时优雅关闭。
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logging.Info().Msg("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
