package main

import (
	"context"
	"net/http"
	"time"

	"bookreviews/internal/httpx"
	"bookreviews/internal/library"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(cfg config, handler *library.HTTPHandler, store pinger) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "store not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /{$}", handler.Index)
	router.HandleFunc("GET /all_books", handler.AllBooks)
	router.HandleFunc("GET /book/{book_name}", handler.GetBook)
	router.HandleFunc("GET /search/{book_name}", handler.Search)
	router.HandleFunc("POST /add_review/{book_name}", handler.AddReview)
	router.HandleFunc("GET /filter_genre/{genre}", handler.FilterGenre)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
