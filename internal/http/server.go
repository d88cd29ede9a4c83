// Package http exposes the JSON API and the embedded browser front end.
package http

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"verbrauch/internal/services"
	appweb "verbrauch/web"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Server routes API requests to the per-utility services.
type Server struct {
	http.Server
	electricity *services.Electricity
	oil         *services.Oil
	water       *services.Water
}

// NewServer configures all routes and returns a ready-to-run server.
func NewServer(addr string, el *services.Electricity, oil *services.Oil, water *services.Water) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:           addr,
			Handler:        withRequestLog(mux),
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		electricity: el,
		oil:         oil,
		water:       water,
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/electricity/entries", s.handleCreateElectricity)
	mux.HandleFunc("GET /api/electricity/entries", s.handleListElectricity)
	mux.HandleFunc("GET /api/electricity/entries/{id}", s.handleGetElectricity)
	mux.HandleFunc("DELETE /api/electricity/entries/{id}", s.handleDeleteElectricity)
	mux.HandleFunc("GET /api/electricity/stats/overall", s.handleElectricityOverall)
	mux.HandleFunc("GET /api/electricity/stats/yearly_summary", s.handleElectricityYearlySummary)
	mux.HandleFunc("GET /api/electricity/stats/price_trend", s.handleElectricityPriceTrend)

	mux.HandleFunc("POST /api/oil/entries", s.handleCreateOil)
	mux.HandleFunc("GET /api/oil/entries", s.handleListOil)
	mux.HandleFunc("GET /api/oil/entries/{id}", s.handleGetOil)
	mux.HandleFunc("DELETE /api/oil/entries/{id}", s.handleDeleteOil)
	mux.HandleFunc("GET /api/oil/stats/overall", s.handleOilOverall)
	mux.HandleFunc("GET /api/oil/stats/yearly_summary", s.handleOilYearlySummary)
	mux.HandleFunc("GET /api/oil/stats/price_trend", s.handleOilPriceTrend)
	mux.HandleFunc("POST /api/oil/fill_levels", s.handleCreateOilFillLevel)
	mux.HandleFunc("GET /api/oil/fill_levels", s.handleListOilFillLevels)
	mux.HandleFunc("DELETE /api/oil/fill_levels/{id}", s.handleDeleteOilFillLevel)

	mux.HandleFunc("POST /api/water/entries", s.handleCreateWater)
	mux.HandleFunc("GET /api/water/entries", s.handleListWater)
	mux.HandleFunc("GET /api/water/entries/{id}", s.handleGetWater)
	mux.HandleFunc("DELETE /api/water/entries/{id}", s.handleDeleteWater)
	mux.HandleFunc("GET /api/water/stats/overall", s.handleWaterOverall)
	mux.HandleFunc("GET /api/water/stats/yearly_summary", s.handleWaterYearlySummary)
	mux.HandleFunc("GET /api/water/stats/price_trend", s.handleWaterPriceTrend)

	// Static front end (served from the embedded FS).
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.FileServer(http.FS(sub))
		mux.Handle("GET /static/", http.StripPrefix("/static/", static))
		mux.Handle("GET /{$}", static)
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	return s
}

// withRequestLog adds a request id, security headers, and start/complete
// logging to every request.
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
