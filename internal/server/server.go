package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"djwatch/internal/common"
	"djwatch/internal/config"
	"djwatch/internal/models"
	"djwatch/internal/monitor"
)

// StatusServer serves the read-only monitoring status endpoints. It only
// reads the cycle tracker summary; record sets and stores are never
// reachable from here.
type StatusServer struct {
	httpServer *http.Server
	tracker    *monitor.CycleTracker
	interval   int
	logger     zerolog.Logger
}

// campaignsResponse is the /campaigns payload
type campaignsResponse struct {
	Status               string                  `json:"status"`
	Campaigns            []models.CampaignStatus `json:"campaigns"`
	TotalCampaigns       int                     `json:"total_campaigns"`
	CheckIntervalMinutes int                     `json:"check_interval_minutes"`
}

// NewStatusServer creates the status server on the configured port
func NewStatusServer(
	cfg config.ServerConfig,
	monitorCfg config.MonitorConfig,
	tracker *monitor.CycleTracker,
	logger zerolog.Logger,
) *StatusServer {
	s := &StatusServer{
		tracker:  tracker,
		interval: monitorCfg.CheckIntervalMinutes,
		logger:   logger.With().Str("component", "StatusServer").Logger(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Get("/health", s.handleHealth)
	r.Get("/campaigns", s.handleCampaigns)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests
func (s *StatusServer) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Shutdown is called or the listener fails
func (s *StatusServer) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Status server listening")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return common.WrapError(err, "status server failed")
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *StatusServer) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Status server stopping")
	return s.httpServer.Shutdown(ctx)
}

func (s *StatusServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "OK")
}

func (s *StatusServer) handleCampaigns(w http.ResponseWriter, _ *http.Request) {
	statuses := s.tracker.Statuses()

	resp := campaignsResponse{
		Status:               "active",
		Campaigns:            statuses,
		TotalCampaigns:       len(statuses),
		CheckIntervalMinutes: s.interval,
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode campaigns response")
	}
}
