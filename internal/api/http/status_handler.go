package http

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/service"
	"rentcar-bot/internal/session"
)

// StatusHandler serves the operational sidecar endpoints next to the bot's
// long-polling loop.
type StatusHandler struct {
	db       *sql.DB
	bookings service.BookingService
	sessions *session.Store
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db *sql.DB, bookings service.BookingService, sessions *session.Store) *StatusHandler {
	return &StatusHandler{
		db:       db,
		bookings: bookings,
		sessions: sessions,
	}
}

// Register attaches the status routes to the router
func (h *StatusHandler) Register(r *mux.Router) {
	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/stats", h.HandleStats).Methods(http.MethodGet)
}

// HandleHealth reports liveness and database reachability
func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		logger.Error("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleStats reports booking totals and active conversation count
func (h *StatusHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.bookings.Stats(r.Context())
	if err != nil {
		logger.Error("Failed to load booking stats", "error", err)
		http.Error(w, "failed to load stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bookings":        stats,
		"active_sessions": h.sessions.Len(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
