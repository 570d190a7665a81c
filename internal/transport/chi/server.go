// Package chi implements the HTTP API on the chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ishaan-jha021/ecomatch/internal/domain"
	"github.com/ishaan-jha021/ecomatch/internal/logger"
	healthuc "github.com/ishaan-jha021/ecomatch/internal/usecase/health"
	leaduc "github.com/ishaan-jha021/ecomatch/internal/usecase/lead"
	searchuc "github.com/ishaan-jha021/ecomatch/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeUnauthorized     = "unauthorized"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeInternalError    = "internal_error"
)

// Directory answers venue detail and city listing requests.
type Directory interface {
	Get(ctx context.Context, id string) (domain.Venue, error)
	Cities(ctx context.Context) ([]string, error)
}

// Reloader re-reads the catalog source. Implemented by the file catalog.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Server holds the HTTP handlers.
type Server struct {
	search    *searchuc.Service
	directory Directory
	leads     *leaduc.Service
	health    *healthuc.Service
	reloader  Reloader // nil when the catalog backend has no reload
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	directory Directory,
	leads *leaduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:    search,
		directory: directory,
		leads:     leads,
		health:    health,
		logger:    logger,
	}
}

// WithReloader enables POST /catalog/reload.
func (s *Server) WithReloader(r Reloader) *Server {
	s.reloader = r
	return s
}

// Routes mounts the API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.handleSearch)
	r.Get("/venues/{id}", s.handleVenue)
	r.Get("/cities", s.handleCities)
	r.Post("/leads", s.handleCreateLead)
	r.Get("/leads", s.handleListLeads)
	r.Get("/healthz", s.handleHealth)
	if s.reloader != nil {
		r.Post("/catalog/reload", s.handleReload)
	}
}

// searchResponse is the caller-facing search result, echoing the canonical
// filters the query was understood as.
type searchResponse struct {
	Query   string               `json:"query"`
	Filters domain.SearchFilters `json:"filters"`
	Count   int                  `json:"count"`
	Results []domain.Venue       `json:"results"`
}

// handleSearch handles GET /search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	explicit := domain.SearchFilters{
		Kind:             domain.Kind(q.Get("kind")),
		City:             q.Get("city"),
		GovernmentScheme: q.Get("scheme"),
		TextSearch:       q.Get("text"),
		ZeroEquity:       q.Get("zero_equity") == "true",
		WiFi:             q.Get("wifi") == "true",
		MeetingRooms:     q.Get("meeting") == "true",
	}

	var err error
	if explicit.MinCapacity, err = intParam(q.Get("min_capacity")); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, `field "min_capacity" must be an integer`)
		return
	}
	if explicit.MaxPrice, err = intParam(q.Get("max_price")); err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, `field "max_price" must be an integer`)
		return
	}

	result, err := s.search.Search(r.Context(), searchuc.Request{
		Query:    q.Get("q"),
		Explicit: explicit,
		Sort:     domain.SortKey(q.Get("sort")),
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   q.Get("q"),
		Filters: result.Filters,
		Count:   len(result.Venues),
		Results: result.Venues,
	})
}

// handleVenue handles GET /venues/{id}.
func (s *Server) handleVenue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	venue, err := s.directory.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

// handleCities handles GET /cities.
func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.directory.Cities(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}

	writeJSON(w, http.StatusOK, map[string][]string{"cities": cities})
}

// leadRequest is the POST /leads body.
type leadRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	VenueName string `json:"venueName"`
	VenueType string `json:"venueType"`
	City      string `json:"city"`
	Message   string `json:"message"`
}

// handleCreateLead handles POST /leads.
func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	lead, err := s.leads.Create(r.Context(), leaduc.Submission{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		VenueName: req.VenueName,
		VenueType: req.VenueType,
		City:      req.City,
		Message:   req.Message,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": lead.ID})
}

// handleListLeads handles GET /leads.
func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	all, err := s.leads.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if all == nil {
		all = []domain.Lead{}
	}

	writeJSON(w, http.StatusOK, all)
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, report)
}

// handleReload handles POST /catalog/reload.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.reloader.Reload(r.Context()); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	s.logger.Info("catalog reloaded")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

// handleDomainError maps domain errors to HTTP status codes. Internal errors
// are logged with the request-scoped logger so the entry carries request_id.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "venue not found")
	default:
		logger.FromContext(r.Context()).Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}
