package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/inheeen/sales-bonus/internal/adapter/driven/dataset"
	"github.com/inheeen/sales-bonus/internal/application/analyzer"
	"github.com/inheeen/sales-bonus/internal/domain/entity"
	"github.com/inheeen/sales-bonus/internal/shared/types"
)

// ReportBuilder is the part of the report use case the handler needs.
type ReportBuilder interface {
	BuildReport(ds *entity.Dataset, revenueName, bonusName string, diag analyzer.Diagnostics) (entity.SalesReport, error)
}

// Handler serves the report endpoints.
type Handler struct {
	builder   ReportBuilder
	logger    zerolog.Logger
	validate  *validator.Validate
	revenue   string
	bonus     string
	maxBody   int64
	startedAt time.Time
}

// NewHandler constructs the HTTP handler. cfg supplies the default strategy
// names and the request body limit.
func NewHandler(builder ReportBuilder, logger zerolog.Logger, cfg types.ServerConfig) *Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 10 << 20
	}
	return &Handler{
		builder:   builder,
		logger:    logger,
		validate:  validator.New(),
		revenue:   cfg.RevenueStrategy,
		bonus:     cfg.BonusStrategy,
		maxBody:   maxBody,
		startedAt: time.Now(),
	}
}

type reportResponse struct {
	entity.SalesReport
	Diagnostics []analyzer.Event `json:"diagnostics"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// handleCreateReport analyzes the dataset in the request body. The query
// parameters "revenue" and "bonus" override the configured strategies.
func (h *Handler) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())
	logger := h.logger.With().Str("request_id", requestID).Logger()

	var ds entity.Dataset
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err := dec.Decode(&ds); err != nil {
		logger.Info().Err(err).Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error(), requestID)
		return
	}

	if err := dataset.Validate(h.validate, &ds); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	revenue := firstNonEmpty(r.URL.Query().Get("revenue"), h.revenue)
	bonus := firstNonEmpty(r.URL.Query().Get("bonus"), h.bonus)

	collector := analyzer.NewCollector()
	diag := analyzer.Multi{collector, logDiagnostics{logger: logger}}

	report, err := h.builder.BuildReport(&ds, revenue, bonus, diag)
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Msg("report failed")
		}
		writeError(w, status, err.Error(), requestID)
		return
	}

	warnings := collector.Warnings()
	if warnings == nil {
		warnings = []analyzer.Event{}
	}

	logger.Info().
		Str("run_id", report.RunID).
		Int("sellers", len(report.Entries)).
		Int("warnings", len(warnings)).
		Msg("report generated")

	writeJSON(w, http.StatusOK, reportResponse{SalesReport: report, Diagnostics: warnings})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrMissingData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrInvalidConfiguration), errors.Is(err, types.ErrInvalidDataset):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, requestID string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: requestID})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
