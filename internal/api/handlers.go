package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/surveydash/survey-server/internal/repository/models"
	"github.com/surveydash/survey-server/internal/service"
	"github.com/surveydash/survey-server/pkg/csvnorm"
)

const defaultRequestTimeout = 10 * time.Second

type loadKeyType string

const (
	loadKeyRecords       loadKeyType = "survey:records"
	loadKeySummary       loadKeyType = "survey:summary"
	loadKeyDistributions loadKeyType = "survey:distributions"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers serves the survey JSON API.
type Handlers struct {
	surveys SurveyService
	logger  *zap.Logger
	sfGroup singleflight.Group
	timeout time.Duration
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(surveys SurveyService, logger *zap.Logger, timeout time.Duration) *Handlers {
	if surveys == nil {
		panic("nil SurveyService provided to NewHandlers")
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handlers{
		surveys: surveys,
		logger:  logger.Named("api-handler"),
		timeout: timeout,
	}
}

// RegisterRoutes mounts the survey endpoints on the router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/survey", h.GetSurveyRecords)
	r.Get("/api/survey/summary", h.GetSurveySummary)
	r.Get("/api/survey/distributions", h.GetSurveyDistributions)
}

func loadKey(prefix loadKeyType, surveyType models.SurveyType) string {
	return fmt.Sprintf("%s:%s", prefix, surveyType)
}

// loadShared collapses concurrent identical loads into one parse. Results
// are not retained once the in-flight call completes; every later request
// still re-reads the source file.
func loadShared[T any](ctx context.Context, sf *singleflight.Group, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err, _ := sf.Do(key, func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}
	return value, nil
}

func (h *Handlers) parseSurveyType(w http.ResponseWriter, r *http.Request) (models.SurveyType, bool) {
	surveyType, err := models.ParseSurveyType(r.URL.Query().Get("type"))
	if err != nil {
		h.logger.Info("invalid survey type requested",
			zap.String("type", r.URL.Query().Get("type")))
		h.respondError(w, http.StatusBadRequest, "Invalid survey type")
		return "", false
	}
	return surveyType, true
}

func (h *Handlers) handleError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		h.logger.Warn("request canceled", zap.String("op", op))
		h.respondError(w, http.StatusInternalServerError, "Failed to process survey data")
	case errors.Is(err, service.ErrNoData):
		h.logger.Info("no survey data", zap.String("op", op))
		h.respondError(w, http.StatusNotFound, "No survey data")
	case errors.Is(err, service.ErrSourceFailure):
		h.logger.Error("survey source failure", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to process survey data")
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to process survey data")
	}
}

// GetSurveyRecords returns the normalized respondent records for a survey.
func (h *Handlers) GetSurveyRecords(w http.ResponseWriter, r *http.Request) {
	surveyType, ok := h.parseSurveyType(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	records, err := loadShared(ctx, &h.sfGroup, loadKey(loadKeyRecords, surveyType), func(fetchCtx context.Context) ([]csvnorm.Record, error) {
		return h.surveys.Records(fetchCtx, surveyType)
	})
	if err != nil {
		h.handleError(w, "GetSurveyRecords", err)
		return
	}

	h.respondJSON(w, http.StatusOK, records)
}

// GetSurveySummary returns the executive summary for a survey.
func (h *Handlers) GetSurveySummary(w http.ResponseWriter, r *http.Request) {
	surveyType, ok := h.parseSurveyType(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	summary, err := loadShared(ctx, &h.sfGroup, loadKey(loadKeySummary, surveyType), func(fetchCtx context.Context) (service.SurveySummary, error) {
		return h.surveys.Summary(fetchCtx, surveyType)
	})
	if err != nil {
		h.handleError(w, "GetSurveySummary", err)
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// GetSurveyDistributions returns per-question response distributions in
// ranked order.
func (h *Handlers) GetSurveyDistributions(w http.ResponseWriter, r *http.Request) {
	surveyType, ok := h.parseSurveyType(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	distributions, err := loadShared(ctx, &h.sfGroup, loadKey(loadKeyDistributions, surveyType), func(fetchCtx context.Context) ([]service.QuestionDistribution, error) {
		return h.surveys.Distributions(fetchCtx, surveyType)
	})
	if err != nil {
		h.handleError(w, "GetSurveyDistributions", err)
		return
	}

	h.respondJSON(w, http.StatusOK, distributions)
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Error: message})
}
