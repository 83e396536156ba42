package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"romannumeral/go-backend/internal/domains/romannumeral/model"
	"romannumeral/go-backend/pkg/models"
)

const (
	Path       = "/romannumeral"
	QueryParam = "query"

	componentName = "romannumeral"
)

// Converter is the core pipeline the handler delegates to.
type Converter interface {
	Convert(raw string) model.ConversionResult
}

// Recorder receives request counters; implemented by platform/metrics.
type Recorder interface {
	RecordRequest()
	RecordError(kind string)
}

type Handler struct {
	converter Converter
	recorder  Recorder
	logger    *slog.Logger
	now       func() time.Time
}

func NewHandler(converter Converter, recorder Recorder, logger *slog.Logger) *Handler {
	if converter == nil {
		panic("rest.NewHandler: converter is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		converter: converter,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteErrorDetails(w, http.StatusMethodNotAllowed, models.NewErrorDetails(
			h.now(), model.KindUnexpected.Code(), "method "+r.Method+" is not allowed", models.RequestDetails(r.URL.Path),
		))
		return
	}
	if h.recorder != nil {
		h.recorder.RecordRequest()
	}

	// An absent parameter reads as "" and is classified as missing input.
	raw := r.URL.Query().Get(QueryParam)
	h.logger.Info("conversion requested", "component", componentName, "operation", "convert", "query", raw)

	res := h.converter.Convert(raw)
	if !res.OK() {
		status := StatusFor(res.Failure.Kind)
		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "conversion rejected",
			"component", componentName,
			"operation", "convert",
			"query", raw,
			"kind", res.Failure.Kind.String(),
			"error_code", res.Failure.Kind.Code(),
		)
		if h.recorder != nil {
			h.recorder.RecordError(res.Failure.Kind.String())
		}
		WriteErrorDetails(w, status, models.NewErrorDetails(
			h.now(), res.Failure.Kind.Code(), res.Failure.Message, models.RequestDetails(r.URL.Path),
		))
		return
	}

	h.logger.Info("conversion completed", "component", componentName, "operation", "convert", "query", raw, "output", res.Output)
	writeJSON(w, http.StatusOK, models.RomanNumeral{Input: res.Input, Output: res.Output})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindMissingInput:
		return http.StatusBadRequest
	case model.KindMalformedInteger, model.KindOutOfRange:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func WriteErrorDetails(w http.ResponseWriter, status int, details models.ErrorDetails) {
	writeJSON(w, status, details)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
