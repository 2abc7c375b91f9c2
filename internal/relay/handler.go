package relay

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/quiz-relay/pkg/http/errors"
)

const (
	msgMissingInput = "Missing topic or difficulty in request body"
	msgUnparseable  = "Invalid AI response. Could not parse JSON."
	msgInvalidShape = "Invalid AI response: Expected a non-empty array."
	msgUpstream     = "Failed to generate quiz"
)

// GenerationIDHeader carries the generation id back to the caller for log correlation.
const GenerationIDHeader = "X-Generation-ID"

// Handler exposes the relay over HTTP.
type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GenerateQuiz handles POST /generate-quiz
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	id := uuid.NewString()
	w.Header().Set(GenerationIDHeader, id)

	questions, err := h.service.Generate(WithGenerationID(r.Context(), id), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(questions); err != nil {
		h.logger.Error().Err(err).Msg("write generate-quiz response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var upstreamErr *UpstreamError
	var parseErr *ParseError

	switch {
	case errors.Is(err, ErrMissingInput):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeMissingField, msgMissingInput)
	case errors.As(err, &parseErr):
		httperrors.RespondErrorWithRaw(w, http.StatusInternalServerError, httperrors.ErrCodeUnparseableOutput, msgUnparseable, parseErr.Raw)
	case errors.Is(err, ErrInvalidShape):
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeInvalidOutput, msgInvalidShape)
	case errors.As(err, &upstreamErr):
		httperrors.RespondErrorWithDetails(w, http.StatusInternalServerError, httperrors.ErrCodeUpstreamError, msgUpstream, upstreamErr.Err.Error())
	default:
		httperrors.RespondInternalError(w, err.Error())
	}
}
