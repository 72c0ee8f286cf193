package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/soedr/google-flights-api/contracts/search_service"
	"github.com/soedr/google-flights-api/pkg/api"
	"github.com/soedr/google-flights-api/pkg/httpclient"
	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/qpx"
	"github.com/soedr/google-flights-api/pkg/validator"
	"github.com/soedr/google-flights-api/services/search-service/usecase"
)

// SearchHandler handles HTTP requests for flight searches
type SearchHandler struct {
	SearchUseCase usecase.SearchUseCase
	Validator     validator.Validator
	Logger        logger.LoggerInterface
	API           api.Api
	MaxBodyBytes  int64
}

// NewSearchHandler creates a new instance of SearchHandler
func NewSearchHandler(searchUseCase usecase.SearchUseCase, maxBodyBytes int64, appLogger logger.LoggerInterface) *SearchHandler {
	return &SearchHandler{
		SearchUseCase: searchUseCase,
		Validator:     validator.NewValidator(),
		Logger:        appLogger,
		API:           api.New(api.WithLogger(appLogger)),
		MaxBodyBytes:  maxBodyBytes,
	}
}

// SearchHandler runs a simplified search
// Returns 400 for malformed JSON or dates, 422 for invalid fields and 502 when the provider refuses
func (h *SearchHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Search handler called")

	var req search_service.SearchRequest
	if err := json.NewDecoder(h.limit(w, r)).Decode(&req); err != nil {
		h.Logger.WarnContext(ctx, "Invalid request body for search", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	if validationErrors := h.Validator.ValidateStruct(&req); validationErrors != nil {
		h.Logger.WarnContext(ctx, "Validation failed for search", "errors", validationErrors)
		h.API.ValidationError(ctx, w, api.Details(validationErrors))
		return
	}

	resp, err := h.SearchUseCase.Search(ctx, &req)
	if err != nil {
		h.handleSearchError(ctx, w, err)
		return
	}

	h.API.Success(ctx, w, resp)
}

// RawSearchHandler forwards a complete provider request body
func (h *SearchHandler) RawSearchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Raw search handler called")

	body, err := io.ReadAll(h.limit(w, r))
	if err != nil {
		h.Logger.WarnContext(ctx, "Failed to read raw search body", "error", err)
		h.API.BadRequest(ctx, w, "Invalid request body")
		return
	}

	resp, err := h.SearchUseCase.RawSearch(ctx, json.RawMessage(body))
	if err != nil {
		h.handleSearchError(ctx, w, err)
		return
	}

	h.API.Success(ctx, w, resp)
}

func (h *SearchHandler) limit(w http.ResponseWriter, r *http.Request) io.Reader {
	if h.MaxBodyBytes <= 0 {
		return r.Body
	}
	return http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
}

func (h *SearchHandler) handleSearchError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		validationErr *qpx.ValidationError
		formatErr     *qpx.FormatError
		statusErr     *httpclient.StatusError
	)

	switch {
	case errors.As(err, &validationErr):
		h.API.ValidationError(ctx, w, api.Details(validationErr.Fields))
	case errors.As(err, &formatErr):
		h.API.BadRequest(ctx, w, formatErr.Error())
	case errors.Is(err, usecase.ErrInvalidRawBody):
		h.API.BadRequest(ctx, w, err.Error())
	case errors.As(err, &statusErr):
		h.Logger.ErrorContext(ctx, "Provider rejected search", "status", statusErr.StatusCode)
		h.API.BadGateway(ctx, w, statusErr.Error())
	default:
		h.Logger.ErrorContext(ctx, "Unexpected error during search", "error", err)
		h.API.InternalServerError(ctx, w, "Failed to search flights")
	}
}
