// Package usecase contains the flight search business operations
package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/soedr/google-flights-api/contracts/search_service"
	"github.com/soedr/google-flights-api/pkg/logger"
	"github.com/soedr/google-flights-api/pkg/qpx"
)

// ErrInvalidRawBody is returned when a raw search body is not a JSON object.
var ErrInvalidRawBody = errors.New("raw search body must be a JSON object")

// FlightSearcher is the provider client the use case drives. *qpx.Client implements it.
type FlightSearcher interface {
	Query(ctx context.Context, q qpx.Query) (json.RawMessage, error)
	RawQuery(ctx context.Context, body any) (json.RawMessage, error)
}

// SearchUseCase defines flight search operations
type SearchUseCase interface {
	Search(ctx context.Context, req *search_service.SearchRequest) (*search_service.SearchResponse, error)
	RawSearch(ctx context.Context, body json.RawMessage) (*search_service.SearchResponse, error)
}

type searchUseCase struct {
	searcher FlightSearcher
	logger   logger.LoggerInterface
}

// NewSearchUseCase creates a new instance of searchUseCase
func NewSearchUseCase(searcher FlightSearcher, appLogger logger.LoggerInterface) SearchUseCase {
	return &searchUseCase{
		searcher: searcher,
		logger:   appLogger,
	}
}

// Search runs a simplified single-slice search
func (uc *searchUseCase) Search(ctx context.Context, req *search_service.SearchRequest) (*search_service.SearchResponse, error) {
	uc.logger.InfoContext(ctx, "Searching flights in usecase", "origin", req.Origin, "destination", req.Destination)

	raw, err := uc.searcher.Query(ctx, search_service.SearchRequestToQuery(req))
	if err != nil {
		uc.logger.ErrorContext(ctx, "Flight search failed", "origin", req.Origin, "destination", req.Destination, "error", err)
		return nil, err
	}

	return &search_service.SearchResponse{Raw: raw}, nil
}

// RawSearch forwards a complete provider request body untouched
func (uc *searchUseCase) RawSearch(ctx context.Context, body json.RawMessage) (*search_service.SearchResponse, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil || probe == nil {
		uc.logger.WarnContext(ctx, "Rejected raw search body", "error", err)
		return nil, ErrInvalidRawBody
	}

	uc.logger.InfoContext(ctx, "Sending raw flight search in usecase", "bytes", len(body))

	raw, err := uc.searcher.RawQuery(ctx, body)
	if err != nil {
		uc.logger.ErrorContext(ctx, "Raw flight search failed", "error", err)
		return nil, err
	}

	return &search_service.SearchResponse{Raw: raw}, nil
}
