package search

import (
	"context"
	"strings"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

// Service runs semantic search over a customer's ingested files.
type Service interface {
	Search(ctx context.Context, customerID string, query string, fileIDs []commonModels.FileID) ([]commonModels.SearchResult, error)
}

type service struct {
	backend ingestion.Backend
	logger  *logger_i.Logger
}

func NewService(backend ingestion.Backend) Service {
	return &service{
		backend: backend,
		logger:  logger_i.NewLogger("SearchOrchestrator"),
	}
}

func (s *service) Search(ctx context.Context, customerID string, query string, fileIDs []commonModels.FileID) ([]commonModels.SearchResult, error) {
	if err := commonModels.RequireCustomerID(customerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return nil, commonModels.Validation("Query is required")
	}
	//an explicit empty list is allowed, an absent one is not
	if fileIDs == nil {
		return nil, commonModels.Validation(commonModels.MsgFileIDsRequired)
	}

	results, err := s.backend.SearchEmbeddings(ctx, customerID, BuildQuery(query, fileIDs))
	if err != nil {
		return nil, err
	}
	s.logger.ForContext(ctx).Debug("search complete", "files", len(fileIDs), "results", len(results))
	return results, nil
}

// BuildQuery fills in the fixed retrieval parameters around query and fileIDs.
func BuildQuery(query string, fileIDs []commonModels.FileID) ingestion.EmbeddingsQuery {
	if fileIDs == nil {
		fileIDs = []commonModels.FileID{}
	}
	return ingestion.EmbeddingsQuery{
		Query:              query,
		K:                  config.SearchTopK,
		FileIDs:            fileIDs,
		IncludeAllChildren: true,
		IncludeTags:        true,
		IncludeVectors:     true,
		IncludeRawFile:     true,
		HybridSearch:       config.HybridSearchEnabled,
		HybridSearchTuningParameters: ingestion.HybridSearchTuning{
			WeightA: config.HybridSearchWeightA,
			WeightB: config.HybridSearchWeightB,
		},
		MediaType:      config.SearchMediaType,
		EmbeddingModel: config.EmbeddingGenerator,
	}
}
