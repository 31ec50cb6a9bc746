package datasource

import (
	"context"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/internal/registry"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

// Service lists what a customer has connected and what those connections hold.
type Service interface {
	ListDataSources(ctx context.Context, customerID string) ([]commonModels.DataSource, error)
	// ListFiles lists the items visible through the provider connection.
	ListFiles(ctx context.Context, service string, customerID string) ([]commonModels.ProviderFile, error)
	// ListUploadedFiles lists the files the ingestion backend has synced from that connection.
	ListUploadedFiles(ctx context.Context, service string, customerID string) ([]commonModels.UploadedFile, error)
}

type service struct {
	backend  ingestion.Backend
	registry registry.Service
	logger   *logger_i.Logger
}

func NewService(backend ingestion.Backend, reg registry.Service) Service {
	return &service{
		backend:  backend,
		registry: reg,
		logger:   logger_i.NewLogger("DataSourceAggregator"),
	}
}

func (s *service) ListDataSources(ctx context.Context, customerID string) ([]commonModels.DataSource, error) {
	if err := commonModels.RequireCustomerID(customerID); err != nil {
		return nil, err
	}
	sources, err := s.backend.QueryDataSources(ctx, customerID, ingestion.DataSourceQuery{
		Pagination: ingestion.Pagination{Limit: config.DataSourcePageSize},
		OrderBy:    config.OrderByCreatedAt,
		OrderDir:   config.OrderDirDesc,
	})
	if err != nil {
		return nil, err
	}
	s.logger.ForContext(ctx).Debug("listed data sources", "count", len(sources))
	return sources, nil
}

func (s *service) ListFiles(ctx context.Context, service string, customerID string) ([]commonModels.ProviderFile, error) {
	dataSourceID, err := s.registry.ResolveDataSourceID(ctx, service, customerID)
	if err != nil {
		return nil, err
	}

	files, err := s.backend.ListDataSourceItems(ctx, customerID, ingestion.ItemsQuery{
		DataSourceID: dataSourceID,
		Filters:      map[string]any{},
		Pagination:   ingestion.Pagination{Limit: config.ProviderItemPageSize},
	})
	if err != nil {
		return nil, err
	}
	s.logger.ForContext(ctx).Debug("listed provider files", "service", service, "dataSourceId", dataSourceID, "count", len(files))
	return files, nil
}

func (s *service) ListUploadedFiles(ctx context.Context, service string, customerID string) ([]commonModels.UploadedFile, error) {
	dataSourceID, err := s.registry.ResolveDataSourceID(ctx, service, customerID)
	if err != nil {
		return nil, err
	}

	files, err := s.backend.ListUserFiles(ctx, customerID, ingestion.UserFilesQuery{
		Pagination: ingestion.Pagination{Limit: config.UploadedFilePageSize},
		OrderBy:    config.OrderByCreatedAt,
		OrderDir:   config.OrderDirDesc,
		Filters: ingestion.UserFilesFilters{
			OrganizationUserDataSourceID: []commonModels.ID{dataSourceID},
			EmbeddingGenerators:          []string{config.EmbeddingGenerator},
			IncludeAllChildren:           true,
		},
		IncludeRawFile:         true,
		IncludeParsedTextFile:  true,
		IncludeAdditionalFiles: true,
	})
	if err != nil {
		return nil, err
	}
	s.logger.ForContext(ctx).Debug("listed uploaded files", "service", service, "dataSourceId", dataSourceID, "count", len(files))
	return files, nil
}
