// Package registry knows the supported providers and maps a (service, customer)
// pair to its connection: the OAuth URL that opens one and the data source id
// of the most recent one.
package registry

import (
	"context"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/domain/providerModel"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

type Service interface {
	ListServices() []providerModel.Descriptor
	GetOAuthURL(ctx context.Context, service string, customerID string) (string, error)
	ResolveDataSourceID(ctx context.Context, service string, customerID string) (commonModels.ID, error)
}

type service struct {
	backend ingestion.Backend
	logger  *logger_i.Logger
}

func NewService(backend ingestion.Backend) Service {
	return &service{
		backend: backend,
		logger:  logger_i.NewLogger("ProviderRegistry"),
	}
}

func (s *service) ListServices() []providerModel.Descriptor {
	return providerModel.All()
}

func (s *service) GetOAuthURL(ctx context.Context, service string, customerID string) (string, error) {
	desc, err := validate(service, customerID)
	if err != nil {
		return "", err
	}

	req := ingestion.OAuthURLRequest{
		Service:              string(desc.Service),
		ConnectingNewAccount: true,
	}
	if desc.HasScope() {
		req.Scope = desc.Scope
	}

	url, err := s.backend.GetOAuthURL(ctx, customerID, req)
	if err != nil {
		s.logger.ForContext(ctx).Warn("oauth url request failed", "service", service, "error", err)
		return "", err
	}
	return url, nil
}

// ResolveDataSourceID returns the id of the most recently created connection
// for service. The backend is asked for created_at desc but the pick is made here.
func (s *service) ResolveDataSourceID(ctx context.Context, service string, customerID string) (commonModels.ID, error) {
	log := s.logger.ForContext(ctx)
	desc, err := validate(service, customerID)
	if err != nil {
		return "", err
	}

	sources, err := s.backend.QueryDataSources(ctx, customerID, ingestion.DataSourceQuery{
		Pagination: ingestion.Pagination{Limit: config.DataSourcePageSize},
		OrderBy:    config.OrderByCreatedAt,
		OrderDir:   config.OrderDirDesc,
		Filters:    &ingestion.DataSourceFilters{Source: string(desc.Service)},
	})
	if err != nil {
		return "", err
	}

	latest, ok := mostRecent(sources)
	if !ok {
		log.Info("no connected data source", "service", service)
		return "", commonModels.NotConnected(service)
	}
	log.Debug("resolved data source", "service", service, "dataSourceId", latest.ID)
	return latest.ID, nil
}

// mostRecent picks the maximum created_at. Ties keep the earlier record.
func mostRecent(sources []commonModels.DataSource) (commonModels.DataSource, bool) {
	if len(sources) == 0 {
		return commonModels.DataSource{}, false
	}
	latest := sources[0]
	for _, ds := range sources[1:] {
		if ds.CreatedAt.After(latest.CreatedAt.Time) {
			latest = ds
		}
	}
	return latest, true
}

func validate(service string, customerID string) (providerModel.Descriptor, error) {
	if err := commonModels.RequireCustomerID(customerID); err != nil {
		return providerModel.Descriptor{}, err
	}
	desc, ok := providerModel.Lookup(service)
	if !ok {
		return providerModel.Descriptor{}, commonModels.Validation(commonModels.MsgInvalidService)
	}
	return desc, nil
}
