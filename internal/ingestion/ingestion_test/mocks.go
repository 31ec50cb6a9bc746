package ingestion_test

import (
	"context"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
)

// MockBackend implements ingestion.Backend. Calls counts every method invocation.
type MockBackend struct {
	OnUploadFile          func(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error)
	OnGetOAuthURL         func(ctx context.Context, customerID string, req ingestion.OAuthURLRequest) (string, error)
	OnQueryDataSources    func(ctx context.Context, customerID string, query ingestion.DataSourceQuery) ([]commonModels.DataSource, error)
	OnListDataSourceItems func(ctx context.Context, customerID string, query ingestion.ItemsQuery) ([]commonModels.ProviderFile, error)
	OnListUserFiles       func(ctx context.Context, customerID string, query ingestion.UserFilesQuery) ([]commonModels.UploadedFile, error)
	OnSearchEmbeddings    func(ctx context.Context, customerID string, query ingestion.EmbeddingsQuery) ([]commonModels.SearchResult, error)

	Calls int
}

var _ ingestion.Backend = (*MockBackend)(nil)

func (m *MockBackend) UploadFile(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error) {
	m.Calls++
	if m.OnUploadFile != nil {
		return m.OnUploadFile(ctx, customerID, file)
	}
	return commonModels.UploadReceipt{"id": 1}, nil
}

func (m *MockBackend) GetOAuthURL(ctx context.Context, customerID string, req ingestion.OAuthURLRequest) (string, error) {
	m.Calls++
	if m.OnGetOAuthURL != nil {
		return m.OnGetOAuthURL(ctx, customerID, req)
	}
	return "https://oauth.example/connect", nil
}

func (m *MockBackend) QueryDataSources(ctx context.Context, customerID string, query ingestion.DataSourceQuery) ([]commonModels.DataSource, error) {
	m.Calls++
	if m.OnQueryDataSources != nil {
		return m.OnQueryDataSources(ctx, customerID, query)
	}
	return nil, nil
}

func (m *MockBackend) ListDataSourceItems(ctx context.Context, customerID string, query ingestion.ItemsQuery) ([]commonModels.ProviderFile, error) {
	m.Calls++
	if m.OnListDataSourceItems != nil {
		return m.OnListDataSourceItems(ctx, customerID, query)
	}
	return nil, nil
}

func (m *MockBackend) ListUserFiles(ctx context.Context, customerID string, query ingestion.UserFilesQuery) ([]commonModels.UploadedFile, error) {
	m.Calls++
	if m.OnListUserFiles != nil {
		return m.OnListUserFiles(ctx, customerID, query)
	}
	return nil, nil
}

func (m *MockBackend) SearchEmbeddings(ctx context.Context, customerID string, query ingestion.EmbeddingsQuery) ([]commonModels.SearchResult, error) {
	m.Calls++
	if m.OnSearchEmbeddings != nil {
		return m.OnSearchEmbeddings(ctx, customerID, query)
	}
	return nil, nil
}

// Connected returns an OnQueryDataSources stub that reports the given sources.
func Connected(sources ...commonModels.DataSource) func(context.Context, string, ingestion.DataSourceQuery) ([]commonModels.DataSource, error) {
	return func(ctx context.Context, customerID string, query ingestion.DataSourceQuery) ([]commonModels.DataSource, error) {
		return sources, nil
	}
}
