// Package ingestion holds the contract with the document ingestion backend:
// the payloads this service sends and the calls it needs. The HTTP client
// lives in the carbon subpackage.
package ingestion

import (
	"context"
	"io"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
)

// Backend is scoped per call by customerID. Implementations convert every
// failure into a *commonModels.AppError.
type Backend interface {
	UploadFile(ctx context.Context, customerID string, file FileUpload) (commonModels.UploadReceipt, error)
	GetOAuthURL(ctx context.Context, customerID string, req OAuthURLRequest) (string, error)
	QueryDataSources(ctx context.Context, customerID string, query DataSourceQuery) ([]commonModels.DataSource, error)
	ListDataSourceItems(ctx context.Context, customerID string, query ItemsQuery) ([]commonModels.ProviderFile, error)
	ListUserFiles(ctx context.Context, customerID string, query UserFilesQuery) ([]commonModels.UploadedFile, error)
	SearchEmbeddings(ctx context.Context, customerID string, query EmbeddingsQuery) ([]commonModels.SearchResult, error)
}

type FileUpload struct {
	Name        string
	ContentType string
	Content     io.Reader
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type OAuthURLRequest struct {
	Service              string `json:"service"`
	Scope                string `json:"scope,omitempty"`
	ConnectingNewAccount bool   `json:"connecting_new_account"`
}

type DataSourceFilters struct {
	Source string `json:"source,omitempty"`
}

type DataSourceQuery struct {
	Pagination Pagination         `json:"pagination"`
	OrderBy    string             `json:"order_by"`
	OrderDir   string             `json:"order_dir"`
	Filters    *DataSourceFilters `json:"filters,omitempty"`
}

type ItemsQuery struct {
	DataSourceID commonModels.ID `json:"data_source_id"`
	Filters      map[string]any  `json:"filters"`
	Pagination   Pagination      `json:"pagination"`
}

type UserFilesFilters struct {
	OrganizationUserDataSourceID []commonModels.ID `json:"organization_user_data_source_id"`
	EmbeddingGenerators          []string          `json:"embedding_generators"`
	IncludeAllChildren           bool              `json:"include_all_children"`
}

type UserFilesQuery struct {
	Pagination             Pagination       `json:"pagination"`
	OrderBy                string           `json:"order_by"`
	OrderDir               string           `json:"order_dir"`
	Filters                UserFilesFilters `json:"filters"`
	IncludeRawFile         bool             `json:"include_raw_file"`
	IncludeParsedTextFile  bool             `json:"include_parsed_text_file"`
	IncludeAdditionalFiles bool             `json:"include_additional_files"`
}

// HybridSearchTuning is sent even while hybrid search is off.
type HybridSearchTuning struct {
	WeightA float64 `json:"weight_a"`
	WeightB float64 `json:"weight_b"`
}

type EmbeddingsQuery struct {
	Query                        string                `json:"query"`
	K                            int                   `json:"k"`
	FileIDs                      []commonModels.FileID `json:"file_ids"`
	IncludeAllChildren           bool                  `json:"include_all_children"`
	IncludeTags                  bool                  `json:"include_tags"`
	IncludeVectors               bool                  `json:"include_vectors"`
	IncludeRawFile               bool                  `json:"include_raw_file"`
	HybridSearch                 bool                  `json:"hybrid_search"`
	HybridSearchTuningParameters HybridSearchTuning    `json:"hybrid_search_tuning_parameters"`
	MediaType                    string                `json:"media_type"`
	EmbeddingModel               string                `json:"embedding_model"`
}
