package carbon

import (
	"encoding/json"
	"strings"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
)

type oauthURLResponse struct {
	OAuthURL string `json:"oauth_url"`
}

type dataSourcesResponse struct {
	Results []dataSourceRecord `json:"results"`
	Count   int                `json:"count"`
}

type dataSourceRecord struct {
	ID                   commonModels.ID        `json:"id"`
	DataSourceExternalID string                 `json:"data_source_external_id"`
	DataSourceType       string                 `json:"data_source_type"`
	SyncStatus           string                 `json:"sync_status"`
	CreatedAt            commonModels.Timestamp `json:"created_at"`
	UpdatedAt            commonModels.Timestamp `json:"updated_at"`
}

func (r dataSourceRecord) toDomain() commonModels.DataSource {
	return commonModels.DataSource{
		ID:         r.ID,
		ExternalID: r.DataSourceExternalID,
		Type:       r.DataSourceType,
		SyncStatus: commonModels.SyncStatus(r.SyncStatus),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

type itemsResponse struct {
	Items []itemRecord `json:"items"`
	Count int          `json:"count"`
}

// the listing carries more fields than name but they are not reliable across providers
type itemRecord struct {
	Name string `json:"name"`
}

type userFilesResponse struct {
	Results []userFileRecord `json:"results"`
	Count   int              `json:"count"`
}

type userFileRecord struct {
	ID                           commonModels.ID `json:"id"`
	OrganizationSuppliedUserID   string          `json:"organization_supplied_user_id"`
	OrganizationUserDataSourceID commonModels.ID `json:"organization_user_data_source_id"`
	ExternalURL                  string          `json:"external_url"`
}

func (r userFileRecord) toDomain() commonModels.UploadedFile {
	return commonModels.UploadedFile{
		ID:                         r.ID,
		OrganizationSuppliedUserID: r.OrganizationSuppliedUserID,
		DataSourceID:               r.OrganizationUserDataSourceID,
		ExternalURL:                r.ExternalURL,
	}
}

type embeddingsResponse struct {
	Documents []documentRecord `json:"documents"`
}

// vector and raw file fields are left undecoded
type documentRecord struct {
	Source       any            `json:"source"`
	SourceURL    string         `json:"source_url"`
	SourceType   string         `json:"source_type"`
	PresignedURL string         `json:"presigned_url"`
	Tags         map[string]any `json:"tags"`
}

func (r documentRecord) toDomain() commonModels.SearchResult {
	return commonModels.SearchResult{
		Source:       r.Source,
		SourceURL:    r.SourceURL,
		SourceType:   r.SourceType,
		PresignedURL: r.PresignedURL,
		Tags:         r.Tags,
	}
}

// errorMessage pulls a readable message out of a backend error body.
func errorMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, key := range []string{"detail", "message", "error"} {
		switch v := body[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
	}
	return ""
}
