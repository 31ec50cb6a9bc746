package api

import (
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/domain/providerModel"
)

type ErrorResponse struct {
	Error string `json:"error" example:"Customer ID is required"`
	Code  int    `json:"code" example:"400"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Hello, This is working!"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// requests---------------------

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"a@b.com"`
	Password string `json:"password" validate:"required"`
}

type CustomerIDRequest struct {
	UserID string `json:"user_id" validate:"required" example:"8d0f3c1e-1111-4a8e-9d3b-2f0b4c7e9a10"`
}

type CustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
}

type ServiceRequest struct {
	Service    string `json:"service" validate:"required" example:"GOOGLE_DRIVE"`
	CustomerID string `json:"customer_id" validate:"required"`
}

type SearchRequest struct {
	Query      string                `json:"query" validate:"required" example:"refund policy"`
	FileIDs    []commonModels.FileID `json:"file_ids" validate:"required" swaggertype:"array,string"`
	CustomerID string                `json:"customer_id" validate:"required"`
}

// responses---------------------

type LoginResponse struct {
	UserID     string `json:"user_id"`
	CustomerID string `json:"customer_id"`
}

type CustomerIDResponse struct {
	CustomerID string `json:"customer_id"`
}

type UploadResponse struct {
	Message  string                     `json:"message" example:"File uploaded successfully"`
	Response commonModels.UploadReceipt `json:"response"`
}

type OAuthURLResponse struct {
	OAuthURL string `json:"oauth_url"`
}

type DataSourcesResponse struct {
	DataSources []commonModels.DataSource `json:"data_sources"`
}

type FilesResponse struct {
	Files []commonModels.ProviderFile `json:"files"`
}

type UploadedFilesResponse struct {
	UploadedFiles []commonModels.UploadedFile `json:"uploaded_files"`
}

type SearchResponse struct {
	SearchResults []commonModels.SearchResult `json:"search_results"`
}

type ServicesResponse struct {
	Services []providerModel.Descriptor `json:"services"`
}
