package adapter

import (
	"github.com/akolanti/DocBridgeAPI/internal/api"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/domain/providerModel"
)

const UploadSuccessMessage = "File uploaded successfully"

func ToLoginResponse(c commonModels.Customer) api.LoginResponse {
	return api.LoginResponse{UserID: c.UserID, CustomerID: c.CustomerID}
}

func ToUploadResponse(receipt commonModels.UploadReceipt) api.UploadResponse {
	if receipt == nil {
		receipt = commonModels.UploadReceipt{}
	}
	return api.UploadResponse{Message: UploadSuccessMessage, Response: receipt}
}

// list responses always carry an array, never null

func ToDataSourcesResponse(sources []commonModels.DataSource) api.DataSourcesResponse {
	if sources == nil {
		sources = []commonModels.DataSource{}
	}
	return api.DataSourcesResponse{DataSources: sources}
}

func ToFilesResponse(files []commonModels.ProviderFile) api.FilesResponse {
	if files == nil {
		files = []commonModels.ProviderFile{}
	}
	return api.FilesResponse{Files: files}
}

func ToUploadedFilesResponse(files []commonModels.UploadedFile) api.UploadedFilesResponse {
	if files == nil {
		files = []commonModels.UploadedFile{}
	}
	return api.UploadedFilesResponse{UploadedFiles: files}
}

func ToSearchResponse(results []commonModels.SearchResult) api.SearchResponse {
	if results == nil {
		results = []commonModels.SearchResult{}
	}
	return api.SearchResponse{SearchResults: results}
}

func ToHealthResponse() api.HealthResponse {
	return api.HealthResponse{Status: "ok"}
}

func ToServicesResponse(descriptors []providerModel.Descriptor) api.ServicesResponse {
	return api.ServicesResponse{Services: descriptors}
}
