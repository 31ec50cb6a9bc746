package mcpServer

import (
	"context"
	"encoding/json"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/domain/providerModel"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CustomerInput struct {
	CustomerID string `json:"customer_id" jsonschema:"the customer id returned at sign in"`
}

type ServiceInput struct {
	CustomerID string `json:"customer_id" jsonschema:"the customer id returned at sign in"`
	Service    string `json:"service" jsonschema:"one of GOOGLE_DRIVE, DROPBOX or NOTION"`
}

type SearchInput struct {
	CustomerID string   `json:"customer_id" jsonschema:"the customer id returned at sign in"`
	Query      string   `json:"query" jsonschema:"natural language query"`
	FileIDs    []any    `json:"file_ids,omitempty" jsonschema:"ids of the ingested files to search, strings or numbers as listed by list_uploaded_files"`
}

type ServicesOutput struct {
	Services []providerModel.Descriptor `json:"services"`
}

type DataSourcesOutput struct {
	DataSources []commonModels.DataSource `json:"data_sources"`
	Count       int                       `json:"count"`
}

type FilesOutput struct {
	Files []commonModels.ProviderFile `json:"files"`
	Count int                         `json:"count"`
}

type UploadedFilesOutput struct {
	UploadedFiles []commonModels.UploadedFile `json:"uploaded_files"`
	Count         int                         `json:"count"`
}

type SearchOutput struct {
	Results []commonModels.SearchResult `json:"results"`
	Count   int                         `json:"count"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_services",
		Description: "List the providers a customer can connect",
	}, s.handleListServices)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_data_sources",
		Description: "List the customer's connected data sources, newest first",
	}, s.handleListDataSources)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_files",
		Description: "List file names visible through the customer's latest connection of a service",
	}, s.handleListFiles)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_uploaded_files",
		Description: "List ingested files (ids and urls) for the customer's latest connection of a service",
	}, s.handleListUploadedFiles)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Semantic search over the customer's ingested files",
	}, s.handleSearch)
}

func (s *Server) handleListServices(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ServicesOutput, error) {
	return nil, ServicesOutput{Services: s.registry.ListServices()}, nil
}

func (s *Server) handleListDataSources(ctx context.Context, _ *mcp.CallToolRequest, input CustomerInput) (*mcp.CallToolResult, DataSourcesOutput, error) {
	sources, err := s.dataSources.ListDataSources(ctx, input.CustomerID)
	if err != nil {
		return nil, DataSourcesOutput{}, s.toolError(ctx, "list_data_sources", err)
	}
	if sources == nil {
		sources = []commonModels.DataSource{}
	}
	return nil, DataSourcesOutput{DataSources: sources, Count: len(sources)}, nil
}

func (s *Server) handleListFiles(ctx context.Context, _ *mcp.CallToolRequest, input ServiceInput) (*mcp.CallToolResult, FilesOutput, error) {
	files, err := s.dataSources.ListFiles(ctx, input.Service, input.CustomerID)
	if err != nil {
		return nil, FilesOutput{}, s.toolError(ctx, "list_files", err)
	}
	if files == nil {
		files = []commonModels.ProviderFile{}
	}
	return nil, FilesOutput{Files: files, Count: len(files)}, nil
}

func (s *Server) handleListUploadedFiles(ctx context.Context, _ *mcp.CallToolRequest, input ServiceInput) (*mcp.CallToolResult, UploadedFilesOutput, error) {
	files, err := s.dataSources.ListUploadedFiles(ctx, input.Service, input.CustomerID)
	if err != nil {
		return nil, UploadedFilesOutput{}, s.toolError(ctx, "list_uploaded_files", err)
	}
	if files == nil {
		files = []commonModels.UploadedFile{}
	}
	return nil, UploadedFilesOutput{UploadedFiles: files, Count: len(files)}, nil
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	fileIDs, err := toFileIDs(input.FileIDs)
	if err != nil {
		return nil, SearchOutput{}, s.toolError(ctx, "search_documents", commonModels.Validation(err.Error()))
	}
	results, err := s.search.Search(ctx, input.CustomerID, input.Query, fileIDs)
	if err != nil {
		return nil, SearchOutput{}, s.toolError(ctx, "search_documents", err)
	}
	if results == nil {
		results = []commonModels.SearchResult{}
	}
	return nil, SearchOutput{Results: results, Count: len(results)}, nil
}

// toFileIDs keeps each id in the JSON kind the agent sent. A nil input stays nil.
func toFileIDs(values []any) ([]commonModels.FileID, error) {
	if values == nil {
		return nil, nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	var ids []commonModels.FileID
	if err = json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// toolError keeps the caller facing message; the sdk reports it as a tool error result.
func (s *Server) toolError(ctx context.Context, tool string, err error) error {
	s.logger.ForContext(ctx).Warn("tool call failed", "tool", tool, "error", err)
	return &toolErr{message: commonModels.MessageOf(err), cause: err}
}

type toolErr struct {
	message string
	cause   error
}

func (e *toolErr) Error() string { return e.message }

func (e *toolErr) Unwrap() error { return e.cause }
