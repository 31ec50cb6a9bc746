package mcpServer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akolanti/DocBridgeAPI/internal/datasource"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion/ingestion_test"
	"github.com/akolanti/DocBridgeAPI/internal/registry"
	"github.com/akolanti/DocBridgeAPI/internal/search"
)

func newTestServer(backend *ingestion_test.MockBackend) *Server {
	reg := registry.NewService(backend)
	return NewServer(reg, datasource.NewService(backend, reg), search.NewService(backend))
}

func TestHandleSearch(t *testing.T) {
	var got ingestion.EmbeddingsQuery
	backend := &ingestion_test.MockBackend{
		OnSearchEmbeddings: func(ctx context.Context, customerID string, query ingestion.EmbeddingsQuery) ([]commonModels.SearchResult, error) {
			got = query
			return []commonModels.SearchResult{{SourceURL: "https://s"}}, nil
		},
	}
	s := newTestServer(backend)

	_, out, err := s.handleSearch(context.Background(), nil, SearchInput{CustomerID: "c1", Query: "refund policy", FileIDs: []any{"f1", float64(12)}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Results[0].SourceURL != "https://s" {
		t.Errorf("got %+v", out)
	}
	if got.K != 2 || len(got.FileIDs) != 2 {
		t.Fatalf("query got %+v", got)
	}
	raw, _ := json.Marshal(got.FileIDs)
	if string(raw) != `["f1",12]` {
		t.Errorf("file ids should keep their kind, got %s", raw)
	}
}

func TestHandleSearch_FileIDsRequired(t *testing.T) {
	tests := []struct {
		name    string
		fileIDs []any
		wantMsg string
	}{
		{"absent", nil, "File IDs are required"},
		{"boolean id", []any{true}, "file id must be a string or a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &ingestion_test.MockBackend{}
			s := newTestServer(backend)

			_, _, err := s.handleSearch(context.Background(), nil, SearchInput{CustomerID: "c1", Query: "q", FileIDs: tt.fileIDs})
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("got %v", err)
			}
			if backend.Calls != 0 {
				t.Errorf("expected no backend calls, got %d", backend.Calls)
			}
		})
	}
}

func TestHandleSearch_ValidationError(t *testing.T) {
	backend := &ingestion_test.MockBackend{}
	s := newTestServer(backend)

	_, _, err := s.handleSearch(context.Background(), nil, SearchInput{Query: "q"})
	if err == nil || err.Error() != "Customer ID is required" {
		t.Errorf("got %v", err)
	}
	if backend.Calls != 0 {
		t.Errorf("expected no backend calls, got %d", backend.Calls)
	}
}

func TestHandleListFiles(t *testing.T) {
	backend := &ingestion_test.MockBackend{
		OnQueryDataSources: ingestion_test.Connected(commonModels.DataSource{ID: "3"}),
		OnListDataSourceItems: func(ctx context.Context, customerID string, query ingestion.ItemsQuery) ([]commonModels.ProviderFile, error) {
			return []commonModels.ProviderFile{{Name: "a"}, {Name: "b"}}, nil
		},
	}
	s := newTestServer(backend)

	_, out, err := s.handleListFiles(context.Background(), nil, ServiceInput{CustomerID: "c1", Service: "NOTION"})
	if err != nil || out.Count != 2 {
		t.Errorf("got %+v, %v", out, err)
	}
}

func TestHandleListUploadedFiles_NotConnected(t *testing.T) {
	s := newTestServer(&ingestion_test.MockBackend{OnQueryDataSources: ingestion_test.Connected()})

	_, _, err := s.handleListUploadedFiles(context.Background(), nil, ServiceInput{CustomerID: "c1", Service: "DROPBOX"})
	if !errors.Is(err, commonModels.ErrNotConnected) {
		t.Errorf("got %v", err)
	}
}

func TestHandleListDataSources_EmptyIsArray(t *testing.T) {
	s := newTestServer(&ingestion_test.MockBackend{})

	_, out, err := s.handleListDataSources(context.Background(), nil, CustomerInput{CustomerID: "c1"})
	if err != nil || out.DataSources == nil || out.Count != 0 {
		t.Errorf("got %+v, %v", out, err)
	}
}

func TestHandleListServices(t *testing.T) {
	_, out, _ := newTestServer(&ingestion_test.MockBackend{}).handleListServices(context.Background(), nil, struct{}{})
	if len(out.Services) != 3 {
		t.Errorf("got %+v", out)
	}
}

func TestHandler_RequiresStreamableAccept(t *testing.T) {
	h := newTestServer(&ingestion_test.MockBackend{}).Handler()

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// no Accept header for json and event-stream
	if rec.Code == http.StatusOK {
		t.Errorf("expected the transport to refuse the request, got %d", rec.Code)
	}
}
