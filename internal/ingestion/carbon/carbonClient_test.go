package carbon

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
)

type capturedRequest struct {
	path    string
	auth    string
	scope   string
	payload map[string]any
}

func newTestServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("authorization")
		captured.scope = r.Header.Get(config.CarbonCustomerIDHeader)
		if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			_ = json.NewDecoder(r.Body).Decode(&captured.payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, "key-1", srv.Client())
}

func TestQueryDataSources_NormalizesRecords(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"count":1,"results":[{"id":17,"data_source_external_id":"ext-1","data_source_type":"GOOGLE_DRIVE","sync_status":"READY","created_at":"2024-06-25T10:00:00Z","updated_at":"2024-06-26T10:00:00Z","extra":"ignored"}]}`, &got)

	query := ingestion.DataSourceQuery{
		Pagination: ingestion.Pagination{Limit: 100},
		OrderBy:    "created_at",
		OrderDir:   "desc",
		Filters:    &ingestion.DataSourceFilters{Source: "GOOGLE_DRIVE"},
	}
	res, err := newTestClient(srv).QueryDataSources(context.Background(), "c1", query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.path != config.CarbonDataSourcesPath || got.auth != "Bearer key-1" || got.scope != "c1" {
		t.Errorf("request not scoped correctly: %+v", got)
	}
	filters, _ := got.payload["filters"].(map[string]any)
	if filters["source"] != "GOOGLE_DRIVE" {
		t.Errorf("filters got %v", got.payload["filters"])
	}

	if len(res) != 1 {
		t.Fatalf("expected 1 data source, got %d", len(res))
	}
	ds := res[0]
	if ds.ID != "17" || ds.ExternalID != "ext-1" || ds.Type != "GOOGLE_DRIVE" || ds.SyncStatus != commonModels.SyncStatusReady {
		t.Errorf("unexpected data source %+v", ds)
	}
	if !ds.CreatedAt.Equal(time.Date(2024, 6, 25, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("created_at got %v", ds.CreatedAt)
	}
}

func TestListDataSourceItems_ProjectsNameOnly(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"count":2,"items":[{"name":"a.pdf","id":1},{"name":"b.docx","id":2}]}`, &got)

	res, err := newTestClient(srv).ListDataSourceItems(context.Background(), "c1", ingestion.ItemsQuery{
		DataSourceID: "17",
		Filters:      map[string]any{},
		Pagination:   ingestion.Pagination{Limit: 250},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.payload["data_source_id"] != float64(17) {
		t.Errorf("data_source_id should be sent as a number, got %v", got.payload["data_source_id"])
	}
	if len(res) != 2 || res[0].Name != "a.pdf" || res[1].Name != "b.docx" {
		t.Errorf("unexpected items %+v", res)
	}
}

func TestListUserFiles_Normalizes(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"count":1,"results":[{"id":5,"organization_supplied_user_id":"org-u","organization_user_data_source_id":17,"external_url":"https://drive/x","presigned_url":"skip"}]}`, &got)

	res, err := newTestClient(srv).ListUserFiles(context.Background(), "c1", ingestion.UserFilesQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := commonModels.UploadedFile{ID: "5", OrganizationSuppliedUserID: "org-u", DataSourceID: "17", ExternalURL: "https://drive/x"}
	if len(res) != 1 || res[0] != want {
		t.Errorf("got %+v, want %+v", res, want)
	}
}

func TestSearchEmbeddings_DropsVectors(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"documents":[{"source":"12","source_url":"https://s","source_type":"GOOGLE_DRIVE","presigned_url":"https://p","tags":{"k":"v"},"vector":[0.1,0.2],"raw_file":"..."}]}`, &got)

	res, err := newTestClient(srv).SearchEmbeddings(context.Background(), "c1", ingestion.EmbeddingsQuery{Query: "q", K: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.path != config.CarbonEmbeddingsPath {
		t.Errorf("path got %s", got.path)
	}
	if len(res) != 1 || res[0].SourceURL != "https://s" || res[0].PresignedURL != "https://p" || res[0].Tags["k"] != "v" {
		t.Errorf("unexpected result %+v", res)
	}
	out, _ := json.Marshal(res[0])
	if strings.Contains(string(out), "vector") || strings.Contains(string(out), "raw_file") {
		t.Errorf("normalized result leaks backend payload: %s", out)
	}
}

func TestGetOAuthURL(t *testing.T) {
	var got capturedRequest
	srv := newTestServer(t, http.StatusOK, `{"oauth_url":"https://auth/x"}`, &got)

	url, err := newTestClient(srv).GetOAuthURL(context.Background(), "c1", ingestion.OAuthURLRequest{Service: "DROPBOX", ConnectingNewAccount: true})
	if err != nil || url != "https://auth/x" {
		t.Fatalf("got %q, %v", url, err)
	}
	if _, present := got.payload["scope"]; present {
		t.Error("scope must be omitted when empty")
	}
	if got.payload["connecting_new_account"] != true {
		t.Error("connecting_new_account must be true")
	}
}

func TestUploadFile_Multipart(t *testing.T) {
	var fileName, fileBody, scope string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope = r.Header.Get(config.CarbonCustomerIDHeader)
		f, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		fileName, fileBody = header.Filename, string(b)
		_, _ = io.WriteString(w, `{"id":99,"name":"notes.txt"}`)
	}))
	defer srv.Close()

	receipt, err := NewClient(srv.URL, "k", srv.Client()).UploadFile(context.Background(), "c1", ingestion.FileUpload{
		Name:    "notes.txt",
		Content: strings.NewReader("hello"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scope != "c1" || fileName != "notes.txt" || fileBody != "hello" {
		t.Errorf("upload not forwarded: scope=%s name=%s body=%s", scope, fileName, fileBody)
	}
	if receipt["id"] != float64(99) {
		t.Errorf("receipt got %v", receipt)
	}
}

func TestErrors_ConvertedToUpstream(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"detail string", http.StatusUnauthorized, `{"detail":"Invalid API key"}`, "Invalid API key"},
		{"message field", http.StatusInternalServerError, `{"message":"boom"}`, "boom"},
		{"plain text", http.StatusBadGateway, `gateway down`, "gateway down"},
		{"empty body", http.StatusServiceUnavailable, ``, "Ingestion backend returned 503"},
		{"bad json on success", http.StatusOK, `{"results":`, "Invalid response from ingestion backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got capturedRequest
			srv := newTestServer(t, tt.status, tt.body, &got)
			_, err := newTestClient(srv).QueryDataSources(context.Background(), "c1", ingestion.DataSourceQuery{})
			if commonModels.KindOf(err) != commonModels.KindUpstream {
				t.Fatalf("kind got %s (%v)", commonModels.KindOf(err), err)
			}
			if commonModels.MessageOf(err) != tt.wantMsg {
				t.Errorf("message got %q, want %q", commonModels.MessageOf(err), tt.wantMsg)
			}
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, "k", http.DefaultClient).SearchEmbeddings(context.Background(), "c1", ingestion.EmbeddingsQuery{})
	var appErr *commonModels.AppError
	if !errors.As(err, &appErr) || appErr.Kind != commonModels.KindUpstream || appErr.Message != "Ingestion backend unavailable" {
		t.Errorf("got %v", err)
	}
}
