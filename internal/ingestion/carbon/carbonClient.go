package carbon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/internal/metrics"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

const maxErrorBody = 64 << 10

// Client talks to the Carbon REST API. One client serves every customer;
// the customer scope travels in the customer-id header of each request.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger_i.Logger
}

var _ ingestion.Backend = (*Client)(nil)

func NewClient(baseURL string, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = config.CarbonBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger_i.NewLogger("carbon"),
	}
}

func (c *Client) UploadFile(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(file.Name)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, commonModels.Upstream("Could not prepare upload", err)
	}
	if _, err = io.Copy(part, file.Content); err != nil {
		return nil, commonModels.Upstream("Could not read uploaded file", err)
	}
	if err = mw.Close(); err != nil {
		return nil, commonModels.Upstream("Could not prepare upload", err)
	}

	var receipt commonModels.UploadReceipt
	err = c.do(ctx, customerID, "upload", http.MethodPost, config.CarbonUploadPath, &body, mw.FormDataContentType(), &receipt)
	return receipt, err
}

func (c *Client) GetOAuthURL(ctx context.Context, customerID string, req ingestion.OAuthURLRequest) (string, error) {
	var res oauthURLResponse
	if err := c.postJSON(ctx, customerID, "oauth_url", config.CarbonOAuthURLPath, req, &res); err != nil {
		return "", err
	}
	if res.OAuthURL == "" {
		c.failure("oauth_url", commonModels.KindUpstream)
		return "", commonModels.Upstream("Ingestion backend returned no oauth url", nil)
	}
	return res.OAuthURL, nil
}

func (c *Client) QueryDataSources(ctx context.Context, customerID string, query ingestion.DataSourceQuery) ([]commonModels.DataSource, error) {
	var res dataSourcesResponse
	if err := c.postJSON(ctx, customerID, "user_data_sources", config.CarbonDataSourcesPath, query, &res); err != nil {
		return nil, err
	}
	out := make([]commonModels.DataSource, 0, len(res.Results))
	for _, ds := range res.Results {
		out = append(out, ds.toDomain())
	}
	return out, nil
}

func (c *Client) ListDataSourceItems(ctx context.Context, customerID string, query ingestion.ItemsQuery) ([]commonModels.ProviderFile, error) {
	var res itemsResponse
	if err := c.postJSON(ctx, customerID, "items_list", config.CarbonItemsListPath, query, &res); err != nil {
		return nil, err
	}
	out := make([]commonModels.ProviderFile, 0, len(res.Items))
	for _, item := range res.Items {
		out = append(out, commonModels.ProviderFile{Name: item.Name})
	}
	return out, nil
}

func (c *Client) ListUserFiles(ctx context.Context, customerID string, query ingestion.UserFilesQuery) ([]commonModels.UploadedFile, error) {
	var res userFilesResponse
	if err := c.postJSON(ctx, customerID, "user_files_v2", config.CarbonUserFilesPath, query, &res); err != nil {
		return nil, err
	}
	out := make([]commonModels.UploadedFile, 0, len(res.Results))
	for _, f := range res.Results {
		out = append(out, f.toDomain())
	}
	return out, nil
}

func (c *Client) SearchEmbeddings(ctx context.Context, customerID string, query ingestion.EmbeddingsQuery) ([]commonModels.SearchResult, error) {
	var res embeddingsResponse
	if err := c.postJSON(ctx, customerID, "embeddings", config.CarbonEmbeddingsPath, query, &res); err != nil {
		return nil, err
	}
	out := make([]commonModels.SearchResult, 0, len(res.Documents))
	for _, d := range res.Documents {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, customerID string, op string, path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return commonModels.Upstream("Could not encode ingestion request", err)
	}
	return c.do(ctx, customerID, op, http.MethodPost, path, bytes.NewReader(data), "application/json", out)
}

// do runs one round trip and converts every failure into an upstream AppError.
func (c *Client) do(ctx context.Context, customerID string, op string, method string, path string, body io.Reader, contentType string, out any) error {
	log := c.logger.ForContext(ctx).With("op", op)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		c.failure(op, commonModels.KindUpstream)
		return commonModels.Upstream("Could not build ingestion request", err)
	}
	req.Header.Set("authorization", "Bearer "+c.apiKey)
	req.Header.Set(config.CarbonCustomerIDHeader, customerID)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if trace, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		req.Header.Set(config.TRACE_HEADER, trace)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	metrics.CaptureExecutionMetrics("carbon_"+op, time.Since(start))
	if err != nil {
		log.Error("ingestion backend unreachable", "error", err)
		c.failure(op, commonModels.KindUpstream)
		return commonModels.Upstream("Ingestion backend unavailable", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		msg := errorMessage(raw)
		if msg == "" {
			msg = fmt.Sprintf("Ingestion backend returned %d", res.StatusCode)
		}
		log.Warn("ingestion backend rejected request", "status", res.StatusCode, "message", msg)
		c.failure(op, commonModels.KindUpstream)
		return commonModels.Upstream(msg, fmt.Errorf("carbon %s: status %d", op, res.StatusCode))
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		log.Error("could not decode ingestion response", "error", err)
		c.failure(op, commonModels.KindUpstream)
		return commonModels.Upstream("Invalid response from ingestion backend", err)
	}
	log.Debug("ingestion call complete", "status", res.StatusCode)
	return nil
}

func (c *Client) failure(op string, kind commonModels.ErrorKind) {
	metrics.IncrementBackendErrors("carbon_"+op, string(kind))
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
