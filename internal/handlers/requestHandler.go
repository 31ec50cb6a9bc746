package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/akolanti/DocBridgeAPI/internal/adapter"
	"github.com/akolanti/DocBridgeAPI/internal/api"
	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
)

const liveMessage = "Hello, This is working!"

// GetHandler godoc
// @Summary      Liveness text
// @Tags         Health
// @Produce      plain
// @Success      200  {string}  string  "Hello, This is working!"
// @Router       / [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, liveMessage)
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, adapter.ToHealthResponse())
}

// ServicesHandler godoc
// @Summary      Supported providers
// @Description  Lists the services a customer can connect, with the OAuth scope requested for each.
// @Tags         Connections
// @Produce      json
// @Success      200  {object}  api.ServicesResponse
// @Router       /services [get]
func (h *Handler) ServicesHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, adapter.ToServicesResponse(h.services.Registry.ListServices()))
}

// LoginHandler godoc
// @Summary      Sign in
// @Description  Verifies the credentials with the identity backend and returns the customer id to use on every other call.
// @Tags         Identity
// @Accept       json
// @Produce      json
// @Param        request  body      api.LoginRequest   true  "Credentials"
// @Success      200      {object}  api.LoginResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing or rejected credentials"
// @Router       /login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	customer, err := h.services.Identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToLoginResponse(customer))
}

// CustomerIDHandler godoc
// @Summary      Resolve a customer id
// @Description  Confirms the user exists and returns the customer id bound to it.
// @Tags         Identity
// @Accept       json
// @Produce      json
// @Param        request  body      api.CustomerIDRequest   true  "User id"
// @Success      200      {object}  api.CustomerIDResponse
// @Failure      400      {object}  api.ErrorResponse  "Invalid user ID"
// @Router       /get_customer_id [post]
func (h *Handler) CustomerIDHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.CustomerIDRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	customerID, err := h.services.Identity.ResolveCustomerID(r.Context(), req.UserID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.CustomerIDResponse{CustomerID: customerID})
}

// UploadHandler godoc
// @Summary      Upload a file
// @Description  Forwards a multipart file to the ingestion backend under the customer's scope.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        customer_id  formData  string  true  "Customer id"
// @Param        file         formData  file    true  "File to ingest"
// @Success      200  {object}  api.UploadResponse
// @Failure      400  {object}  api.ErrorResponse  "Missing customer id or file, or file too large"
// @Failure      500  {object}  api.ErrorResponse  "Ingestion backend rejected the upload"
// @Router       /upload [post]
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadSize)
	parseErr := r.ParseMultipartForm(config.MaxUploadSize)
	if r.MultipartForm != nil {
		defer func() {
			_ = r.MultipartForm.RemoveAll()
		}()
	}

	customerID := r.FormValue("customer_id")
	if customerID == "" {
		WriteErrorResponse(w, http.StatusBadRequest, commonModels.MsgCustomerIDRequired)
		return
	}
	if parseErr != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(parseErr, &tooLarge) {
			WriteErrorResponse(w, http.StatusBadRequest, "File too large")
			return
		}
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File is required")
		return
	}
	defer fileReader.Close()

	receipt, err := h.services.Gateway.Upload(r.Context(), customerID, ingestion.FileUpload{
		Name:        fileMetadata.Filename,
		ContentType: fileMetadata.Header.Get("Content-Type"),
		Content:     fileReader,
	})
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(receipt))
}

// OAuthURLHandler godoc
// @Summary      Start a provider connection
// @Description  Returns the OAuth URL that connects a new account of the given service.
// @Tags         Connections
// @Accept       json
// @Produce      json
// @Param        request  body      api.ServiceRequest  true  "Service and customer id"
// @Success      200      {object}  api.OAuthURLResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing customer id or invalid service"
// @Failure      502      {object}  api.ErrorResponse  "Ingestion backend error"
// @Router       /get_oauth_url [post]
func (h *Handler) OAuthURLHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	url, err := h.services.Registry.GetOAuthURL(r.Context(), req.Service, req.CustomerID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.OAuthURLResponse{OAuthURL: url})
}

// ListDataSourcesHandler godoc
// @Summary      List connected data sources
// @Tags         Connections
// @Accept       json
// @Produce      json
// @Param        request  body      api.CustomerRequest  true  "Customer id"
// @Success      200      {object}  api.DataSourcesResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing customer id"
// @Failure      502      {object}  api.ErrorResponse  "Ingestion backend error"
// @Router       /list_user_data_sources [post]
func (h *Handler) ListDataSourcesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	sources, err := h.services.DataSources.ListDataSources(r.Context(), req.CustomerID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDataSourcesResponse(sources))
}

// ListFilesHandler godoc
// @Summary      List provider files
// @Description  Lists the items visible through the customer's most recent connection of the service (name only).
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        request  body      api.ServiceRequest  true  "Service and customer id"
// @Success      200      {object}  api.FilesResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing customer id or invalid service"
// @Failure      404      {object}  api.ErrorResponse  "No connected data source"
// @Failure      502      {object}  api.ErrorResponse  "Ingestion backend error"
// @Router       /list_files [post]
func (h *Handler) ListFilesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	files, err := h.services.DataSources.ListFiles(r.Context(), req.Service, req.CustomerID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToFilesResponse(files))
}

// ListUploadedFilesHandler godoc
// @Summary      List ingested files
// @Description  Lists the files the ingestion backend holds for the customer's most recent connection of the service.
// @Tags         Files
// @Accept       json
// @Produce      json
// @Param        request  body      api.ServiceRequest  true  "Service and customer id"
// @Success      200      {object}  api.UploadedFilesResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing customer id or invalid service"
// @Failure      404      {object}  api.ErrorResponse  "No connected data source"
// @Failure      502      {object}  api.ErrorResponse  "Ingestion backend error"
// @Router       /list_uploaded_files [post]
func (h *Handler) ListUploadedFilesHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	files, err := h.services.DataSources.ListUploadedFiles(r.Context(), req.Service, req.CustomerID)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToUploadedFilesResponse(files))
}

// SearchHandler godoc
// @Summary      Search documents
// @Description  Semantic search over the given files of the customer. Returns the top two matches.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      api.SearchRequest  true  "Query, file ids and customer id"
// @Success      200      {object}  api.SearchResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing customer id, query or file ids"
// @Failure      502      {object}  api.ErrorResponse  "Ingestion backend error"
// @Router       /search_documents [post]
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	var req api.SearchRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	results, err := h.services.Search.Search(r.Context(), req.CustomerID, req.Query, req.FileIDs)
	if err != nil {
		h.writeAppError(w, r, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToSearchResponse(results))
}
