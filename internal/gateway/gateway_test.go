package gateway

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion/ingestion_test"
)

func TestUpload(t *testing.T) {
	var gotCustomer, gotBody string
	backend := &ingestion_test.MockBackend{
		OnUploadFile: func(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error) {
			gotCustomer = customerID
			b, _ := io.ReadAll(file.Content)
			gotBody = string(b)
			return commonModels.UploadReceipt{"id": float64(3), "name": file.Name}, nil
		},
	}

	receipt, err := NewService(backend).Upload(context.Background(), "c1", ingestion.FileUpload{Name: "a.txt", Content: strings.NewReader("hi")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCustomer != "c1" || gotBody != "hi" || receipt["name"] != "a.txt" {
		t.Errorf("upload not forwarded: customer=%s body=%s receipt=%v", gotCustomer, gotBody, receipt)
	}
}

func TestUpload_Validation(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		file       ingestion.FileUpload
		wantMsg    string
	}{
		{"missing customer", "", ingestion.FileUpload{Name: "a.txt", Content: strings.NewReader("x")}, "Customer ID is required"},
		{"missing file", "c1", ingestion.FileUpload{}, "File is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &ingestion_test.MockBackend{}
			_, err := NewService(backend).Upload(context.Background(), tt.customerID, tt.file)
			if commonModels.KindOf(err) != commonModels.KindValidation || commonModels.MessageOf(err) != tt.wantMsg {
				t.Errorf("got %v", err)
			}
			if backend.Calls != 0 {
				t.Errorf("expected no backend calls, got %d", backend.Calls)
			}
		})
	}
}

func TestUpload_BackendFailureBecomesUploadError(t *testing.T) {
	backend := &ingestion_test.MockBackend{
		OnUploadFile: func(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error) {
			return nil, commonModels.Upstream("File type not supported", errors.New("status 400"))
		},
	}

	_, err := NewService(backend).Upload(context.Background(), "c1", ingestion.FileUpload{Name: "a.exe", Content: strings.NewReader("x")})
	if commonModels.KindOf(err) != commonModels.KindUpload {
		t.Fatalf("kind got %s", commonModels.KindOf(err))
	}
	if commonModels.MessageOf(err) != "File type not supported" {
		t.Errorf("backend message must be kept, got %q", commonModels.MessageOf(err))
	}
}
