package gateway

import (
	"context"

	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

// Service forwards user uploads to the ingestion backend under the customer's scope.
type Service interface {
	Upload(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error)
}

type service struct {
	backend ingestion.Backend
	logger  *logger_i.Logger
}

func NewService(backend ingestion.Backend) Service {
	return &service{
		backend: backend,
		logger:  logger_i.NewLogger("IngestionGateway"),
	}
}

func (s *service) Upload(ctx context.Context, customerID string, file ingestion.FileUpload) (commonModels.UploadReceipt, error) {
	log := s.logger.ForContext(ctx)
	if err := commonModels.RequireCustomerID(customerID); err != nil {
		return nil, err
	}
	if file.Content == nil || file.Name == "" {
		return nil, commonModels.Validation("File is required")
	}

	receipt, err := s.backend.UploadFile(ctx, customerID, file)
	if err != nil {
		log.Error("upload failed", "file", file.Name, "error", err)
		return nil, commonModels.Upload(commonModels.MessageOf(err), err)
	}
	log.Info("file uploaded", "file", file.Name)
	return receipt, nil
}
