package commonModels

// DataSource is one connected provider account, as relayed from the ingestion backend.
type DataSource struct {
	ID         ID         `json:"id"`
	ExternalID string     `json:"external_id"`
	Type       string     `json:"type"`
	SyncStatus SyncStatus `json:"sync_status"`
	CreatedAt  Timestamp  `json:"created_at"`
	UpdatedAt  Timestamp  `json:"updated_at"`
}

// SyncStatus is provider defined; the known values are listed for readability only.
type SyncStatus string

const (
	SyncStatusReady        SyncStatus = "READY"
	SyncStatusSyncing      SyncStatus = "SYNCING"
	SyncStatusSyncError    SyncStatus = "SYNC_ERROR"
	SyncStatusPending      SyncStatus = "PENDING"
	SyncStatusDisconnected SyncStatus = "DISCONNECTED"
)

// ProviderFile is an item visible through a connection. The provider listing only exposes a name.
type ProviderFile struct {
	Name string `json:"name"`
}

// UploadedFile is a file the ingestion backend holds for the customer.
// Not interchangeable with ProviderFile.
type UploadedFile struct {
	ID                         ID     `json:"id"`
	OrganizationSuppliedUserID string `json:"organization_supplied_user_id"`
	DataSourceID               ID     `json:"organization_user_data_source_id"`
	ExternalURL                string `json:"external_url"`
}

type SearchResult struct {
	Source       any            `json:"source"`
	SourceURL    string         `json:"source_url"`
	SourceType   string         `json:"source_type"`
	PresignedURL string         `json:"presigned_url"`
	Tags         map[string]any `json:"tags"`
}

// UploadReceipt is the ingestion backend's upload response, relayed as-is.
type UploadReceipt map[string]any

// Customer is the identity resolved at sign in. CustomerID is the identity backend user id.
type Customer struct {
	UserID     string `json:"user_id"`
	CustomerID string `json:"customer_id"`
}

func NewCustomer(userID string) Customer {
	return Customer{UserID: userID, CustomerID: userID}
}
