package config

import (
	"log/slog"
	"time"
)

const (
	LOG_LEVEL_PROD  = slog.LevelInfo
	LOG_LEVEL_DEBUG = slog.LevelDebug
	TRACE_ID_KEY    = "traceId"
	TRACE_HEADER    = "X-Trace-Id"

	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10
	//redis backed limiter uses a fixed one second window
	RateLimitWindow = 1 * time.Second

	//serverTimeouts
	ReadTimeout            = 10 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3200"

	//multipart upload limit
	MaxUploadSize = 32 << 20 //32mb

	//outgoing http pool
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
	BackendTimeout      = 15 * time.Second

	//identity backend (supabase gotrue)
	SupabasePasswordGrantPath = "/auth/v1/token?grant_type=password"
	SupabaseAdminUserPath     = "/auth/v1/admin/users/"

	//ingestion backend (carbon)
	CarbonBaseURL          = "https://api.carbon.ai"
	CarbonUploadPath       = "/uploadfile"
	CarbonOAuthURLPath     = "/integrations/oauth_url"
	CarbonDataSourcesPath  = "/user_data_sources"
	CarbonItemsListPath    = "/integrations/items/list"
	CarbonUserFilesPath    = "/user_files_v2"
	CarbonEmbeddingsPath   = "/embeddings"
	CarbonCustomerIDHeader = "customer-id"

	//listing page sizes
	DataSourcePageSize   = 100
	ProviderItemPageSize = 250
	UploadedFilePageSize = 100
	OrderByCreatedAt     = "created_at"
	OrderDirDesc         = "desc"

	//search
	SearchTopK             = 2
	SearchMediaType        = "TEXT"
	EmbeddingGenerator     = "OPENAI"
	HybridSearchWeightA    = 0.7
	HybridSearchWeightB    = 0.2
	HybridSearchEnabled    = false
	GoogleDriveReadOnlyURL = "https://www.googleapis.com/auth/drive.readonly"

	//redis
	redisHost        = "127.0.0.1"
	redisPort        = "6379"
	DefaultRedisAddr = redisHost + ":" + redisPort
	RedisRateStore   = 0
	RedisDialTimeout = 2 * time.Second

	//mcp
	MCPServerName    = "docbridge"
	MCPServerVersion = "0.1.0"
)
