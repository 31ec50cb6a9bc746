// @title           DocBridge API
// @version         1.0
// @description     Sign in, connect document providers, upload files and search ingested documents for a customer.
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3200
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/akolanti/DocBridgeAPI/internal/adapter/utils"
	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/customHttpClient"
	"github.com/akolanti/DocBridgeAPI/internal/data/store"
	"github.com/akolanti/DocBridgeAPI/internal/datasource"
	"github.com/akolanti/DocBridgeAPI/internal/gateway"
	"github.com/akolanti/DocBridgeAPI/internal/handlers"
	"github.com/akolanti/DocBridgeAPI/internal/identity"
	"github.com/akolanti/DocBridgeAPI/internal/identity/supabase"
	"github.com/akolanti/DocBridgeAPI/internal/ingestion/carbon"
	"github.com/akolanti/DocBridgeAPI/internal/mcpServer"
	"github.com/akolanti/DocBridgeAPI/internal/middleware"
	"github.com/akolanti/DocBridgeAPI/internal/registry"
	"github.com/akolanti/DocBridgeAPI/internal/search"
	"github.com/akolanti/DocBridgeAPI/internal/server"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
	"golang.org/x/time/rate"
)

var listenAddr string

func main() {
	settings, err := config.Load()
	logger_i.Init(settings.IsProd())
	var logger = logger_i.NewLogger("main")
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	//config
	flag.StringVar(&listenAddr, "listen-addr", settings.ListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//external backends share one pooled transport
	httpClient := customHttpClient.NewClient(settings.BackendTimeout)
	identityBackend := supabase.NewClient(settings.SupabaseURL, settings.SupabaseKey, settings.SupabaseServiceKey, httpClient)
	ingestionBackend := carbon.NewClient(settings.CarbonBaseURL, settings.CarbonAPIKey, httpClient)

	providerRegistry := registry.NewService(ingestionBackend)
	dataSources := datasource.NewService(ingestionBackend, providerRegistry)
	searchService := search.NewService(ingestionBackend)

	h := handlers.NewHandler(handlers.Services{
		Identity:    identity.NewResolver(identityBackend),
		Registry:    providerRegistry,
		DataSources: dataSources,
		Gateway:     gateway.NewService(ingestionBackend),
		Search:      searchService,
	})

	//rate limiter: redis when configured and reachable, memory otherwise
	var limiter middleware.RateStore = middleware.NewIPRateLimiter(rate.Limit(settings.RateLimitPerSecond), settings.RateLimitBurst)
	if settings.RedisAddr != "" {
		if redisLimiter := store.GetRedisRateStore(serviceContext, settings.RedisAddr, settings.RateLimitBurst, config.RateLimitWindow); redisLimiter != nil {
			limiter = redisLimiter
		} else {
			logger.Error("Redis rate store is offline, using in-memory limiter")
		}
	}

	r := utils.GetRouter()
	server.Register(r.Router, server.Routes{
		Handler: h,
		Chain:   middleware.NewChain(settings, limiter),
		MCP:     mcpServer.NewServer(providerRegistry, dataSources, searchService).Handler(),
	})

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr, r.Router)

	<-stopExecution
	logger.Info("Server stopped")
}
