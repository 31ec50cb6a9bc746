package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/handlers"
	"github.com/akolanti/DocBridgeAPI/internal/middleware"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
	"github.com/go-chi/chi/v5"
)

var (
	server     *http.Server
	_logger    *logger_i.Logger
	loggerOnce sync.Once
)

func serverLogger() *logger_i.Logger {
	loggerOnce.Do(func() {
		_logger = logger_i.NewLogger("Server")
	})
	return _logger
}

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

type Routes struct {
	Handler *handlers.Handler
	Chain   *middleware.Chain
	MCP     http.Handler
}

// Register mounts every endpoint on r.
func Register(r chi.Router, routes Routes) {
	h, chain := routes.Handler, routes.Chain

	r.Get("/", chain.Public(h.GetHandler))
	r.Get("/health", chain.Public(h.HealthHandler))
	r.Get("/services", chain.Public(h.ServicesHandler))

	r.Post("/login", chain.Wrap(h.LoginHandler))
	r.Post("/get_customer_id", chain.Wrap(h.CustomerIDHandler))
	r.Post("/upload", chain.Wrap(h.UploadHandler))
	r.Post("/get_oauth_url", chain.Wrap(h.OAuthURLHandler))
	r.Post("/list_user_data_sources", chain.Wrap(h.ListDataSourcesHandler))
	r.Post("/list_files", chain.Wrap(h.ListFilesHandler))
	r.Post("/list_uploaded_files", chain.Wrap(h.ListUploadedFilesHandler))
	r.Post("/search_documents", chain.Wrap(h.SearchHandler))

	if routes.MCP != nil {
		r.Handle("/mcp", chain.Wrap(routes.MCP.ServeHTTP))
	}
}

func CreateServer(listenAddr string, handler http.Handler) {
	log := serverLogger()

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	log.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server crashed", "error", err.Error(), "addr", listenAddr)
		close(crashed)
	}
}

// crashed unblocks ShutDownHandler when the listener fails to start.
var crashed = make(chan struct{})

func ShutDownHandler(shutdownParams ShutdownParams) {
	select {
	case state := <-shutdownParams.GracefulShutdown:
		println("\nServer is shutting down", state.String())
	case <-crashed:
	}

	log := serverLogger()
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		if server != nil {
			server.SetKeepAlivesEnabled(false)
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Could not shutdown gracefully", "error", err)
			}
		}
		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		log.Info("Gracefully shut down")
	case <-ctx.Done():
		log.Info("Force Shut down")
		os.Exit(1)
	}
}
