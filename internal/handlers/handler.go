package handlers

import (
	"github.com/akolanti/DocBridgeAPI/internal/datasource"
	"github.com/akolanti/DocBridgeAPI/internal/gateway"
	"github.com/akolanti/DocBridgeAPI/internal/identity"
	"github.com/akolanti/DocBridgeAPI/internal/registry"
	"github.com/akolanti/DocBridgeAPI/internal/search"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

// Services are the components the http layer dispatches to.
type Services struct {
	Identity    identity.Resolver
	Registry    registry.Service
	DataSources datasource.Service
	Gateway     gateway.Service
	Search      search.Service
}

type Handler struct {
	services Services
	logger   *logger_i.Logger
}

func NewHandler(services Services) *Handler {
	//rebind once logging is configured
	logRH = logger_i.NewLogger("ResponseWriter")
	h := &Handler{
		services: services,
		logger:   logger_i.NewLogger("RequestHandler"),
	}
	h.logger.Info("Starting request handler")
	return h
}
