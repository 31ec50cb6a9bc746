// Package mcpServer exposes the document operations as MCP tools so agents
// can browse and search a customer's connected sources.
package mcpServer

import (
	"net/http"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/datasource"
	"github.com/akolanti/DocBridgeAPI/internal/registry"
	"github.com/akolanti/DocBridgeAPI/internal/search"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	registry    registry.Service
	dataSources datasource.Service
	search      search.Service
	server      *mcp.Server
	logger      *logger_i.Logger
}

func NewServer(reg registry.Service, dataSources datasource.Service, searchService search.Service) *Server {
	impl := &mcp.Implementation{
		Name:    config.MCPServerName,
		Version: config.MCPServerVersion,
	}
	s := &Server{
		registry:    reg,
		dataSources: dataSources,
		search:      searchService,
		server:      mcp.NewServer(impl, nil),
		logger:      logger_i.NewLogger("MCP"),
	}
	s.registerTools()
	return s
}

// Handler serves the streamable HTTP transport. Every session shares one server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}
