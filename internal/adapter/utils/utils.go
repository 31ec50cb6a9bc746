package utils

import (
	"net/http"
	"sync"

	_ "github.com/akolanti/DocBridgeAPI/cmd/api/docs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/http-swagger"
)

var once sync.Once
var router *chi.Mux

func GetNewUUID() string {
	return uuid.New().String()
}

type RouterClient struct {
	Router *chi.Mux
}

// GetRouter returns the process wide router.
func GetRouter() RouterClient {
	once.Do(func() {
		router = NewRouter()
	})
	return RouterClient{Router: router}
}

// NewRouter builds a router with cors, swagger and the prometheus endpoint registered.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	//the front end is served from another origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-Id", "Mcp-Session-Id"},
		ExposedHeaders:   []string{"X-Trace-Id", "Mcp-Session-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	InitSwagger(r)
	//register prometheus
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func InitSwagger(r *chi.Mux) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
