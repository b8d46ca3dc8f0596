package httpserver

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modelscout/catalog-api/internal/config"
	"modelscout/catalog-api/internal/interfaces/httpserver/middlewares"
	"modelscout/catalog-api/internal/interfaces/httpserver/requests/catalogreq"
	"modelscout/catalog-api/internal/interfaces/httpserver/routes/v1/catalogroute"
)

type HTTPServer struct {
	router       *gin.Engine
	config       *config.Config
	catalogRoute *catalogroute.CatalogRoute
	routesOnce   sync.Once
}

func NewHTTPServer(
	cfg *config.Config,
	catalogRoute *catalogroute.CatalogRoute,
) *HTTPServer {
	catalogreq.RegisterValidations()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())

	return &HTTPServer{
		router:       router,
		config:       cfg,
		catalogRoute: catalogRoute,
	}
}

func (s *HTTPServer) setupRoutes() {
	s.routesOnce.Do(s.registerRoutes)
}

func (s *HTTPServer) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "catalog-api"})
	})

	s.router.GET("/readyz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ready", "service": "catalog-api"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	s.catalogRoute.RegisterRouter(v1)
}

func (s *HTTPServer) Run() error {
	s.setupRoutes()
	addr := fmt.Sprintf(":%d", s.config.HTTPPort)
	return s.router.Run(addr)
}

// Router exposes the configured engine for tests.
func (s *HTTPServer) Router() *gin.Engine {
	s.setupRoutes()
	return s.router
}
