package devserver

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// Server is a local stub of the travel backend's published HTTP contract,
// for developing and testing the booking client without the real service.
type Server struct {
	store      Store
	tokens     *TokenService
	logger     *logrus.Logger
	bcryptCost int
}

// New creates a dev server over the given store.
func New(store Store, tokens *TokenService, logger *logrus.Logger, bcryptCost int) *Server {
	return &Server{
		store:      store,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Router builds the gin engine with all API routes mounted under /api.
func (s *Server) Router(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/test-db", s.handleTestDB)

		api.GET("/tours", s.handleListTours)
		api.GET("/tours/:id", s.handleGetTour)
		api.GET("/seed-sri-lanka", s.handleSeed)

		api.POST("/bookings", s.handleCreateBooking)

		auth := api.Group("/auth")
		auth.Use(s.clientAuditMiddleware())
		{
			auth.POST("/register", s.handleRegister)
			auth.POST("/login", s.handleLogin)
		}
	}

	return router
}

// clientAuditMiddleware logs which browser and platform hit the auth
// endpoints, mirroring what the session audit records in production.
func (s *Server) clientAuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ua := user_agent.New(c.Request.UserAgent())
		browser, version := ua.Browser()

		s.logger.WithFields(logrus.Fields{
			"path":    c.Request.URL.Path,
			"ip":      c.ClientIP(),
			"browser": strings.TrimSpace(browser + " " + version),
			"os":      ua.OS(),
			"mobile":  ua.Mobile(),
			"bot":     ua.Bot(),
		}).Info("Auth endpoint request")

		c.Next()
	}
}

// ok writes the uniform success envelope.
func ok(c *gin.Context, status int, message string, data interface{}, count int) {
	body := gin.H{"status": "success"}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	if count > 0 {
		body["count"] = count
	}
	c.JSON(status, body)
}

// fail writes the uniform error envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"status": "error", "message": message})
}

func (s *Server) handleHealth(c *gin.Context) {
	ok(c, 200, "", gin.H{"status": "healthy", "timestamp": time.Now().UTC().Format(time.RFC3339)}, 0)
}

func (s *Server) handleTestDB(c *gin.Context) {
	if err := s.store.Ping(); err != nil {
		fail(c, 500, "Database connection failed: "+err.Error())
		return
	}
	ok(c, 200, "Database connection successful", nil, 0)
}
