package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/handler"
	"github.com/martijn/feedback/internal/api/middleware"
	"github.com/martijn/feedback/internal/core/service"
	"github.com/martijn/feedback/pkg/config"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	userService *service.UserService,
	feedbackService *service.FeedbackService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, authService, cfg.SessionCookie)
	userHandler := handler.NewUserHandler(userService, feedbackService, cfg.SessionCookie)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	authMiddleware := middleware.AuthMiddleware(authService, cfg.SessionCookie)
	optionalAuth := middleware.OptionalAuthMiddleware(authService, cfg.SessionCookie)

	// Auth routes. Register and login only need the optional gate so they can
	// redirect already-authenticated callers to their own profile.
	auth := router.Group("/auth")
	{
		auth.POST("/register", optionalAuth, authHandler.Register)
		auth.POST("/login", optionalAuth, authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// Profiles (owner-scoped)
	users := router.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/:username", userHandler.GetProfile)
		users.DELETE("/:username", userHandler.DeleteProfile)
	}

	// Feedback: reads are public, mutations require a session
	feedback := router.Group("/feedback")
	{
		feedback.GET("", feedbackHandler.ListFeedback)
		feedback.GET("/:id", feedbackHandler.GetFeedback)
		feedback.POST("", authMiddleware, feedbackHandler.CreateFeedback)
		feedback.PUT("/:id", authMiddleware, feedbackHandler.UpdateFeedback)
		feedback.DELETE("/:id", authMiddleware, feedbackHandler.DeleteFeedback)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
