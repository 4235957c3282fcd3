package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booktracker/internal/config"
)

// RouterConfig carries all dependencies the router needs, keeping NewRouter
// testable without a full application bootstrap.
type RouterConfig struct {
	Store BookStore
	Env   string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	devMode := cfg.Env == config.EnvDevelopment

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		respondServerError(c, fmt.Errorf("panic: %v", recovered),
			"an unexpected server error occurred", devMode)
	}))

	// Anything unmatched, wrong method included, gets a 404 envelope naming
	// the request.
	router.HandleMethodNotAllowed = true
	unmatched := func(c *gin.Context) {
		respondNotFound(c, fmt.Sprintf("endpoint %s %s not found", c.Request.Method, c.Request.URL.Path))
	}
	router.NoRoute(unmatched)
	router.NoMethod(unmatched)

	booksController := NewBooksController(cfg.Store, devMode)
	health := NewHealthController(cfg.Env)

	router.GET("/health", health.Status)

	router.GET("/api/books", booksController.GetAllBooks)
	router.POST("/api/books", booksController.CreateBook)
	router.PATCH("/api/books/:id", booksController.UpdateBookStatus)
	router.PUT("/api/books/:id", booksController.UpdateBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)

	return router
}
