package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/happyfaces/facepaint/docs"
	"github.com/happyfaces/facepaint/internal/service/catalog"
	"github.com/happyfaces/facepaint/internal/service/submission"
)

// RouterConfig selects which route groups are mounted. Catalog and Listings
// are nil in the edge deployment.
type RouterConfig struct {
	Submissions submission.Handler
	Listings    SubmissionLister
	Catalog     catalog.CatalogUseCase
	Logger      *slog.Logger
	Swagger     bool
}

func NewRouter(rc RouterConfig) *gin.Engine {
	logger := rc.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	group := r.Group("/api")
	NewSubmissionHandler(rc.Submissions, rc.Listings, logger).Register(group)
	if rc.Catalog != nil {
		NewCatalogHandler(rc.Catalog, logger).Register(group)
	}

	if rc.Swagger {
		docs.Register(r)
	}
	return r
}
