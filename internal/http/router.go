package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookery/internal/entities"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(cfg.Logger))
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)

	if cfg.Authors != nil {
		NewResourceController[entities.Author, entities.AuthorPayload, entities.AuthorUpdatePayload](cfg.Authors).
			RegisterRoutes(router.Group("/author"))
	}
	if cfg.Books != nil {
		NewResourceController[entities.Book, entities.BookPayload, entities.BookUpdatePayload](cfg.Books).
			RegisterRoutes(router.Group("/book"))
	}
	if cfg.Costumers != nil {
		NewResourceController[entities.Costumer, entities.CostumerPayload, entities.CostumerUpdatePayload](cfg.Costumers).
			RegisterRoutes(router.Group("/costumer"))
	}
	if cfg.Rentals != nil {
		NewRentalsController(cfg.Rentals).RegisterRoutes(router.Group("/rent"))
	}

	return router
}
