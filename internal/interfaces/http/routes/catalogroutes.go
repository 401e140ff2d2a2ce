package routes

import (
	"github.com/gin-gonic/gin"

	"tripwise/internal/domain/catalog"
	"tripwise/internal/interfaces/http/handlers"
	"tripwise/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for the lookup routes.
type CatalogRouteConfig struct {
	ProvinceHandler *handlers.LookupHandler[catalog.Province, *catalog.Province]
	CityHandler     *handlers.CityHandler
	HashtagHandler  *handlers.HashtagHandler
	ActivityHandler *handlers.LookupHandler[catalog.Activity, *catalog.Activity]
	CategoryHandler *handlers.LookupHandler[catalog.Category, *catalog.Category]
	ReactionHandler *handlers.LookupHandler[catalog.Reaction, *catalog.Reaction]
	AuthMiddleware  *middleware.AuthMiddleware
}

func registerLookup[T any, PT catalog.Record[T]](group *gin.RouterGroup, path string, h *handlers.LookupHandler[T, PT]) {
	g := group.Group(path)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// SetupCatalogRoutes configures the REST routes for the lookup entities.
// Cities and hashtags override the plain create with their own flows.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	catalogGroup := engine.Group("/api/catalog")
	catalogGroup.Use(cfg.AuthMiddleware.RequireAuth())
	{
		registerLookup(catalogGroup, "/provinces", cfg.ProvinceHandler)
		registerLookup(catalogGroup, "/activities", cfg.ActivityHandler)
		registerLookup(catalogGroup, "/categories", cfg.CategoryHandler)
		registerLookup(catalogGroup, "/reactions", cfg.ReactionHandler)

		cities := catalogGroup.Group("/cities")
		cities.POST("", cfg.CityHandler.Create)
		cities.GET("", cfg.CityHandler.List)
		cities.GET("/:id", cfg.CityHandler.Get)
		cities.PUT("/:id", cfg.CityHandler.Update)
		cities.DELETE("/:id", cfg.CityHandler.Delete)

		hashtags := catalogGroup.Group("/hashtags")
		hashtags.POST("", cfg.HashtagHandler.Create)
		hashtags.GET("", cfg.HashtagHandler.List)
		hashtags.GET("/:id", cfg.HashtagHandler.Get)
		hashtags.PUT("/:id", cfg.HashtagHandler.Update)
		hashtags.DELETE("/:id", cfg.HashtagHandler.Delete)
	}
}
