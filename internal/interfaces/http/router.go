package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUC "tripwise/internal/application/catalog/usecases"
	planUC "tripwise/internal/application/plan/usecases"
	"tripwise/internal/domain/catalog"
	"tripwise/internal/infrastructure/auth"
	"tripwise/internal/infrastructure/config"
	"tripwise/internal/infrastructure/repository"
	"tripwise/internal/interfaces/http/handlers"
	"tripwise/internal/interfaces/http/middleware"
	"tripwise/internal/interfaces/http/routes"
	"tripwise/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	cfg            *config.Config
	logger         logger.Interface
	planHandler    *handlers.PlanHandler
	catalogRoutes  *routes.CatalogRouteConfig
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	planRepo := repository.NewPlanRepository(db)

	createPlanUC := planUC.NewCreatePlanUseCase(planRepo, log)
	updatePlanUC := planUC.NewUpdatePlanUseCase(planRepo, log)
	updatePlanBasicUC := planUC.NewUpdatePlanBasicUseCase(planRepo, log)
	deletePlanUC := planUC.NewDeletePlanUseCase(planRepo, log)
	listPlansUC := planUC.NewListPlansUseCase(planRepo, log)
	getPlanDetailsUC := planUC.NewGetPlanDetailsUseCase(planRepo, log)
	addPlanToGroupUC := planUC.NewAddPlanToGroupUseCase(planRepo, log)
	checkGroupPlanUC := planUC.NewCheckGroupPlanUseCase(planRepo, log)
	getDayPlacesUC := planUC.NewGetDayPlacesUseCase(planRepo, log)
	getSchedulesUC := planUC.NewGetSchedulesUseCase(planRepo, log)
	createDayPlaceUC := planUC.NewCreateDayPlaceUseCase(planRepo, log)
	createScheduleUC := planUC.NewCreateScheduleUseCase(planRepo, log)

	planHandler := handlers.NewPlanHandler(
		createPlanUC, updatePlanUC, updatePlanBasicUC, deletePlanUC,
		listPlansUC, getPlanDetailsUC, addPlanToGroupUC, checkGroupPlanUC,
		getDayPlacesUC, getSchedulesUC, createDayPlaceUC, createScheduleUC,
	)

	provinceRepo := repository.NewLookupRepository[catalog.Province, *catalog.Province](db)
	cityRepo := repository.NewLookupRepository[catalog.City, *catalog.City](db)
	hashtagRepo := repository.NewHashtagRepository(db)
	activityRepo := repository.NewLookupRepository[catalog.Activity, *catalog.Activity](db)
	categoryRepo := repository.NewLookupRepository[catalog.Category, *catalog.Category](db)
	reactionRepo := repository.NewLookupRepository[catalog.Reaction, *catalog.Reaction](db)

	provinceUC := catalogUC.NewLookupUseCases[catalog.Province, *catalog.Province](provinceRepo, log)
	cityLookupUC := catalogUC.NewLookupUseCases[catalog.City, *catalog.City](cityRepo, log)
	hashtagLookupUC := catalogUC.NewLookupUseCases[catalog.Hashtag, *catalog.Hashtag](hashtagRepo, log)
	activityUC := catalogUC.NewLookupUseCases[catalog.Activity, *catalog.Activity](activityRepo, log)
	categoryUC := catalogUC.NewLookupUseCases[catalog.Category, *catalog.Category](categoryRepo, log)
	reactionUC := catalogUC.NewLookupUseCases[catalog.Reaction, *catalog.Reaction](reactionRepo, log)
	createCityUC := catalogUC.NewCreateCityUseCase(cityRepo, provinceRepo, log)
	createHashtagUC := catalogUC.NewCreateHashtagUseCase(hashtagRepo, log)

	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	catalogRoutes := &routes.CatalogRouteConfig{
		ProvinceHandler: handlers.NewLookupHandler(provinceUC),
		CityHandler:     handlers.NewCityHandler(handlers.NewLookupHandler(cityLookupUC), createCityUC),
		HashtagHandler:  handlers.NewHashtagHandler(handlers.NewLookupHandler(hashtagLookupUC), createHashtagUC),
		ActivityHandler: handlers.NewLookupHandler(activityUC),
		CategoryHandler: handlers.NewLookupHandler(categoryUC),
		ReactionHandler: handlers.NewLookupHandler(reactionUC),
		AuthMiddleware:  authMiddleware,
	}

	return &Router{
		engine:         engine,
		db:             db,
		cfg:            cfg,
		logger:         log,
		planHandler:    planHandler,
		catalogRoutes:  catalogRoutes,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}

	r.engine.GET("/health", r.healthCheck)

	routes.SetupPlanRoutes(r.engine, &routes.PlanRouteConfig{
		PlanHandler:    r.planHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCatalogRoutes(r.engine, r.catalogRoutes)
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
