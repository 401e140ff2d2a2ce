package routes

import (
	"github.com/gin-gonic/gin"

	"tripwise/internal/interfaces/http/handlers"
	"tripwise/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler    *handlers.PlanHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlanRoutes configures plan routes. Every endpoint is a POST command
// carrying its parameters in the body, and all of them require a token.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/api/plan")
	plans.Use(cfg.AuthMiddleware.RequireAuth())
	{
		plans.POST("/query", cfg.PlanHandler.QueryPlans)
		plans.POST("/details", cfg.PlanHandler.PlanDetails)
		plans.POST("/create", cfg.PlanHandler.CreatePlan)
		plans.POST("/update", cfg.PlanHandler.UpdatePlan)
		plans.POST("/update-basic", cfg.PlanHandler.UpdatePlanBasic)
		plans.POST("/delete", cfg.PlanHandler.DeletePlan)
		plans.POST("/add-to-group", cfg.PlanHandler.AddPlanToGroup)
		plans.POST("/check-group-plan", cfg.PlanHandler.CheckGroupPlan)
		plans.POST("/day-places", cfg.PlanHandler.GetDayPlaces)
		plans.POST("/create-day-place", cfg.PlanHandler.CreateDayPlace)
		plans.POST("/schedules", cfg.PlanHandler.GetSchedules)
		plans.POST("/create-schedule", cfg.PlanHandler.CreateSchedule)
	}
}
