package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripwise/internal/application/plan/usecases"
	"tripwise/internal/interfaces/http/middleware"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC      *usecases.CreatePlanUseCase
	updatePlanUC      *usecases.UpdatePlanUseCase
	updatePlanBasicUC *usecases.UpdatePlanBasicUseCase
	deletePlanUC      *usecases.DeletePlanUseCase
	listPlansUC       *usecases.ListPlansUseCase
	getPlanDetailsUC  *usecases.GetPlanDetailsUseCase
	addPlanToGroupUC  *usecases.AddPlanToGroupUseCase
	checkGroupPlanUC  *usecases.CheckGroupPlanUseCase
	getDayPlacesUC    *usecases.GetDayPlacesUseCase
	getSchedulesUC    *usecases.GetSchedulesUseCase
	createDayPlaceUC  *usecases.CreateDayPlaceUseCase
	createScheduleUC  *usecases.CreateScheduleUseCase
	logger            logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	updatePlanBasicUC *usecases.UpdatePlanBasicUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	getPlanDetailsUC *usecases.GetPlanDetailsUseCase,
	addPlanToGroupUC *usecases.AddPlanToGroupUseCase,
	checkGroupPlanUC *usecases.CheckGroupPlanUseCase,
	getDayPlacesUC *usecases.GetDayPlacesUseCase,
	getSchedulesUC *usecases.GetSchedulesUseCase,
	createDayPlaceUC *usecases.CreateDayPlaceUseCase,
	createScheduleUC *usecases.CreateScheduleUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC:      createPlanUC,
		updatePlanUC:      updatePlanUC,
		updatePlanBasicUC: updatePlanBasicUC,
		deletePlanUC:      deletePlanUC,
		listPlansUC:       listPlansUC,
		getPlanDetailsUC:  getPlanDetailsUC,
		addPlanToGroupUC:  addPlanToGroupUC,
		checkGroupPlanUC:  checkGroupPlanUC,
		getDayPlacesUC:    getDayPlacesUC,
		getSchedulesUC:    getSchedulesUC,
		createDayPlaceUC:  createDayPlaceUC,
		createScheduleUC:  createScheduleUC,
		logger:            logger.NewLogger(),
	}
}

type QueryPlansRequest struct {
	Page   int      `json:"page"`
	Limit  int      `json:"limit"`
	Status *string  `json:"status" binding:"omitempty,oneof=public private"`
	Search string   `json:"search"`
	Tags   []string `json:"tags"`
}

type CreatePlanRequest struct {
	Name         string      `json:"name" binding:"required,max=255"`
	Description  *string     `json:"description"`
	ThumbnailURL *string     `json:"thumbnail_url"`
	Location     interface{} `json:"location"`
	JSONData     interface{} `json:"json_data"`
	Status       string      `json:"status" binding:"omitempty,oneof=public private"`
	Days         int         `json:"days" binding:"omitempty,min=0,max=365"`
}

type DayPlaceRequest struct {
	ID       *uint       `json:"plan_day_place_id"`
	Ngay     string      `json:"ngay" binding:"required"`
	Location interface{} `json:"location" binding:"required"`
	JSONData interface{} `json:"json_data"`
}

type ScheduleRequest struct {
	ID          *uint       `json:"plan_schedule_id"`
	DayPlaceID  uint        `json:"plan_day_place_id" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	Description *string     `json:"description"`
	StartTime   *time.Time  `json:"start_time"`
	EndTime     *time.Time  `json:"end_time"`
	Location    interface{} `json:"location" binding:"required"`
	JSONData    interface{} `json:"json_data"`
	ActivityID  *uint       `json:"activity_id"`
}

type UpdatePlanRequest struct {
	PlanID       uint              `json:"plan_id" binding:"required"`
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	ThumbnailURL *string           `json:"thumbnail_url"`
	Status       *string           `json:"status" binding:"omitempty,oneof=public private"`
	Location     interface{}       `json:"location"`
	DayPlaces    []DayPlaceRequest `json:"day_places"`
	Schedules    []ScheduleRequest `json:"schedules"`
}

type UpdatePlanBasicRequest struct {
	PlanID       uint        `json:"plan_id" binding:"required"`
	Name         *string     `json:"name"`
	Description  *string     `json:"description"`
	ThumbnailURL *string     `json:"thumbnail_url"`
	Status       *string     `json:"status" binding:"omitempty,oneof=public private"`
	Location     interface{} `json:"location"`
}

type DeletePlanRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

type PlanDetailsRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

type AddPlanToGroupRequest struct {
	PlanID  uint `json:"plan_id" binding:"required"`
	GroupID uint `json:"group_id" binding:"required"`
}

type CheckGroupPlanRequest struct {
	GroupID uint `json:"group_id" binding:"required"`
}

type GetDayPlacesRequest struct {
	PlanID uint    `json:"plan_id" binding:"required"`
	Ngay   *string `json:"ngay"`
}

type CreateDayPlaceRequest struct {
	PlanID   uint        `json:"plan_id" binding:"required"`
	Ngay     string      `json:"ngay" binding:"required"`
	Location interface{} `json:"location"`
	JSONData interface{} `json:"json_data"`
}

type CreateScheduleRequest struct {
	DayPlaceID  uint        `json:"plan_day_place_id" binding:"required"`
	Name        string      `json:"name" binding:"required,max=255"`
	Description *string     `json:"description"`
	StartTime   *time.Time  `json:"start_time"`
	EndTime     *time.Time  `json:"end_time"`
	Location    interface{} `json:"location"`
	JSONData    interface{} `json:"json_data"`
	ActivityID  *uint       `json:"activity_id"`
}

type GetSchedulesRequest struct {
	DayPlaceID uint `json:"plan_day_place_id" binding:"required"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
}

func (h *PlanHandler) QueryPlans(c *gin.Context) {
	var req QueryPlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for query plans", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), usecases.ListPlansCommand{
		UserID: middleware.UserID(c),
		Page:   req.Page,
		Limit:  req.Limit,
		Status: req.Status,
		Search: req.Search,
		Tags:   req.Tags,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, result.Page, result.Limit)
}

func (h *PlanHandler) PlanDetails(c *gin.Context) {
	var req PlanDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanDetailsUC.Execute(c.Request.Context(), usecases.GetPlanDetailsCommand{
		PlanID: req.PlanID,
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan details retrieved successfully", result)
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Location:     req.Location,
		JSONData:     req.JSONData,
		Status:       req.Status,
		Days:         req.Days,
		UserID:       middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	dayPlaces := make([]usecases.DayPlaceInput, 0, len(req.DayPlaces))
	for _, dp := range req.DayPlaces {
		dayPlaces = append(dayPlaces, usecases.DayPlaceInput{
			ID:       dp.ID,
			Ngay:     dp.Ngay,
			Location: dp.Location,
			JSONData: dp.JSONData,
		})
	}

	schedules := make([]usecases.ScheduleInput, 0, len(req.Schedules))
	for _, s := range req.Schedules {
		schedules = append(schedules, usecases.ScheduleInput{
			ID:          s.ID,
			DayPlaceID:  s.DayPlaceID,
			Name:        s.Name,
			Description: s.Description,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			Location:    s.Location,
			JSONData:    s.JSONData,
			ActivityID:  s.ActivityID,
		})
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:       req.PlanID,
		UserID:       middleware.UserID(c),
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Status:       req.Status,
		Location:     req.Location,
		DayPlaces:    dayPlaces,
		Schedules:    schedules,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) UpdatePlanBasic(c *gin.Context) {
	var req UpdatePlanBasicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan basic", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlanBasicUC.Execute(c.Request.Context(), usecases.UpdatePlanBasicCommand{
		PlanID:       req.PlanID,
		UserID:       middleware.UserID(c),
		Name:         req.Name,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		Status:       req.Status,
		Location:     req.Location,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	var req DeletePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deletePlanUC.Execute(c.Request.Context(), usecases.DeletePlanCommand{
		PlanID: req.PlanID,
		UserID: middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", result)
}

func (h *PlanHandler) AddPlanToGroup(c *gin.Context) {
	var req AddPlanToGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addPlanToGroupUC.Execute(c.Request.Context(), usecases.AddPlanToGroupCommand{
		PlanID:  req.PlanID,
		GroupID: req.GroupID,
		UserID:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Plan added to group successfully"
	if !result.Success {
		message = "Plan is already assigned to this group"
	}
	utils.SuccessResponse(c, http.StatusOK, message, gin.H{
		"success":    result.Success,
		"assignment": result.Assignment,
	})
}

func (h *PlanHandler) CheckGroupPlan(c *gin.Context) {
	var req CheckGroupPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkGroupPlanUC.Execute(c.Request.Context(), usecases.CheckGroupPlanCommand{
		GroupID: req.GroupID,
		UserID:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Group plan checked", gin.H{
		"has_plan": result.HasPlan,
		"plan":     result.Plan,
	})
}

func (h *PlanHandler) GetDayPlaces(c *gin.Context) {
	var req GetDayPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDayPlacesUC.Execute(c.Request.Context(), usecases.GetDayPlacesCommand{
		PlanID: req.PlanID,
		UserID: middleware.UserID(c),
		Ngay:   req.Ngay,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Day places retrieved successfully", result)
}

func (h *PlanHandler) GetSchedules(c *gin.Context) {
	var req GetSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSchedulesUC.Execute(c.Request.Context(), usecases.GetSchedulesCommand{
		DayPlaceID: req.DayPlaceID,
		UserID:     middleware.UserID(c),
		Page:       req.Page,
		Limit:      req.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Schedules, result.Total, result.Page, result.Limit)
}

func (h *PlanHandler) CreateDayPlace(c *gin.Context) {
	var req CreateDayPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create day place", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createDayPlaceUC.Execute(c.Request.Context(), usecases.CreateDayPlaceCommand{
		PlanID:   req.PlanID,
		UserID:   middleware.UserID(c),
		Ngay:     req.Ngay,
		Location: req.Location,
		JSONData: req.JSONData,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Day place created successfully")
}

func (h *PlanHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create schedule", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createScheduleUC.Execute(c.Request.Context(), usecases.CreateScheduleCommand{
		DayPlaceID:  req.DayPlaceID,
		UserID:      middleware.UserID(c),
		Name:        req.Name,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		JSONData:    req.JSONData,
		ActivityID:  req.ActivityID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Schedule created successfully")
}
