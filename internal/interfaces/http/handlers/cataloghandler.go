package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripwise/internal/application/catalog/usecases"
	"tripwise/internal/domain/catalog"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/utils"
)

// LookupHandler serves the REST CRUD surface for one lookup entity. The
// entities double as request and response bodies, so create and update bind
// straight into them.
type LookupHandler[T any, PT catalog.Record[T]] struct {
	uc     *usecases.LookupUseCases[T, PT]
	logger logger.Interface
}

func NewLookupHandler[T any, PT catalog.Record[T]](uc *usecases.LookupUseCases[T, PT]) *LookupHandler[T, PT] {
	return &LookupHandler[T, PT]{
		uc:     uc,
		logger: logger.NewLogger(),
	}
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ID parameter")
	}
	return uint(id), nil
}

func (h *LookupHandler[T, PT]) Create(c *gin.Context) {
	record := PT(new(T))
	if err := c.ShouldBindJSON(record); err != nil {
		h.logger.Warnw("invalid request body for lookup create", "entity", record.EntityName(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.uc.Create(c.Request.Context(), record)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created, record.EntityName()+" created successfully")
}

func (h *LookupHandler[T, PT]) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	record, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", record)
}

func (h *LookupHandler[T, PT]) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	record := PT(new(T))
	if err := c.ShouldBindJSON(record); err != nil {
		h.logger.Warnw("invalid request body for lookup update", "entity", record.EntityName(), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	record.SetID(id)

	updated, err := h.uc.Update(c.Request.Context(), record)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, record.EntityName()+" updated successfully", updated)
}

func (h *LookupHandler[T, PT]) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	record := PT(new(T))
	utils.SuccessResponse(c, http.StatusOK, record.EntityName()+" deleted successfully", nil)
}

func (h *LookupHandler[T, PT]) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.uc.List(c.Request.Context(), usecases.ListLookupCommand{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Limit)
}

type CreateCityRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	ProvinceID uint   `json:"province_id" binding:"required"`
}

// CityHandler wraps the generic lookup surface with the province check on
// create.
type CityHandler struct {
	*LookupHandler[catalog.City, *catalog.City]
	createCityUC *usecases.CreateCityUseCase
	logger       logger.Interface
}

func NewCityHandler(
	lookup *LookupHandler[catalog.City, *catalog.City],
	createCityUC *usecases.CreateCityUseCase,
) *CityHandler {
	return &CityHandler{
		LookupHandler: lookup,
		createCityUC:  createCityUC,
		logger:        logger.NewLogger(),
	}
}

func (h *CityHandler) Create(c *gin.Context) {
	var req CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create city", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	city, err := h.createCityUC.Execute(c.Request.Context(), usecases.CreateCityCommand{
		Name:       req.Name,
		ProvinceID: req.ProvinceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, city, "City created successfully")
}

type CreateHashtagRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Slug string `json:"slug"`
}

// HashtagHandler upserts on create so reposting a tag is idempotent.
type HashtagHandler struct {
	*LookupHandler[catalog.Hashtag, *catalog.Hashtag]
	createHashtagUC *usecases.CreateHashtagUseCase
	logger          logger.Interface
}

func NewHashtagHandler(
	lookup *LookupHandler[catalog.Hashtag, *catalog.Hashtag],
	createHashtagUC *usecases.CreateHashtagUseCase,
) *HashtagHandler {
	return &HashtagHandler{
		LookupHandler:   lookup,
		createHashtagUC: createHashtagUC,
		logger:          logger.NewLogger(),
	}
}

func (h *HashtagHandler) Create(c *gin.Context) {
	var req CreateHashtagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create hashtag", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	hashtag, err := h.createHashtagUC.Execute(c.Request.Context(), usecases.CreateHashtagCommand{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Hashtag resolved successfully", hashtag)
}
