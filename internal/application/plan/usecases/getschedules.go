package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/query"
)

type GetSchedulesCommand struct {
	DayPlaceID uint
	UserID     uint
	Page       int
	Limit      int
}

type GetSchedulesResult struct {
	Schedules []*dto.ScheduleDTO
	Total     int64
	Page      int
	Limit     int
}

type GetSchedulesUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetSchedulesUseCase(planRepo plan.Repository, logger logger.Interface) *GetSchedulesUseCase {
	return &GetSchedulesUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute lists one page of a day place's schedules. Unlike the other read
// paths this one answers Unauthorized, not NotFound, for private plans of
// other users.
func (uc *GetSchedulesUseCase) Execute(ctx context.Context, cmd GetSchedulesCommand) (*GetSchedulesResult, error) {
	uc.logger.Debugw("executing get schedules use case", "day_place_id", cmd.DayPlaceID, "user_id", cmd.UserID)

	if cmd.DayPlaceID == 0 {
		return nil, errors.NewValidationError("day place ID is required")
	}

	dayPlace, err := uc.planRepo.DayPlaceByID(ctx, cmd.DayPlaceID)
	if err != nil {
		uc.logger.Errorw("failed to get day place", "error", err, "day_place_id", cmd.DayPlaceID)
		return nil, err
	}
	if dayPlace == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Day place with ID %d not found", cmd.DayPlaceID))
	}

	p, err := uc.planRepo.GetByID(ctx, dayPlace.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", dayPlace.PlanID())
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", dayPlace.PlanID()))
	}
	if !p.IsVisibleTo(cmd.UserID) {
		return nil, errors.NewUnauthorizedError("You are not allowed to view these schedules")
	}

	page := query.PageFilter{Page: cmd.Page, Limit: cmd.Limit}
	schedules, total, err := uc.planRepo.SchedulesPage(ctx, cmd.DayPlaceID, page)
	if err != nil {
		uc.logger.Errorw("failed to list schedules", "error", err, "day_place_id", cmd.DayPlaceID)
		return nil, err
	}

	return &GetSchedulesResult{
		Schedules: dto.SchedulesToDTOs(schedules),
		Total:     total,
		Page:      page.NormalizedPage(),
		Limit:     page.PageSize(),
	}, nil
}
