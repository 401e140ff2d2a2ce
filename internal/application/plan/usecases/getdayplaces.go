package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type GetDayPlacesCommand struct {
	PlanID uint
	UserID uint
	// Ngay narrows the listing to a single day when set.
	Ngay *string
}

type GetDayPlacesUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetDayPlacesUseCase(planRepo plan.Repository, logger logger.Interface) *GetDayPlacesUseCase {
	return &GetDayPlacesUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetDayPlacesUseCase) Execute(ctx context.Context, cmd GetDayPlacesCommand) ([]*dto.DayPlaceDTO, error) {
	uc.logger.Debugw("executing get day places use case", "plan_id", cmd.PlanID, "user_id", cmd.UserID)

	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}
	if p == nil || !p.IsVisibleTo(cmd.UserID) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", cmd.PlanID))
	}

	if cmd.Ngay == nil {
		dayPlaces, err := uc.planRepo.DayPlaces(ctx, cmd.PlanID)
		if err != nil {
			uc.logger.Errorw("failed to list day places", "error", err, "plan_id", cmd.PlanID)
			return nil, err
		}
		return dto.DayPlacesToDTOs(dayPlaces), nil
	}

	// Narrowed to one day, each place carries its schedules.
	dayPlaces, err := uc.planRepo.DayPlacesByDay(ctx, cmd.PlanID, *cmd.Ngay)
	if err != nil {
		uc.logger.Errorw("failed to list day places", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}

	result := make([]*dto.DayPlaceDTO, 0, len(dayPlaces))
	for _, dp := range dayPlaces {
		schedules, err := uc.planRepo.Schedules(ctx, dp.ID())
		if err != nil {
			uc.logger.Errorw("failed to list schedules", "error", err, "day_place_id", dp.ID())
			return nil, err
		}
		result = append(result, dto.DayPlaceToDTOWithSchedules(dp, schedules))
	}
	return result, nil
}
