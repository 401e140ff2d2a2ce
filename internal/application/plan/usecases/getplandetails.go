package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type GetPlanDetailsCommand struct {
	PlanID uint
	UserID uint
}

type GetPlanDetailsUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanDetailsUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanDetailsUseCase {
	return &GetPlanDetailsUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute returns the plan with its day places and their schedules. An
// invisible private plan reads as absent, not as forbidden.
func (uc *GetPlanDetailsUseCase) Execute(ctx context.Context, cmd GetPlanDetailsCommand) (*dto.PlanDetailsDTO, error) {
	uc.logger.Debugw("executing get plan details use case", "plan_id", cmd.PlanID, "user_id", cmd.UserID)

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

	dayPlaces, err := uc.planRepo.DayPlaces(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to list day places", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}

	dayPlaceDTOs := make([]*dto.DayPlaceDTO, 0, len(dayPlaces))
	for _, dp := range dayPlaces {
		schedules, err := uc.planRepo.Schedules(ctx, dp.ID())
		if err != nil {
			uc.logger.Errorw("failed to list schedules", "error", err, "day_place_id", dp.ID())
			return nil, err
		}
		dayPlaceDTOs = append(dayPlaceDTOs, dto.DayPlaceToDTOWithSchedules(dp, schedules))
	}

	return &dto.PlanDetailsDTO{
		Plan:      dto.PlanToDTO(p),
		DayPlaces: dayPlaceDTOs,
	}, nil
}
