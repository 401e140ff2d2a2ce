package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type CreateDayPlaceCommand struct {
	PlanID   uint
	UserID   uint
	Ngay     string
	Location interface{}
	JSONData interface{}
}

type CreateDayPlaceUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreateDayPlaceUseCase(planRepo plan.Repository, logger logger.Interface) *CreateDayPlaceUseCase {
	return &CreateDayPlaceUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreateDayPlaceUseCase) Execute(ctx context.Context, cmd CreateDayPlaceCommand) (*dto.DayPlaceDTO, error) {
	uc.logger.Infow("executing create day place use case", "plan_id", cmd.PlanID, "ngay", cmd.Ngay, "user_id", cmd.UserID)

	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}
	if cmd.Ngay == "" {
		return nil, errors.NewValidationError("day number is required")
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", cmd.PlanID))
	}
	if !p.IsOwnedBy(cmd.UserID) {
		return nil, errors.NewUnauthorizedError("You are not allowed to modify this plan")
	}

	dayPlace, err := plan.NewDayPlace(
		cmd.Ngay,
		vo.ParseLocation(cmd.Location),
		vo.ParseExtraData(cmd.JSONData),
		cmd.PlanID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.CreateDayPlace(ctx, dayPlace); err != nil {
		uc.logger.Errorw("failed to create day place", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}

	uc.logger.Infow("day place created successfully", "day_place_id", dayPlace.ID(), "plan_id", cmd.PlanID)
	return dto.DayPlaceToDTO(dayPlace), nil
}
