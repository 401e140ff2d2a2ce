package usecases

import (
	"context"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name         string
	Description  *string
	ThumbnailURL *string
	Location     interface{}
	JSONData     interface{}
	Status       string
	Days         int
	UserID       uint
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing create plan use case", "name", cmd.Name, "user_id", cmd.UserID, "days", cmd.Days)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create plan command", "error", err)
		return nil, err
	}

	status, err := vo.NewPlanStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newPlan, err := plan.NewPlan(
		cmd.Name,
		cmd.Description,
		cmd.ThumbnailURL,
		vo.ParseLocation(cmd.Location),
		status,
		vo.ParseExtraData(cmd.JSONData),
		cmd.UserID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create plan entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.Create(ctx, newPlan, cmd.Days); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err)
		return nil, err
	}

	uc.logger.Infow("plan created successfully", "plan_id", newPlan.ID(), "days", cmd.Days)
	return dto.PlanToDTO(newPlan), nil
}

func (uc *CreatePlanUseCase) validateCommand(cmd CreatePlanCommand) error {
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Name) > 255 {
		return errors.NewValidationError("name exceeds maximum length of 255 characters")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.Days < 0 {
		return errors.NewValidationError("days cannot be negative")
	}
	if cmd.Days > 365 {
		return errors.NewValidationError("days exceeds maximum of 365")
	}
	return nil
}
