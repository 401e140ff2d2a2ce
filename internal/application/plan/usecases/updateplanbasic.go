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

type UpdatePlanBasicCommand struct {
	PlanID       uint
	UserID       uint
	Name         *string
	Description  *string
	ThumbnailURL *string
	Status       *string
	// Location replaces the whole location payload when non-nil.
	Location interface{}
}

type UpdatePlanBasicUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanBasicUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanBasicUseCase {
	return &UpdatePlanBasicUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanBasicUseCase) Execute(ctx context.Context, cmd UpdatePlanBasicCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing update plan basic use case", "plan_id", cmd.PlanID, "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update plan basic command", "error", err)
		return nil, err
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
		return nil, errors.NewUnauthorizedError("You are not allowed to update this plan")
	}

	fields := plan.UpdateFields{
		Name:         cmd.Name,
		Description:  cmd.Description,
		ThumbnailURL: cmd.ThumbnailURL,
		Status:       cmd.Status,
	}
	if cmd.Location != nil {
		location := vo.ParseLocation(cmd.Location)
		fields.Location = &location
	}

	if _, err := uc.planRepo.UpdateBasic(ctx, cmd.PlanID, fields); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}

	updated, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("plan updated successfully", "plan_id", cmd.PlanID)
	return dto.PlanToDTO(updated), nil
}

func (uc *UpdatePlanBasicUseCase) validateCommand(cmd UpdatePlanBasicCommand) error {
	if cmd.PlanID == 0 {
		return errors.NewValidationError("plan ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.Name != nil && len(*cmd.Name) == 0 {
		return errors.NewValidationError("name cannot be empty")
	}
	if cmd.Name != nil && len(*cmd.Name) > 255 {
		return errors.NewValidationError("name exceeds maximum length of 255 characters")
	}
	if cmd.Status != nil && !vo.PlanStatus(*cmd.Status).IsValid() {
		return errors.NewValidationError("invalid plan status")
	}
	return nil
}
