package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type DeletePlanCommand struct {
	PlanID uint
	UserID uint
}

type DeletePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing delete plan use case", "plan_id", cmd.PlanID, "user_id", cmd.UserID)

	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
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
		return nil, errors.NewUnauthorizedError("You are not allowed to delete this plan")
	}

	deleted, err := uc.planRepo.Delete(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}
	if deleted == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", cmd.PlanID))
	}

	uc.logger.Infow("plan deleted successfully", "plan_id", cmd.PlanID)
	return dto.PlanToDTO(deleted), nil
}
