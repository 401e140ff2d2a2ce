package usecases

import (
	"context"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type CheckGroupPlanCommand struct {
	GroupID uint
	UserID  uint
}

type CheckGroupPlanResult struct {
	HasPlan bool
	Plan    *dto.PlanDTO
}

type CheckGroupPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCheckGroupPlanUseCase(planRepo plan.Repository, logger logger.Interface) *CheckGroupPlanUseCase {
	return &CheckGroupPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute returns the plan currently assigned to the group. Group membership
// is trusted from the caller, so no visibility filter applies here.
func (uc *CheckGroupPlanUseCase) Execute(ctx context.Context, cmd CheckGroupPlanCommand) (*CheckGroupPlanResult, error) {
	uc.logger.Debugw("executing check group plan use case", "group_id", cmd.GroupID, "user_id", cmd.UserID)

	if cmd.GroupID == 0 {
		return nil, errors.NewValidationError("group ID is required")
	}

	p, err := uc.planRepo.GroupPlan(ctx, cmd.GroupID)
	if err != nil {
		uc.logger.Errorw("failed to get group plan", "error", err, "group_id", cmd.GroupID)
		return nil, err
	}

	return &CheckGroupPlanResult{
		HasPlan: p != nil,
		Plan:    dto.PlanToDTO(p),
	}, nil
}
