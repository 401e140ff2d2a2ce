package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type AddPlanToGroupCommand struct {
	PlanID  uint
	GroupID uint
	UserID  uint
}

// AddPlanToGroupResult reports Success false when the association already
// existed and the insert was absorbed by the uniqueness constraint.
type AddPlanToGroupResult struct {
	Success    bool
	Assignment *dto.GroupAssignmentDTO
}

type AddPlanToGroupUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewAddPlanToGroupUseCase(planRepo plan.Repository, logger logger.Interface) *AddPlanToGroupUseCase {
	return &AddPlanToGroupUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *AddPlanToGroupUseCase) Execute(ctx context.Context, cmd AddPlanToGroupCommand) (*AddPlanToGroupResult, error) {
	uc.logger.Infow("executing add plan to group use case", "plan_id", cmd.PlanID, "group_id", cmd.GroupID, "user_id", cmd.UserID)

	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}
	if cmd.GroupID == 0 {
		return nil, errors.NewValidationError("group ID is required")
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
		return nil, errors.NewUnauthorizedError("You are not allowed to share this plan")
	}

	existing, err := uc.planRepo.GroupPlan(ctx, cmd.GroupID)
	if err != nil {
		uc.logger.Errorw("failed to check group plan", "error", err, "group_id", cmd.GroupID)
		return nil, err
	}
	if existing != nil && existing.ID() != cmd.PlanID {
		return nil, errors.NewBadRequestError("Group already has a plan")
	}

	assignment, err := plan.NewGroupAssignment(cmd.PlanID, cmd.GroupID, cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	inserted, err := uc.planRepo.AddToGroup(ctx, assignment)
	if err != nil {
		uc.logger.Errorw("failed to add plan to group", "error", err, "plan_id", cmd.PlanID, "group_id", cmd.GroupID)
		return nil, err
	}
	if !inserted {
		uc.logger.Infow("plan already in group", "plan_id", cmd.PlanID, "group_id", cmd.GroupID)
		return &AddPlanToGroupResult{Success: false}, nil
	}

	uc.logger.Infow("plan added to group", "plan_id", cmd.PlanID, "group_id", cmd.GroupID)
	return &AddPlanToGroupResult{
		Success:    true,
		Assignment: dto.GroupAssignmentToDTO(assignment),
	}, nil
}
