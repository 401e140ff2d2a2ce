package usecases

import (
	"context"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/query"
)

type ListPlansCommand struct {
	UserID uint
	Page   int
	Limit  int
	Status *string
	Search string
	Tags   []string
}

type ListPlansResult struct {
	Plans []*dto.PlanDTO
	Total int64
	Page  int
	Limit int
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, cmd ListPlansCommand) (*ListPlansResult, error) {
	uc.logger.Debugw("executing list plans use case", "user_id", cmd.UserID, "page", cmd.Page, "search", cmd.Search)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if cmd.Status != nil && !vo.PlanStatus(*cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid plan status filter")
	}

	filter := plan.ListFilter{
		PageFilter: query.PageFilter{Page: cmd.Page, Limit: cmd.Limit},
		ViewerID:   cmd.UserID,
		Status:     cmd.Status,
		Search:     cmd.Search,
		Tags:       cmd.Tags,
	}

	plans, total, err := uc.planRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, err
	}

	return &ListPlansResult{
		Plans: dto.PlansToDTOs(plans),
		Total: total,
		Page:  filter.NormalizedPage(),
		Limit: filter.PageSize(),
	}, nil
}
