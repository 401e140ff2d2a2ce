package mappers

import (
	"fmt"

	"tripwise/internal/domain/plan"
	"tripwise/internal/infrastructure/persistence/models"
)

type GroupPlanMapper interface {
	ToEntity(model *models.GroupPlanModel) (*plan.GroupAssignment, error)
	ToModel(entity *plan.GroupAssignment) (*models.GroupPlanModel, error)
}

type GroupPlanMapperImpl struct{}

func NewGroupPlanMapper() GroupPlanMapper {
	return &GroupPlanMapperImpl{}
}

func (m *GroupPlanMapperImpl) ToEntity(model *models.GroupPlanModel) (*plan.GroupAssignment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructGroupAssignment(
		model.PlanWithGroupID,
		model.PlanID,
		model.GroupID,
		model.UserCreated,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct group assignment entity: %w", err)
	}

	return entity, nil
}

func (m *GroupPlanMapperImpl) ToModel(entity *plan.GroupAssignment) (*models.GroupPlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.GroupPlanModel{
		PlanWithGroupID: entity.ID(),
		PlanID:          entity.PlanID(),
		GroupID:         entity.GroupID(),
		UserCreated:     entity.UserCreated(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}, nil
}
