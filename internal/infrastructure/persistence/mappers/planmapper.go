// Package mappers translates between persistence models and domain
// entities. JSONB columns go through the defensive value-object parsers so
// malformed stored payloads degrade to empty values instead of failing.
package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/infrastructure/persistence/models"
)

func locationToJSON(loc vo.Location) (datatypes.JSON, error) {
	raw, err := json.Marshal(loc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func extraDataToJSON(data vo.ExtraData) (datatypes.JSON, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json_data: %w", err)
	}
	return datatypes.JSON(raw), nil
}

type PlanMapper interface {
	ToEntity(row *models.PlanRow) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(rows []*models.PlanRow) ([]*plan.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(row *models.PlanRow) (*plan.Plan, error) {
	if row == nil {
		return nil, nil
	}

	status, err := vo.NewPlanStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan status: %w", err)
	}

	entity, err := plan.ReconstructPlan(
		row.PlanID,
		row.Name,
		row.Description,
		row.ThumbnailURL,
		vo.ParseLocation([]byte(row.Location)),
		vo.ParseExtraData([]byte(row.JSONData)),
		status,
		row.UserCreated,
		row.GroupCount,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	location, err := locationToJSON(entity.Location())
	if err != nil {
		return nil, err
	}
	jsonData, err := extraDataToJSON(entity.JSONData())
	if err != nil {
		return nil, err
	}

	return &models.PlanModel{
		PlanID:       entity.ID(),
		Name:         entity.Name(),
		Description:  entity.Description(),
		ThumbnailURL: entity.ThumbnailURL(),
		Location:     location,
		JSONData:     jsonData,
		Status:       entity.Status().String(),
		UserCreated:  entity.UserCreated(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(rows []*models.PlanRow) ([]*plan.Plan, error) {
	if rows == nil {
		return nil, nil
	}

	entities := make([]*plan.Plan, 0, len(rows))
	for _, row := range rows {
		entity, err := m.ToEntity(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
