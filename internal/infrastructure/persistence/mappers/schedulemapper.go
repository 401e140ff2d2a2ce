package mappers

import (
	"fmt"

	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/infrastructure/persistence/models"
)

type ScheduleMapper interface {
	ToEntity(model *models.ScheduleModel) (*plan.Schedule, error)
	ToModel(entity *plan.Schedule) (*models.ScheduleModel, error)
	ToEntities(models []*models.ScheduleModel) ([]*plan.Schedule, error)
}

type ScheduleMapperImpl struct{}

func NewScheduleMapper() ScheduleMapper {
	return &ScheduleMapperImpl{}
}

func (m *ScheduleMapperImpl) ToEntity(model *models.ScheduleModel) (*plan.Schedule, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructSchedule(
		model.PlanScheduleID,
		model.Name,
		model.Description,
		model.StartTime,
		model.EndTime,
		vo.ParseLocation([]byte(model.Location)),
		vo.ParseExtraData([]byte(model.JSONData)),
		model.ActivityID,
		model.PlanDayPlaceID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct schedule entity: %w", err)
	}

	return entity, nil
}

func (m *ScheduleMapperImpl) ToModel(entity *plan.Schedule) (*models.ScheduleModel, error) {
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

	return &models.ScheduleModel{
		PlanScheduleID: entity.ID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		StartTime:      entity.StartTime(),
		EndTime:        entity.EndTime(),
		Location:       location,
		JSONData:       jsonData,
		ActivityID:     entity.ActivityID(),
		PlanDayPlaceID: entity.DayPlaceID(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *ScheduleMapperImpl) ToEntities(schedules []*models.ScheduleModel) ([]*plan.Schedule, error) {
	if schedules == nil {
		return nil, nil
	}

	entities := make([]*plan.Schedule, 0, len(schedules))
	for _, model := range schedules {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
