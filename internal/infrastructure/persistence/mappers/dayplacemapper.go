package mappers

import (
	"fmt"

	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/infrastructure/persistence/models"
)

type DayPlaceMapper interface {
	ToEntity(model *models.DayPlaceModel) (*plan.DayPlace, error)
	ToModel(entity *plan.DayPlace) (*models.DayPlaceModel, error)
	ToEntities(models []*models.DayPlaceModel) ([]*plan.DayPlace, error)
}

type DayPlaceMapperImpl struct{}

func NewDayPlaceMapper() DayPlaceMapper {
	return &DayPlaceMapperImpl{}
}

func (m *DayPlaceMapperImpl) ToEntity(model *models.DayPlaceModel) (*plan.DayPlace, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructDayPlace(
		model.PlanDayPlaceID,
		model.Ngay,
		vo.ParseLocation([]byte(model.Location)),
		vo.ParseExtraData([]byte(model.JSONData)),
		model.PlanID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct day place entity: %w", err)
	}

	return entity, nil
}

func (m *DayPlaceMapperImpl) ToModel(entity *plan.DayPlace) (*models.DayPlaceModel, error) {
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

	return &models.DayPlaceModel{
		PlanDayPlaceID: entity.ID(),
		Ngay:           entity.Ngay(),
		Location:       location,
		JSONData:       jsonData,
		PlanID:         entity.PlanID(),
	}, nil
}

func (m *DayPlaceMapperImpl) ToEntities(dayPlaces []*models.DayPlaceModel) ([]*plan.DayPlace, error) {
	if dayPlaces == nil {
		return nil, nil
	}

	entities := make([]*plan.DayPlace, 0, len(dayPlaces))
	for _, model := range dayPlaces {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
