package usecases

import (
	"context"
	"fmt"

	"tripwise/internal/domain/catalog"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type CreateCityCommand struct {
	Name       string
	ProvinceID uint
}

// CreateCityUseCase inserts a city after verifying its province exists.
type CreateCityUseCase struct {
	cityRepo     catalog.Repository[catalog.City, *catalog.City]
	provinceRepo catalog.Repository[catalog.Province, *catalog.Province]
	logger       logger.Interface
}

func NewCreateCityUseCase(
	cityRepo catalog.Repository[catalog.City, *catalog.City],
	provinceRepo catalog.Repository[catalog.Province, *catalog.Province],
	logger logger.Interface,
) *CreateCityUseCase {
	return &CreateCityUseCase{
		cityRepo:     cityRepo,
		provinceRepo: provinceRepo,
		logger:       logger,
	}
}

func (uc *CreateCityUseCase) Execute(ctx context.Context, cmd CreateCityCommand) (*catalog.City, error) {
	uc.logger.Infow("executing create city use case", "name", cmd.Name, "province_id", cmd.ProvinceID)

	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}
	if cmd.ProvinceID == 0 {
		return nil, errors.NewValidationError("province ID is required")
	}

	province, err := uc.provinceRepo.GetByID(ctx, cmd.ProvinceID)
	if err != nil {
		uc.logger.Errorw("failed to get province", "error", err, "province_id", cmd.ProvinceID)
		return nil, err
	}
	if province == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Province with ID %d not found", cmd.ProvinceID))
	}

	city := &catalog.City{Name: cmd.Name, ProvinceID: cmd.ProvinceID}
	if err := uc.cityRepo.Create(ctx, city); err != nil {
		uc.logger.Errorw("failed to create city", "error", err)
		return nil, err
	}

	uc.logger.Infow("city created successfully", "city_id", city.ID)
	return city, nil
}
