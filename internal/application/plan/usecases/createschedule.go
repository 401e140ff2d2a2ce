package usecases

import (
	"context"
	"fmt"
	"time"

	"tripwise/internal/application/plan/dto"
	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/logger"
)

type CreateScheduleCommand struct {
	DayPlaceID  uint
	UserID      uint
	Name        string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    interface{}
	JSONData    interface{}
	ActivityID  *uint
}

type CreateScheduleUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreateScheduleUseCase(planRepo plan.Repository, logger logger.Interface) *CreateScheduleUseCase {
	return &CreateScheduleUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreateScheduleUseCase) Execute(ctx context.Context, cmd CreateScheduleCommand) (*dto.ScheduleDTO, error) {
	uc.logger.Infow("executing create schedule use case", "day_place_id", cmd.DayPlaceID, "name", cmd.Name, "user_id", cmd.UserID)

	if cmd.DayPlaceID == 0 {
		return nil, errors.NewValidationError("day place ID is required")
	}
	if len(cmd.Name) == 0 {
		return nil, errors.NewValidationError("name is required")
	}

	dayPlace, err := uc.planRepo.DayPlaceByID(ctx, cmd.DayPlaceID)
	if err != nil {
		uc.logger.Errorw("failed to get day place", "error", err, "day_place_id", cmd.DayPlaceID)
		return nil, err
	}
	if dayPlace == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Day place with ID %d not found", cmd.DayPlaceID))
	}

	p, err := uc.planRepo.GetByID(ctx, dayPlace.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", dayPlace.PlanID())
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Plan with ID %d not found", dayPlace.PlanID()))
	}
	if !p.IsOwnedBy(cmd.UserID) {
		return nil, errors.NewUnauthorizedError("You are not allowed to modify this plan")
	}

	schedule, err := plan.NewSchedule(
		cmd.Name,
		cmd.Description,
		cmd.StartTime,
		cmd.EndTime,
		vo.ParseLocation(cmd.Location),
		vo.ParseExtraData(cmd.JSONData),
		cmd.ActivityID,
		cmd.DayPlaceID,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.planRepo.CreateSchedule(ctx, schedule); err != nil {
		uc.logger.Errorw("failed to create schedule", "error", err, "day_place_id", cmd.DayPlaceID)
		return nil, err
	}

	uc.logger.Infow("schedule created successfully", "schedule_id", schedule.ID(), "day_place_id", cmd.DayPlaceID)
	return dto.ScheduleToDTO(schedule), nil
}
