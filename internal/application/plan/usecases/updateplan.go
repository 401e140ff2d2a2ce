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

// DayPlaceInput updates a day place in place when ID is set, otherwise
// inserts a new one under the plan.
type DayPlaceInput struct {
	ID       *uint
	Ngay     string
	Location interface{}
	JSONData interface{}
}

// ScheduleInput updates a schedule in place when ID is set, otherwise
// inserts a new one under DayPlaceID.
type ScheduleInput struct {
	ID          *uint
	DayPlaceID  uint
	Name        string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    interface{}
	JSONData    interface{}
	ActivityID  *uint
}

type UpdatePlanCommand struct {
	PlanID       uint
	UserID       uint
	Name         *string
	Description  *string
	ThumbnailURL *string
	Status       *string
	Location     interface{}
	DayPlaces    []DayPlaceInput
	Schedules    []ScheduleInput
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	uc.logger.Infow("executing update plan use case",
		"plan_id", cmd.PlanID,
		"user_id", cmd.UserID,
		"day_places", len(cmd.DayPlaces),
		"schedules", len(cmd.Schedules),
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update plan command", "error", err)
		return nil, err
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
		return nil, errors.NewUnauthorizedError("You are not allowed to update this plan")
	}

	fields := plan.UpdateFields{
		Name:         cmd.Name,
		Description:  cmd.Description,
		ThumbnailURL: cmd.ThumbnailURL,
		Status:       cmd.Status,
	}
	if cmd.Location != nil {
		location := vo.ParseLocation(cmd.Location)
		fields.Location = &location
	}

	dayPlaces := make([]plan.DayPlaceChange, 0, len(cmd.DayPlaces))
	for _, in := range cmd.DayPlaces {
		dayPlaces = append(dayPlaces, plan.DayPlaceChange{
			ID:       in.ID,
			Ngay:     in.Ngay,
			Location: vo.ParseLocation(in.Location),
			JSONData: vo.ParseExtraData(in.JSONData),
		})
	}

	schedules := make([]plan.ScheduleChange, 0, len(cmd.Schedules))
	for _, in := range cmd.Schedules {
		schedules = append(schedules, plan.ScheduleChange{
			ID:          in.ID,
			DayPlaceID:  in.DayPlaceID,
			Name:        in.Name,
			Description: in.Description,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			Location:    vo.ParseLocation(in.Location),
			JSONData:    vo.ParseExtraData(in.JSONData),
			ActivityID:  in.ActivityID,
		})
	}

	updated, err := uc.planRepo.UpdateAggregate(ctx, cmd.PlanID, fields, dayPlaces, schedules)
	if err != nil {
		uc.logger.Errorw("failed to update plan aggregate", "error", err, "plan_id", cmd.PlanID)
		return nil, err
	}

	uc.logger.Infow("plan aggregate updated successfully", "plan_id", cmd.PlanID)
	return dto.PlanToDTO(updated), nil
}

func (uc *UpdatePlanUseCase) validateCommand(cmd UpdatePlanCommand) error {
	if cmd.PlanID == 0 {
		return errors.NewValidationError("plan ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.Name != nil && (len(*cmd.Name) == 0 || len(*cmd.Name) > 255) {
		return errors.NewValidationError("name must be between 1 and 255 characters")
	}
	if cmd.Status != nil && !vo.PlanStatus(*cmd.Status).IsValid() {
		return errors.NewValidationError("invalid plan status")
	}
	for _, in := range cmd.DayPlaces {
		if in.Ngay == "" {
			return errors.NewValidationError("day places require a day number")
		}
		if in.Location == nil {
			return errors.NewValidationError("day places require a location")
		}
	}
	for _, in := range cmd.Schedules {
		if len(in.Name) == 0 {
			return errors.NewValidationError("schedule name is required")
		}
		if in.DayPlaceID == 0 {
			return errors.NewValidationError("schedules require a day place ID")
		}
		if in.Location == nil {
			return errors.NewValidationError("schedules require a location")
		}
	}
	return nil
}
