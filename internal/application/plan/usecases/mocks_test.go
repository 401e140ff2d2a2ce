package usecases

import (
	"context"

	"tripwise/internal/domain/plan"
	"tripwise/internal/shared/logger"
	"tripwise/internal/shared/query"
)

type mockPlanRepository struct {
	ListFunc            func(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error)
	GetByIDFunc         func(ctx context.Context, id uint) (*plan.Plan, error)
	DayPlacesFunc       func(ctx context.Context, planID uint) ([]*plan.DayPlace, error)
	DayPlacesByDayFunc  func(ctx context.Context, planID uint, day string) ([]*plan.DayPlace, error)
	DayPlaceByIDFunc    func(ctx context.Context, id uint) (*plan.DayPlace, error)
	SchedulesFunc       func(ctx context.Context, dayPlaceID uint) ([]*plan.Schedule, error)
	SchedulesPageFunc   func(ctx context.Context, dayPlaceID uint, page query.PageFilter) ([]*plan.Schedule, int64, error)
	GroupPlanFunc       func(ctx context.Context, groupID uint) (*plan.Plan, error)
	CreateFunc          func(ctx context.Context, p *plan.Plan, days int) error
	UpdateBasicFunc     func(ctx context.Context, planID uint, fields plan.UpdateFields) (int64, error)
	UpdateAggregateFunc func(ctx context.Context, planID uint, fields plan.UpdateFields, dayPlaces []plan.DayPlaceChange, schedules []plan.ScheduleChange) (*plan.Plan, error)
	DeleteFunc          func(ctx context.Context, planID uint) (*plan.Plan, error)
	AddToGroupFunc      func(ctx context.Context, assignment *plan.GroupAssignment) (bool, error)
	CreateDayPlaceFunc  func(ctx context.Context, dp *plan.DayPlace) error
	CreateScheduleFunc  func(ctx context.Context, s *plan.Schedule) error
}

func (m *mockPlanRepository) List(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) DayPlaces(ctx context.Context, planID uint) ([]*plan.DayPlace, error) {
	if m.DayPlacesFunc != nil {
		return m.DayPlacesFunc(ctx, planID)
	}
	return nil, nil
}

func (m *mockPlanRepository) DayPlacesByDay(ctx context.Context, planID uint, day string) ([]*plan.DayPlace, error) {
	if m.DayPlacesByDayFunc != nil {
		return m.DayPlacesByDayFunc(ctx, planID, day)
	}
	return nil, nil
}

func (m *mockPlanRepository) DayPlaceByID(ctx context.Context, id uint) (*plan.DayPlace, error) {
	if m.DayPlaceByIDFunc != nil {
		return m.DayPlaceByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) Schedules(ctx context.Context, dayPlaceID uint) ([]*plan.Schedule, error) {
	if m.SchedulesFunc != nil {
		return m.SchedulesFunc(ctx, dayPlaceID)
	}
	return nil, nil
}

func (m *mockPlanRepository) SchedulesPage(ctx context.Context, dayPlaceID uint, page query.PageFilter) ([]*plan.Schedule, int64, error) {
	if m.SchedulesPageFunc != nil {
		return m.SchedulesPageFunc(ctx, dayPlaceID, page)
	}
	return nil, 0, nil
}

func (m *mockPlanRepository) GroupPlan(ctx context.Context, groupID uint) (*plan.Plan, error) {
	if m.GroupPlanFunc != nil {
		return m.GroupPlanFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan, days int) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p, days)
	}
	return nil
}

func (m *mockPlanRepository) UpdateBasic(ctx context.Context, planID uint, fields plan.UpdateFields) (int64, error) {
	if m.UpdateBasicFunc != nil {
		return m.UpdateBasicFunc(ctx, planID, fields)
	}
	return 0, nil
}

func (m *mockPlanRepository) UpdateAggregate(ctx context.Context, planID uint, fields plan.UpdateFields, dayPlaces []plan.DayPlaceChange, schedules []plan.ScheduleChange) (*plan.Plan, error) {
	if m.UpdateAggregateFunc != nil {
		return m.UpdateAggregateFunc(ctx, planID, fields, dayPlaces, schedules)
	}
	return nil, nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, planID uint) (*plan.Plan, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, planID)
	}
	return nil, nil
}

func (m *mockPlanRepository) AddToGroup(ctx context.Context, assignment *plan.GroupAssignment) (bool, error) {
	if m.AddToGroupFunc != nil {
		return m.AddToGroupFunc(ctx, assignment)
	}
	return true, nil
}

func (m *mockPlanRepository) CreateDayPlace(ctx context.Context, dp *plan.DayPlace) error {
	if m.CreateDayPlaceFunc != nil {
		return m.CreateDayPlaceFunc(ctx, dp)
	}
	return nil
}

func (m *mockPlanRepository) CreateSchedule(ctx context.Context, s *plan.Schedule) error {
	if m.CreateScheduleFunc != nil {
		return m.CreateScheduleFunc(ctx, s)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any) {}
func (m *mockLogger) Warn(msg string, args ...any) {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
