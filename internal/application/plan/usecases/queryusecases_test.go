package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/errors"
	"tripwise/internal/shared/query"
)

func testDayPlace(t *testing.T, id, planID uint) *plan.DayPlace {
	t.Helper()
	dp, err := plan.ReconstructDayPlace(id, "1", vo.Location{}, vo.ExtraData{}, planID)
	require.NoError(t, err)
	return dp
}

func TestListPlansUseCase_Execute(t *testing.T) {
	t.Run("returns page with normalized meta", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPublic)
		var gotFilter plan.ListFilter
		mockRepo := &mockPlanRepository{
			ListFunc: func(ctx context.Context, filter plan.ListFilter) ([]*plan.Plan, int64, error) {
				gotFilter = filter
				return []*plan.Plan{existing}, 21, nil
			},
		}

		useCase := NewListPlansUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ListPlansCommand{
			UserID: 7,
			Search: "đà nẵng",
			Tags:   []string{"beach"},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(21), result.Total)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.Limit)
		require.Len(t, result.Plans, 1)
		assert.Equal(t, uint(7), gotFilter.ViewerID)
		assert.Equal(t, "đà nẵng", gotFilter.Search)
	})

	t.Run("bad status filter is rejected", func(t *testing.T) {
		status := "secret"
		useCase := NewListPlansUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), ListPlansCommand{UserID: 7, Status: &status})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetPlanDetailsUseCase_Execute(t *testing.T) {
	t.Run("assembles day places with schedules", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		start := time.Now()
		schedule, err := plan.ReconstructSchedule(30, "Walk", nil, &start, nil, vo.Location{}, vo.ExtraData{}, nil, 20, start, start)
		require.NoError(t, err)

		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			DayPlacesFunc: func(ctx context.Context, planID uint) ([]*plan.DayPlace, error) {
				return []*plan.DayPlace{testDayPlace(t, 20, 1)}, nil
			},
			SchedulesFunc: func(ctx context.Context, dayPlaceID uint) ([]*plan.Schedule, error) {
				assert.Equal(t, uint(20), dayPlaceID)
				return []*plan.Schedule{schedule}, nil
			},
		}

		useCase := NewGetPlanDetailsUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), GetPlanDetailsCommand{PlanID: 1, UserID: 7})

		require.NoError(t, err)
		require.NotNil(t, result.Plan)
		require.Len(t, result.DayPlaces, 1)
		require.Len(t, result.DayPlaces[0].Schedules, 1)
		assert.Equal(t, "Walk", result.DayPlaces[0].Schedules[0].Name)
	})

	t.Run("private plan of another user reads as absent", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewGetPlanDetailsUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetPlanDetailsCommand{PlanID: 1, UserID: 8})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "Plan with ID 1 not found")
	})

	t.Run("public plan is readable by anyone", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPublic)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewGetPlanDetailsUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), GetPlanDetailsCommand{PlanID: 1, UserID: 8})

		require.NoError(t, err)
		assert.NotNil(t, result.Plan)
	})
}

func TestGetDayPlacesUseCase_Execute(t *testing.T) {
	t.Run("narrows to one day when requested", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			DayPlacesByDayFunc: func(ctx context.Context, planID uint, day string) ([]*plan.DayPlace, error) {
				assert.Equal(t, "2", day)
				return []*plan.DayPlace{testDayPlace(t, 21, 1)}, nil
			},
		}

		day := "2"
		useCase := NewGetDayPlacesUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), GetDayPlacesCommand{PlanID: 1, UserID: 7, Ngay: &day})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, uint(21), result[0].ID)
	})

	t.Run("invisible plan reads as absent", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewGetDayPlacesUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetDayPlacesCommand{PlanID: 1, UserID: 8})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestGetSchedulesUseCase_Execute(t *testing.T) {
	t.Run("missing day place is not found", func(t *testing.T) {
		useCase := NewGetSchedulesUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetSchedulesCommand{DayPlaceID: 5, UserID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "Day place with ID 5 not found")
	})

	t.Run("private plan of another user is unauthorized", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			DayPlaceByIDFunc: func(ctx context.Context, id uint) (*plan.DayPlace, error) {
				return testDayPlace(t, 5, 1), nil
			},
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewGetSchedulesUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), GetSchedulesCommand{DayPlaceID: 5, UserID: 8})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("owner gets the page with totals", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		start := time.Now()
		schedule, err := plan.ReconstructSchedule(30, "Walk", nil, &start, nil, vo.Location{}, vo.ExtraData{}, nil, 5, start, start)
		require.NoError(t, err)

		mockRepo := &mockPlanRepository{
			DayPlaceByIDFunc: func(ctx context.Context, id uint) (*plan.DayPlace, error) {
				return testDayPlace(t, 5, 1), nil
			},
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			SchedulesPageFunc: func(ctx context.Context, dayPlaceID uint, page query.PageFilter) ([]*plan.Schedule, int64, error) {
				return []*plan.Schedule{schedule}, 12, nil
			},
		}

		useCase := NewGetSchedulesUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), GetSchedulesCommand{DayPlaceID: 5, UserID: 7, Page: 2, Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, int64(12), result.Total)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 5, result.Limit)
		require.Len(t, result.Schedules, 1)
	})
}

func TestCreateDayPlaceUseCase_Execute(t *testing.T) {
	t.Run("owner appends a day place", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			CreateDayPlaceFunc: func(ctx context.Context, dp *plan.DayPlace) error {
				return dp.SetID(40)
			},
		}

		useCase := NewCreateDayPlaceUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), CreateDayPlaceCommand{
			PlanID:   1,
			UserID:   7,
			Ngay:     "4",
			Location: map[string]interface{}{"name": "Huế"},
		})

		require.NoError(t, err)
		assert.Equal(t, uint(40), result.ID)
		assert.Equal(t, "4", result.Ngay)
	})

	t.Run("non-owner is unauthorized", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPublic)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewCreateDayPlaceUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), CreateDayPlaceCommand{PlanID: 1, UserID: 8, Ngay: "4"})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})
}

func TestCreateScheduleUseCase_Execute(t *testing.T) {
	t.Run("owner adds a schedule under a day place", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			DayPlaceByIDFunc: func(ctx context.Context, id uint) (*plan.DayPlace, error) {
				return testDayPlace(t, 5, 1), nil
			},
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			CreateScheduleFunc: func(ctx context.Context, s *plan.Schedule) error {
				return s.SetID(60)
			},
		}

		useCase := NewCreateScheduleUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), CreateScheduleCommand{
			DayPlaceID: 5,
			UserID:     7,
			Name:       "Morning market",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(60), result.ID)
		assert.Equal(t, uint(5), result.DayPlaceID)
	})

	t.Run("missing day place is not found", func(t *testing.T) {
		useCase := NewCreateScheduleUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), CreateScheduleCommand{DayPlaceID: 5, UserID: 7, Name: "x"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
