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
)

func ownedPlan(t *testing.T, id, ownerID uint, status vo.PlanStatus) *plan.Plan {
	t.Helper()
	now := time.Now()
	p, err := plan.ReconstructPlan(id, "Owned plan", nil, nil, vo.Location{}, vo.ExtraData{}, status, ownerID, 0, now, now)
	require.NoError(t, err)
	return p
}

func TestUpdatePlanUseCase_Execute(t *testing.T) {
	t.Run("forwards changes for the owner", func(t *testing.T) {
		existing := ownedPlan(t, 5, 1, vo.StatusPrivate)
		var gotFields plan.UpdateFields
		var gotDayPlaces []plan.DayPlaceChange
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			UpdateAggregateFunc: func(ctx context.Context, planID uint, fields plan.UpdateFields, dayPlaces []plan.DayPlaceChange, schedules []plan.ScheduleChange) (*plan.Plan, error) {
				gotFields = fields
				gotDayPlaces = dayPlaces
				return existing, nil
			},
		}

		name := "Renamed"
		useCase := NewUpdatePlanUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdatePlanCommand{
			PlanID: 5,
			UserID: 1,
			Name:   &name,
			DayPlaces: []DayPlaceInput{
				{Ngay: "2", Location: map[string]interface{}{"name": "Hội An"}},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, gotFields.Name)
		assert.Equal(t, "Renamed", *gotFields.Name)
		require.Len(t, gotDayPlaces, 1)
		assert.Equal(t, "Hội An", gotDayPlaces[0].Location.Name)
	})

	t.Run("missing plan is not found", func(t *testing.T) {
		useCase := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{PlanID: 5, UserID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "Plan with ID 5 not found")
	})

	t.Run("non-owner is unauthorized", func(t *testing.T) {
		existing := ownedPlan(t, 5, 1, vo.StatusPublic)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewUpdatePlanUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{PlanID: 5, UserID: 2})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("schedule without day place is rejected", func(t *testing.T) {
		useCase := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{
			PlanID:    5,
			UserID:    1,
			Schedules: []ScheduleInput{{Name: "Orphan", Location: map[string]interface{}{}}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("existing schedule without day place is rejected", func(t *testing.T) {
		id := uint(42)
		useCase := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{
			PlanID:    5,
			UserID:    1,
			Schedules: []ScheduleInput{{ID: &id, Name: "Renamed walk", Location: map[string]interface{}{}}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "day place ID")
	})

	t.Run("schedule without location is rejected", func(t *testing.T) {
		useCase := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{
			PlanID:    5,
			UserID:    1,
			Schedules: []ScheduleInput{{Name: "No location", DayPlaceID: 3}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("existing day place without day number is rejected", func(t *testing.T) {
		id := uint(7)
		useCase := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{
			PlanID:    5,
			UserID:    1,
			DayPlaces: []DayPlaceInput{{ID: &id, Location: map[string]interface{}{"name": "Huế"}}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "day number")
	})

	t.Run("day place without location is rejected", func(t *testing.T) {
		useCase := NewUpdatePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanCommand{
			PlanID:    5,
			UserID:    1,
			DayPlaces: []DayPlaceInput{{Ngay: "2"}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdatePlanBasicUseCase_Execute(t *testing.T) {
	t.Run("applies partial update for the owner", func(t *testing.T) {
		existing := ownedPlan(t, 9, 3, vo.StatusPrivate)
		var gotFields plan.UpdateFields
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			UpdateBasicFunc: func(ctx context.Context, planID uint, fields plan.UpdateFields) (int64, error) {
				gotFields = fields
				return 1, nil
			},
		}

		status := "public"
		useCase := NewUpdatePlanBasicUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdatePlanBasicCommand{
			PlanID: 9,
			UserID: 3,
			Status: &status,
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, gotFields.Status)
		assert.Equal(t, "public", *gotFields.Status)
		assert.Nil(t, gotFields.Name)
	})

	t.Run("non-owner is unauthorized", func(t *testing.T) {
		existing := ownedPlan(t, 9, 3, vo.StatusPublic)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		name := "Hijack"
		useCase := NewUpdatePlanBasicUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanBasicCommand{PlanID: 9, UserID: 4, Name: &name})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		empty := ""
		useCase := NewUpdatePlanBasicUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdatePlanBasicCommand{PlanID: 9, UserID: 3, Name: &empty})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestDeletePlanUseCase_Execute(t *testing.T) {
	t.Run("owner deletes and gets the removed plan back", func(t *testing.T) {
		existing := ownedPlan(t, 11, 2, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			DeleteFunc: func(ctx context.Context, planID uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewDeletePlanUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), DeletePlanCommand{PlanID: 11, UserID: 2})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint(11), result.ID)
	})

	t.Run("non-owner is unauthorized even for public plans", func(t *testing.T) {
		existing := ownedPlan(t, 11, 2, vo.StatusPublic)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewDeletePlanUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), DeletePlanCommand{PlanID: 11, UserID: 3})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})

	t.Run("missing plan is not found", func(t *testing.T) {
		useCase := NewDeletePlanUseCase(&mockPlanRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), DeletePlanCommand{PlanID: 11, UserID: 2})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
