package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/errors"
)

func TestAddPlanToGroupUseCase_Execute(t *testing.T) {
	t.Run("assigns plan to an empty group", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			AddToGroupFunc: func(ctx context.Context, assignment *plan.GroupAssignment) (bool, error) {
				require.NoError(t, assignment.SetID(50))
				return true, nil
			},
		}

		useCase := NewAddPlanToGroupUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), AddPlanToGroupCommand{PlanID: 1, GroupID: 3, UserID: 7})

		require.NoError(t, err)
		assert.True(t, result.Success)
		require.NotNil(t, result.Assignment)
		assert.Equal(t, uint(50), result.Assignment.ID)
		assert.Equal(t, uint(3), result.Assignment.GroupID)
	})

	t.Run("occupied group is a bad request", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		other := ownedPlan(t, 2, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			GroupPlanFunc: func(ctx context.Context, groupID uint) (*plan.Plan, error) {
				return other, nil
			},
		}

		useCase := NewAddPlanToGroupUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddPlanToGroupCommand{PlanID: 1, GroupID: 3, UserID: 7})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "Group already has a plan", appErr.Message)
	})

	t.Run("constraint absorption reads as unsuccessful, not as error", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
			GroupPlanFunc: func(ctx context.Context, groupID uint) (*plan.Plan, error) {
				// same plan already assigned, so the precheck passes
				return existing, nil
			},
			AddToGroupFunc: func(ctx context.Context, assignment *plan.GroupAssignment) (bool, error) {
				return false, nil
			},
		}

		useCase := NewAddPlanToGroupUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), AddPlanToGroupCommand{PlanID: 1, GroupID: 3, UserID: 7})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Nil(t, result.Assignment)
	})

	t.Run("non-owner cannot share the plan", func(t *testing.T) {
		existing := ownedPlan(t, 1, 7, vo.StatusPublic)
		mockRepo := &mockPlanRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewAddPlanToGroupUseCase(mockRepo, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddPlanToGroupCommand{PlanID: 1, GroupID: 3, UserID: 8})

		require.Error(t, err)
		assert.True(t, errors.IsUnauthorizedError(err))
	})
}

func TestCheckGroupPlanUseCase_Execute(t *testing.T) {
	t.Run("reports the assigned plan", func(t *testing.T) {
		existing := ownedPlan(t, 4, 7, vo.StatusPrivate)
		mockRepo := &mockPlanRepository{
			GroupPlanFunc: func(ctx context.Context, groupID uint) (*plan.Plan, error) {
				return existing, nil
			},
		}

		useCase := NewCheckGroupPlanUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), CheckGroupPlanCommand{GroupID: 3, UserID: 9})

		require.NoError(t, err)
		assert.True(t, result.HasPlan)
		require.NotNil(t, result.Plan)
		assert.Equal(t, uint(4), result.Plan.ID)
	})

	t.Run("empty group has no plan", func(t *testing.T) {
		useCase := NewCheckGroupPlanUseCase(&mockPlanRepository{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), CheckGroupPlanCommand{GroupID: 3, UserID: 9})

		require.NoError(t, err)
		assert.False(t, result.HasPlan)
		assert.Nil(t, result.Plan)
	})
}
