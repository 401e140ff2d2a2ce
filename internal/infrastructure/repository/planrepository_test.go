package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripwise/internal/domain/plan"
	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/infrastructure/persistence/models"
	"tripwise/internal/shared/query"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PlanModel{},
		&models.DayPlaceModel{},
		&models.ScheduleModel{},
		&models.GroupPlanModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestPlan(t *testing.T, repo plan.Repository, name string, status vo.PlanStatus, userID uint, days int) *plan.Plan {
	p, err := plan.NewPlan(name, nil, nil, vo.Location{Name: name + " start"}, status, vo.ExtraData{}, userID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p, days))
	return p
}

func strPtr(s string) *string { return &s }

func TestPlanRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	t.Run("creates plan with one day place per day", func(t *testing.T) {
		p := createTestPlan(t, repo, "Đà Nẵng 3N2Đ", vo.StatusPrivate, 1, 3)
		assert.NotZero(t, p.ID())

		dayPlaces, err := repo.DayPlaces(ctx, p.ID())
		require.NoError(t, err)
		require.Len(t, dayPlaces, 3)

		for i, dp := range dayPlaces {
			assert.Equal(t, string(rune('1'+i)), dp.Ngay())
			assert.Equal(t, "Đà Nẵng 3N2Đ start", dp.Location().Name)
			assert.Equal(t, p.ID(), dp.PlanID())
		}
	})

	t.Run("zero days creates no day places", func(t *testing.T) {
		p := createTestPlan(t, repo, "No days", vo.StatusPrivate, 1, 0)

		dayPlaces, err := repo.DayPlaces(ctx, p.ID())
		require.NoError(t, err)
		assert.Empty(t, dayPlaces)
	})

	t.Run("derives the search key from the name", func(t *testing.T) {
		p := createTestPlan(t, repo, "Chuyến đi Hồ Chí Minh", vo.StatusPrivate, 1, 1)

		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "chuyen di ho chi minh", found.JSONData().NameKhongDau)
	})
}

func TestPlanRepository_List_Visibility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	createTestPlan(t, repo, "Owner private", vo.StatusPrivate, 1, 1)
	createTestPlan(t, repo, "Owner public", vo.StatusPublic, 1, 1)
	createTestPlan(t, repo, "Other private", vo.StatusPrivate, 2, 1)

	t.Run("owner sees own private and public plans", func(t *testing.T) {
		plans, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, plans, 2)
	})

	t.Run("stranger sees only public plans", func(t *testing.T) {
		plans, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, plans, 1)
		assert.Equal(t, "Owner public", plans[0].Name())
	})

	t.Run("status filter narrows within visible plans", func(t *testing.T) {
		status := "private"
		plans, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 1, Status: &status})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, plans, 1)
		assert.Equal(t, "Owner private", plans[0].Name())
	})
}

func TestPlanRepository_List_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	createTestPlan(t, repo, "Đà Nẵng mùa hè", vo.StatusPublic, 1, 1)
	createTestPlan(t, repo, "Sapa trekking", vo.StatusPublic, 1, 1)

	t.Run("accented query matches through the stripped search key", func(t *testing.T) {
		plans, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 9, Search: "da nang"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, plans, 1)
		assert.Equal(t, "Đà Nẵng mùa hè", plans[0].Name())
	})

	t.Run("plain name match still works", func(t *testing.T) {
		_, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 9, Search: "trekking"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("no match yields empty page with zero total", func(t *testing.T) {
		plans, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 9, Search: "hanoi"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, plans)
	})
}

func TestPlanRepository_List_Tags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	tagged, err := plan.NewPlan("Beach trip", nil, nil, vo.Location{}, vo.StatusPublic, vo.ExtraData{}.WithTags([]string{"beach", "food"}), 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tagged, 1))
	createTestPlan(t, repo, "Mountain trip", vo.StatusPublic, 1, 1)

	t.Run("matches plans carrying any requested tag", func(t *testing.T) {
		plans, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 1, Tags: []string{"beach", "museum"}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, plans, 1)
		assert.Equal(t, "Beach trip", plans[0].Name())
	})

	t.Run("unknown tag matches nothing", func(t *testing.T) {
		_, total, err := repo.List(ctx, plan.ListFilter{ViewerID: 1, Tags: []string{"museum"}})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestPlanRepository_DayPlaceOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Long trip", vo.StatusPrivate, 1, 12)

	dayPlaces, err := repo.DayPlaces(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, dayPlaces, 12)

	// day numbers are strings, so "10" sorts before "2"
	got := make([]string, 0, len(dayPlaces))
	for _, dp := range dayPlaces {
		got = append(got, dp.Ngay())
	}
	assert.Equal(t, []string{"1", "10", "11", "12", "2", "3", "4", "5", "6", "7", "8", "9"}, got)
}

func TestPlanRepository_UpdateBasic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Tên cũ", vo.StatusPrivate, 1, 1)

	t.Run("updates only the supplied fields", func(t *testing.T) {
		affected, err := repo.UpdateBasic(ctx, p.ID(), plan.UpdateFields{Name: strPtr("Tên mới")})
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "Tên mới", found.Name())
		assert.Equal(t, vo.StatusPrivate, found.Status())
	})

	t.Run("renaming leaves the stored search key untouched", func(t *testing.T) {
		found, err := repo.GetByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Equal(t, "ten cu", found.JSONData().NameKhongDau)
	})

	t.Run("empty update touches no rows", func(t *testing.T) {
		affected, err := repo.UpdateBasic(ctx, p.ID(), plan.UpdateFields{})
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("missing plan touches no rows", func(t *testing.T) {
		affected, err := repo.UpdateBasic(ctx, 9999, plan.UpdateFields{Name: strPtr("ghost")})
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestPlanRepository_UpdateAggregate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Aggregate", vo.StatusPrivate, 1, 2)
	dayPlaces, err := repo.DayPlaces(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, dayPlaces, 2)
	firstID := dayPlaces[0].ID()

	start := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateAggregate(ctx, p.ID(),
		plan.UpdateFields{Status: strPtr("public")},
		[]plan.DayPlaceChange{
			{ID: &firstID, Ngay: "1", Location: vo.Location{Name: "Hội An"}},
			{Ngay: "3", Location: vo.Location{Name: "Huế"}},
		},
		[]plan.ScheduleChange{
			{DayPlaceID: firstID, Name: "Old town walk", StartTime: &start},
		},
	)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Status().IsPublic())

	dayPlaces, err = repo.DayPlaces(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, dayPlaces, 3)
	assert.Equal(t, "Hội An", dayPlaces[0].Location().Name)

	schedules, err := repo.Schedules(ctx, firstID)
	require.NoError(t, err)
	require.Len(t, schedules, 1)
	assert.Equal(t, "Old town walk", schedules[0].Name())
	require.NotNil(t, schedules[0].StartTime())
	assert.True(t, start.Equal(*schedules[0].StartTime()))
}

func TestPlanRepository_UpdateAggregate_ScheduleScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	mine := createTestPlan(t, repo, "Mine", vo.StatusPrivate, 1, 1)
	theirs := createTestPlan(t, repo, "Theirs", vo.StatusPrivate, 2, 1)

	myDayPlaces, err := repo.DayPlaces(ctx, mine.ID())
	require.NoError(t, err)
	myDayPlaceID := myDayPlaces[0].ID()
	theirDayPlaces, err := repo.DayPlaces(ctx, theirs.ID())
	require.NoError(t, err)
	theirDayPlaceID := theirDayPlaces[0].ID()

	mySchedule, err := plan.NewSchedule("Morning market", nil, nil, nil, vo.Location{}, vo.ExtraData{}, nil, myDayPlaceID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateSchedule(ctx, mySchedule))
	theirSchedule, err := plan.NewSchedule("Their dinner", nil, nil, nil, vo.Location{}, vo.ExtraData{}, nil, theirDayPlaceID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateSchedule(ctx, theirSchedule))

	t.Run("renaming keeps the schedule on its day place", func(t *testing.T) {
		id := mySchedule.ID()
		_, err := repo.UpdateAggregate(ctx, mine.ID(), plan.UpdateFields{}, nil,
			[]plan.ScheduleChange{{ID: &id, DayPlaceID: myDayPlaceID, Name: "Morning market tour"}})
		require.NoError(t, err)

		schedules, err := repo.Schedules(ctx, myDayPlaceID)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, "Morning market tour", schedules[0].Name())
		assert.Equal(t, myDayPlaceID, schedules[0].DayPlaceID())
	})

	t.Run("a change targeting another plan's schedule touches nothing", func(t *testing.T) {
		id := theirSchedule.ID()
		_, err := repo.UpdateAggregate(ctx, mine.ID(), plan.UpdateFields{}, nil,
			[]plan.ScheduleChange{{ID: &id, DayPlaceID: myDayPlaceID, Name: "Hijacked"}})
		require.NoError(t, err)

		schedules, err := repo.Schedules(ctx, theirDayPlaceID)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, "Their dinner", schedules[0].Name())
		assert.Equal(t, theirDayPlaceID, schedules[0].DayPlaceID())
	})
}

func TestPlanRepository_Schedules(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Scheduled", vo.StatusPrivate, 1, 1)
	dayPlaces, err := repo.DayPlaces(ctx, p.ID())
	require.NoError(t, err)
	dayPlaceID := dayPlaces[0].ID()

	late := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	early := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		name  string
		start *time.Time
	}{
		{"Dinner", &late},
		{"Breakfast", &early},
	} {
		s, err := plan.NewSchedule(tc.name, nil, tc.start, nil, vo.Location{}, vo.ExtraData{}, nil, dayPlaceID)
		require.NoError(t, err)
		require.NoError(t, repo.CreateSchedule(ctx, s))
	}

	t.Run("ordered by start time ascending", func(t *testing.T) {
		schedules, err := repo.Schedules(ctx, dayPlaceID)
		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.Equal(t, "Breakfast", schedules[0].Name())
		assert.Equal(t, "Dinner", schedules[1].Name())
	})

	t.Run("paged listing counts all rows", func(t *testing.T) {
		schedules, total, err := repo.SchedulesPage(ctx, dayPlaceID, query.PageFilter{Page: 1, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, schedules, 1)
		assert.Equal(t, "Breakfast", schedules[0].Name())
	})
}

func TestPlanRepository_Groups(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Group trip", vo.StatusPrivate, 1, 1)

	t.Run("first assignment inserts", func(t *testing.T) {
		ga, err := plan.NewGroupAssignment(p.ID(), 10, 1)
		require.NoError(t, err)

		inserted, err := repo.AddToGroup(ctx, ga)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotZero(t, ga.ID())
	})

	t.Run("duplicate assignment is absorbed", func(t *testing.T) {
		ga, err := plan.NewGroupAssignment(p.ID(), 10, 2)
		require.NoError(t, err)

		inserted, err := repo.AddToGroup(ctx, ga)
		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("group plan lookup joins through the association", func(t *testing.T) {
		found, err := repo.GroupPlan(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, p.ID(), found.ID())
		assert.Equal(t, int64(1), found.GroupCount())
	})

	t.Run("empty group has no plan", func(t *testing.T) {
		found, err := repo.GroupPlan(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPlanRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	p := createTestPlan(t, repo, "Doomed", vo.StatusPrivate, 1, 2)
	dayPlaces, err := repo.DayPlaces(ctx, p.ID())
	require.NoError(t, err)
	dayPlaceID := dayPlaces[0].ID()

	s, err := plan.NewSchedule("To be removed", nil, nil, nil, vo.Location{}, vo.ExtraData{}, nil, dayPlaceID)
	require.NoError(t, err)
	require.NoError(t, repo.CreateSchedule(ctx, s))

	ga, err := plan.NewGroupAssignment(p.ID(), 5, 1)
	require.NoError(t, err)
	_, err = repo.AddToGroup(ctx, ga)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Doomed", deleted.Name())

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	remaining, err := repo.DayPlaces(ctx, p.ID())
	require.NoError(t, err)
	assert.Empty(t, remaining)

	schedules, err := repo.Schedules(ctx, dayPlaceID)
	require.NoError(t, err)
	assert.Empty(t, schedules)

	groupPlan, err := repo.GroupPlan(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, groupPlan)

	t.Run("second delete is a miss", func(t *testing.T) {
		again, err := repo.Delete(ctx, p.ID())
		require.NoError(t, err)
		assert.Nil(t, again)
	})
}
