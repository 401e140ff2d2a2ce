package plan

import (
	"context"
	"time"

	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/query"
)

// ListFilter narrows the plan list query. Visibility is always applied:
// a plan is returned when the viewer created it or its status is public.
type ListFilter struct {
	query.PageFilter
	ViewerID uint
	Status   *string
	// Search matches case-insensitively against name and the stored
	// name_khong_dau; the term itself is accent-stripped first.
	Search string
	// Tags includes a plan when json_data.tags contains ANY of them.
	Tags []string
}

// UpdateFields carries the partial-update payload for plan scalar columns.
// Nil fields are left untouched.
type UpdateFields struct {
	Name         *string
	Description  *string
	ThumbnailURL *string
	Status       *string
	Location     *vo.Location
}

// HasAny reports whether at least one field is set.
func (f UpdateFields) HasAny() bool {
	return f.Name != nil || f.Description != nil || f.ThumbnailURL != nil || f.Status != nil || f.Location != nil
}

// DayPlaceChange is one entry of an aggregate update: update in place when
// ID is set, insert under the plan otherwise.
type DayPlaceChange struct {
	ID       *uint
	Ngay     string
	Location vo.Location
	JSONData vo.ExtraData
}

// ScheduleChange is one entry of an aggregate update: update in place when
// ID is set, insert under the referenced day place otherwise.
type ScheduleChange struct {
	ID          *uint
	DayPlaceID  uint
	Name        string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Location    vo.Location
	JSONData    vo.ExtraData
	ActivityID  *uint
}

// Repository is the sole owner of SQL access to plans, plan_day_places,
// plan_schedules and plan_with_group. Mutation methods assume existence and
// ownership were already validated by the calling use case; a zero-row
// result is the only signal passed back up.
type Repository interface {
	// List returns visible plans newest-created first, plus the total count
	// computed with identical filters.
	List(ctx context.Context, filter ListFilter) ([]*Plan, int64, error)

	// GetByID returns the plan with its computed group count, or nil when
	// absent. Callers are responsible for the visibility check.
	GetByID(ctx context.Context, id uint) (*Plan, error)

	// DayPlaces returns a plan's day places ordered by day number ascending
	// (string ordering).
	DayPlaces(ctx context.Context, planID uint) ([]*DayPlace, error)

	// DayPlacesByDay returns the day places of one specific day.
	DayPlacesByDay(ctx context.Context, planID uint, day string) ([]*DayPlace, error)

	// DayPlaceByID returns a day place or nil when absent.
	DayPlaceByID(ctx context.Context, id uint) (*DayPlace, error)

	// Schedules returns all schedules of a day place ordered by start time
	// ascending.
	Schedules(ctx context.Context, dayPlaceID uint) ([]*Schedule, error)

	// SchedulesPage returns one page of a day place's schedules plus the
	// total count.
	SchedulesPage(ctx context.Context, dayPlaceID uint, page query.PageFilter) ([]*Schedule, int64, error)

	// GroupPlan returns the plan assigned to a group, or nil when the group
	// has none.
	GroupPlan(ctx context.Context, groupID uint) (*Plan, error)

	// Create inserts the plan and exactly days day-place rows numbered
	// "1".."days", each seeded with the plan's location, in one transaction.
	Create(ctx context.Context, p *Plan, days int) error

	// UpdateBasic applies a partial update of scalar columns and returns the
	// number of rows affected (zero when no field was supplied).
	UpdateBasic(ctx context.Context, planID uint, fields UpdateFields) (int64, error)

	// UpdateAggregate atomically updates scalar fields and upserts the
	// supplied day places and schedules, then returns the refreshed plan.
	UpdateAggregate(ctx context.Context, planID uint, fields UpdateFields, dayPlaces []DayPlaceChange, schedules []ScheduleChange) (*Plan, error)

	// Delete removes, in order, the plan's schedules, day places, group
	// associations and finally the plan row, in one transaction. Returns the
	// deleted plan.
	Delete(ctx context.Context, planID uint) (*Plan, error)

	// AddToGroup inserts a join row. The bool is false when the (plan, group)
	// pair already existed and the insert was absorbed by the uniqueness
	// constraint.
	AddToGroup(ctx context.Context, assignment *GroupAssignment) (bool, error)

	// CreateDayPlace inserts a single day place.
	CreateDayPlace(ctx context.Context, dp *DayPlace) error

	// CreateSchedule inserts a single schedule.
	CreateSchedule(ctx context.Context, s *Schedule) error
}
