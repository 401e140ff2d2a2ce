// Package models defines the gorm persistence models. They mirror the
// database schema and never leak outside the infrastructure layer; mappers
// translate between them and domain entities.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlanModel maps the plans table. Location and JSONData are JSONB columns
// holding the open-shaped payloads the API accepts.
type PlanModel struct {
	PlanID       uint           `gorm:"primaryKey;column:plan_id"`
	Name         string         `gorm:"column:name;size:255;not null"`
	Description  *string        `gorm:"column:description"`
	ThumbnailURL *string        `gorm:"column:thumbnail_url;size:512"`
	Location     datatypes.JSON `gorm:"column:location"`
	JSONData     datatypes.JSON `gorm:"column:json_data"`
	Status       string         `gorm:"column:status;size:32;not null;default:private"`
	UserCreated  uint           `gorm:"column:user_created;not null;index"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (PlanModel) TableName() string { return "plans" }

// PlanRow is the list/detail scan target: the plan columns plus the derived
// group membership count from the correlated subquery.
type PlanRow struct {
	PlanModel
	GroupCount int64 `gorm:"column:group_count"`
}

// DayPlaceModel maps plan_day_places. Ngay is the day number kept as a
// string, so ordering is lexicographic ("10" sorts before "2").
type DayPlaceModel struct {
	PlanDayPlaceID uint           `gorm:"primaryKey;column:plan_day_place_id"`
	Ngay           string         `gorm:"column:ngay;size:32;not null"`
	Location       datatypes.JSON `gorm:"column:location"`
	JSONData       datatypes.JSON `gorm:"column:json_data"`
	PlanID         uint           `gorm:"column:plan_id;not null;index"`
}

func (DayPlaceModel) TableName() string { return "plan_day_places" }

// ScheduleModel maps plan_schedules. Start and end times are independently
// nullable; no ordering between them is enforced.
type ScheduleModel struct {
	PlanScheduleID uint           `gorm:"primaryKey;column:plan_schedule_id"`
	Name           string         `gorm:"column:name;size:255;not null"`
	Description    *string        `gorm:"column:description"`
	StartTime      *time.Time     `gorm:"column:start_time"`
	EndTime        *time.Time     `gorm:"column:end_time"`
	Location       datatypes.JSON `gorm:"column:location"`
	JSONData       datatypes.JSON `gorm:"column:json_data"`
	ActivityID     *uint          `gorm:"column:activity_id"`
	PlanDayPlaceID uint           `gorm:"column:plan_day_place_id;not null;index"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
}

func (ScheduleModel) TableName() string { return "plan_schedules" }

// GroupPlanModel maps plan_with_group. The composite unique index keeps a
// plan in a group at most once.
type GroupPlanModel struct {
	PlanWithGroupID uint      `gorm:"primaryKey;column:plan_with_group_id"`
	PlanID          uint      `gorm:"column:plan_id;not null;uniqueIndex:idx_plan_group"`
	GroupID         uint      `gorm:"column:group_id;not null;uniqueIndex:idx_plan_group"`
	UserCreated     uint      `gorm:"column:user_created;not null"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (GroupPlanModel) TableName() string { return "plan_with_group" }
