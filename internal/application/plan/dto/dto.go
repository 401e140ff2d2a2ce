// Package dto defines the serializable shapes the plan use cases return to
// the interface layer.
package dto

import (
	"time"

	"tripwise/internal/domain/plan"
)

type PlanDTO struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Description  *string                `json:"description"`
	ThumbnailURL *string                `json:"thumbnail_url"`
	Location     map[string]interface{} `json:"location"`
	JSONData     map[string]interface{} `json:"json_data"`
	Status       string                 `json:"status"`
	UserCreated  uint                   `json:"user_created"`
	GroupCount   int64                  `json:"group_count"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func PlanToDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		ThumbnailURL: p.ThumbnailURL(),
		Location:     p.Location().ToMap(),
		JSONData:     p.JSONData().ToMap(),
		Status:       p.Status().String(),
		UserCreated:  p.UserCreated(),
		GroupCount:   p.GroupCount(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func PlansToDTOs(plans []*plan.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, PlanToDTO(p))
	}
	return dtos
}

type ScheduleDTO struct {
	ID          uint                   `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	StartTime   *time.Time             `json:"start_time"`
	EndTime     *time.Time             `json:"end_time"`
	Location    map[string]interface{} `json:"location"`
	JSONData    map[string]interface{} `json:"json_data"`
	ActivityID  *uint                  `json:"activity_id"`
	DayPlaceID  uint                   `json:"plan_day_place_id"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func ScheduleToDTO(s *plan.Schedule) *ScheduleDTO {
	if s == nil {
		return nil
	}
	return &ScheduleDTO{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		StartTime:   s.StartTime(),
		EndTime:     s.EndTime(),
		Location:    s.Location().ToMap(),
		JSONData:    s.JSONData().ToMap(),
		ActivityID:  s.ActivityID(),
		DayPlaceID:  s.DayPlaceID(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func SchedulesToDTOs(schedules []*plan.Schedule) []*ScheduleDTO {
	dtos := make([]*ScheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		dtos = append(dtos, ScheduleToDTO(s))
	}
	return dtos
}

type DayPlaceDTO struct {
	ID        uint                   `json:"id"`
	Ngay      string                 `json:"ngay"`
	Location  map[string]interface{} `json:"location"`
	JSONData  map[string]interface{} `json:"json_data"`
	PlanID    uint                   `json:"plan_id"`
	Schedules []*ScheduleDTO         `json:"schedules,omitempty"`
}

func DayPlaceToDTO(dp *plan.DayPlace) *DayPlaceDTO {
	if dp == nil {
		return nil
	}
	return &DayPlaceDTO{
		ID:       dp.ID(),
		Ngay:     dp.Ngay(),
		Location: dp.Location().ToMap(),
		JSONData: dp.JSONData().ToMap(),
		PlanID:   dp.PlanID(),
	}
}

func DayPlaceToDTOWithSchedules(dp *plan.DayPlace, schedules []*plan.Schedule) *DayPlaceDTO {
	d := DayPlaceToDTO(dp)
	if d == nil {
		return nil
	}
	d.Schedules = SchedulesToDTOs(schedules)
	return d
}

func DayPlacesToDTOs(dayPlaces []*plan.DayPlace) []*DayPlaceDTO {
	dtos := make([]*DayPlaceDTO, 0, len(dayPlaces))
	for _, dp := range dayPlaces {
		dtos = append(dtos, DayPlaceToDTO(dp))
	}
	return dtos
}

type GroupAssignmentDTO struct {
	ID          uint      `json:"id"`
	PlanID      uint      `json:"plan_id"`
	GroupID     uint      `json:"group_id"`
	UserCreated uint      `json:"user_created"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func GroupAssignmentToDTO(ga *plan.GroupAssignment) *GroupAssignmentDTO {
	if ga == nil {
		return nil
	}
	return &GroupAssignmentDTO{
		ID:          ga.ID(),
		PlanID:      ga.PlanID(),
		GroupID:     ga.GroupID(),
		UserCreated: ga.UserCreated(),
		CreatedAt:   ga.CreatedAt(),
		UpdatedAt:   ga.UpdatedAt(),
	}
}

// PlanDetailsDTO is the detail view: the plan plus its day places, each with
// its schedules attached.
type PlanDetailsDTO struct {
	Plan      *PlanDTO       `json:"plan"`
	DayPlaces []*DayPlaceDTO `json:"day_places"`
}
