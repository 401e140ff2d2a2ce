package plan

import (
	"fmt"
	"time"

	vo "tripwise/internal/domain/plan/valueobjects"
)

// Schedule is a timed activity nested under a day place. Start and end
// times are optional and independently nullable; no ordering between them
// is enforced.
type Schedule struct {
	id          uint
	name        string
	description *string
	startTime   *time.Time
	endTime     *time.Time
	location    vo.Location
	jsonData    vo.ExtraData
	activityID  *uint
	dayPlaceID  uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSchedule creates a schedule under a day place.
func NewSchedule(
	name string,
	description *string,
	startTime, endTime *time.Time,
	location vo.Location,
	jsonData vo.ExtraData,
	activityID *uint,
	dayPlaceID uint,
) (*Schedule, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if dayPlaceID == 0 {
		return nil, fmt.Errorf("day place ID is required")
	}

	now := time.Now()
	return &Schedule{
		name:        name,
		description: description,
		startTime:   startTime,
		endTime:     endTime,
		location:    location,
		jsonData:    jsonData,
		activityID:  activityID,
		dayPlaceID:  dayPlaceID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructSchedule rebuilds a schedule from storage.
func ReconstructSchedule(
	id uint,
	name string,
	description *string,
	startTime, endTime *time.Time,
	location vo.Location,
	jsonData vo.ExtraData,
	activityID *uint,
	dayPlaceID uint,
	createdAt, updatedAt time.Time,
) (*Schedule, error) {
	if id == 0 {
		return nil, fmt.Errorf("schedule ID cannot be zero")
	}
	return &Schedule{
		id:          id,
		name:        name,
		description: description,
		startTime:   startTime,
		endTime:     endTime,
		location:    location,
		jsonData:    jsonData,
		activityID:  activityID,
		dayPlaceID:  dayPlaceID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Schedule) ID() uint               { return s.id }
func (s *Schedule) Name() string           { return s.name }
func (s *Schedule) Description() *string   { return s.description }
func (s *Schedule) StartTime() *time.Time  { return s.startTime }
func (s *Schedule) EndTime() *time.Time    { return s.endTime }
func (s *Schedule) Location() vo.Location  { return s.location }
func (s *Schedule) JSONData() vo.ExtraData { return s.jsonData }
func (s *Schedule) ActivityID() *uint      { return s.activityID }
func (s *Schedule) DayPlaceID() uint       { return s.dayPlaceID }
func (s *Schedule) CreatedAt() time.Time   { return s.createdAt }
func (s *Schedule) UpdatedAt() time.Time   { return s.updatedAt }

// SetID assigns the storage identifier after insert.
func (s *Schedule) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("schedule ID already set")
	}
	if id == 0 {
		return fmt.Errorf("schedule ID cannot be zero")
	}
	s.id = id
	return nil
}
