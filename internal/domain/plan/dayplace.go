package plan

import (
	"fmt"

	vo "tripwise/internal/domain/plan/valueobjects"
)

// DayPlace is one day's location context within a plan. Day numbers are
// stored as strings ("1", "2", ...) and are free-form after creation.
type DayPlace struct {
	id       uint
	ngay     string
	location vo.Location
	jsonData vo.ExtraData
	planID   uint
}

// NewDayPlace creates a day place under a plan.
func NewDayPlace(ngay string, location vo.Location, jsonData vo.ExtraData, planID uint) (*DayPlace, error) {
	if ngay == "" {
		return nil, fmt.Errorf("day number is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	return &DayPlace{
		ngay:     ngay,
		location: location,
		jsonData: jsonData,
		planID:   planID,
	}, nil
}

// ReconstructDayPlace rebuilds a day place from storage.
func ReconstructDayPlace(id uint, ngay string, location vo.Location, jsonData vo.ExtraData, planID uint) (*DayPlace, error) {
	if id == 0 {
		return nil, fmt.Errorf("day place ID cannot be zero")
	}
	return &DayPlace{
		id:       id,
		ngay:     ngay,
		location: location,
		jsonData: jsonData,
		planID:   planID,
	}, nil
}

func (d *DayPlace) ID() uint               { return d.id }
func (d *DayPlace) Ngay() string           { return d.ngay }
func (d *DayPlace) Location() vo.Location  { return d.location }
func (d *DayPlace) JSONData() vo.ExtraData { return d.jsonData }
func (d *DayPlace) PlanID() uint           { return d.planID }

// SetID assigns the storage identifier after insert.
func (d *DayPlace) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("day place ID already set")
	}
	if id == 0 {
		return fmt.Errorf("day place ID cannot be zero")
	}
	d.id = id
	return nil
}
