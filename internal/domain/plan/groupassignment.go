package plan

import (
	"fmt"
	"time"
)

// GroupAssignment records that a travel group has adopted a plan.
// A group holds at most one plan; the storage layer enforces uniqueness
// on (plan, group).
type GroupAssignment struct {
	id          uint
	planID      uint
	groupID     uint
	userCreated uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewGroupAssignment creates a plan-group association.
func NewGroupAssignment(planID, groupID, userCreated uint) (*GroupAssignment, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if groupID == 0 {
		return nil, fmt.Errorf("group ID is required")
	}
	if userCreated == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	now := time.Now()
	return &GroupAssignment{
		planID:      planID,
		groupID:     groupID,
		userCreated: userCreated,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructGroupAssignment rebuilds an association from storage.
func ReconstructGroupAssignment(id, planID, groupID, userCreated uint, createdAt, updatedAt time.Time) (*GroupAssignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("group assignment ID cannot be zero")
	}
	return &GroupAssignment{
		id:          id,
		planID:      planID,
		groupID:     groupID,
		userCreated: userCreated,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (g *GroupAssignment) ID() uint             { return g.id }
func (g *GroupAssignment) PlanID() uint         { return g.planID }
func (g *GroupAssignment) GroupID() uint        { return g.groupID }
func (g *GroupAssignment) UserCreated() uint    { return g.userCreated }
func (g *GroupAssignment) CreatedAt() time.Time { return g.createdAt }
func (g *GroupAssignment) UpdatedAt() time.Time { return g.updatedAt }

// SetID assigns the storage identifier after insert.
func (g *GroupAssignment) SetID(id uint) error {
	if g.id != 0 {
		return fmt.Errorf("group assignment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("group assignment ID cannot be zero")
	}
	g.id = id
	return nil
}
