package plan

import (
	"fmt"
	"time"

	vo "tripwise/internal/domain/plan/valueobjects"
	"tripwise/internal/shared/utils/vnchar"
)

// Plan is a trip plan owned by exactly one user.
type Plan struct {
	id           uint
	name         string
	description  *string
	thumbnailURL *string
	location     vo.Location
	jsonData     vo.ExtraData
	status       vo.PlanStatus
	userCreated  uint
	groupCount   int64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPlan creates a plan. Status defaults to private when empty and the
// name_khong_dau search key is derived from the name when absent.
func NewPlan(
	name string,
	description *string,
	thumbnailURL *string,
	location vo.Location,
	status vo.PlanStatus,
	jsonData vo.ExtraData,
	userCreated uint,
) (*Plan, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if userCreated == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if status == "" {
		status = vo.StatusPrivate
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}
	if jsonData.NameKhongDau == "" {
		jsonData = jsonData.WithNameKhongDau(vnchar.Slug(name))
	}

	now := time.Now()
	return &Plan{
		name:         name,
		description:  description,
		thumbnailURL: thumbnailURL,
		location:     location,
		jsonData:     jsonData,
		status:       status,
		userCreated:  userCreated,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPlan rebuilds a plan from storage.
func ReconstructPlan(
	id uint,
	name string,
	description *string,
	thumbnailURL *string,
	location vo.Location,
	jsonData vo.ExtraData,
	status vo.PlanStatus,
	userCreated uint,
	groupCount int64,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	return &Plan{
		id:           id,
		name:         name,
		description:  description,
		thumbnailURL: thumbnailURL,
		location:     location,
		jsonData:     jsonData,
		status:       status,
		userCreated:  userCreated,
		groupCount:   groupCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint                   { return p.id }
func (p *Plan) Name() string               { return p.name }
func (p *Plan) Description() *string       { return p.description }
func (p *Plan) ThumbnailURL() *string      { return p.thumbnailURL }
func (p *Plan) Location() vo.Location      { return p.location }
func (p *Plan) JSONData() vo.ExtraData     { return p.jsonData }
func (p *Plan) Status() vo.PlanStatus      { return p.status }
func (p *Plan) UserCreated() uint          { return p.userCreated }
func (p *Plan) GroupCount() int64          { return p.groupCount }
func (p *Plan) CreatedAt() time.Time       { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time       { return p.updatedAt }

// SetID assigns the storage identifier after insert.
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsOwnedBy reports whether userID created this plan. Mutations require
// strict equality; there is no role or group based override.
func (p *Plan) IsOwnedBy(userID uint) bool {
	return p.userCreated == userID
}

// IsVisibleTo reports whether userID may read this plan: public plans are
// visible to everyone, private plans only to their creator.
func (p *Plan) IsVisibleTo(userID uint) bool {
	return p.status.IsPublic() || p.IsOwnedBy(userID)
}
