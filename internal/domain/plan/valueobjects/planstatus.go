package valueobjects

import "fmt"

// PlanStatus controls plan visibility.
type PlanStatus string

const (
	StatusPublic  PlanStatus = "public"
	StatusPrivate PlanStatus = "private"
)

// NewPlanStatus parses a status string. Empty defaults to private.
func NewPlanStatus(s string) (PlanStatus, error) {
	if s == "" {
		return StatusPrivate, nil
	}
	status := PlanStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid plan status: %s", s)
	}
	return status, nil
}

func (s PlanStatus) IsValid() bool {
	return s == StatusPublic || s == StatusPrivate
}

func (s PlanStatus) IsPublic() bool {
	return s == StatusPublic
}

func (s PlanStatus) String() string {
	return string(s)
}
