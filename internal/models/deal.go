package models

import "time"

// Pipeline stages, in pipeline order. "passed" is the off-ramp.
const (
	StageSourced   = "sourced"
	StageScreen    = "screen"
	StageDiligence = "diligence"
	StageIC        = "ic"
	StageInvested  = "invested"
	StagePassed    = "passed"
)

// Status is the decision outcome, independent of stage.
const (
	StatusActive   = "active"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

type Deal struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	CompanyURL string     `json:"company_url"`
	OwnerID    int        `json:"owner_id"`
	Stage      string     `json:"stage"`
	Round      string     `json:"round"`
	CheckSize  string     `json:"check_size"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func IsValidStage(stage string) bool {
	switch stage {
	case StageSourced, StageScreen, StageDiligence, StageIC, StageInvested, StagePassed:
		return true
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

type DealCreate struct {
	Name       string `json:"name" binding:"required"`
	CompanyURL string `json:"company_url"`
	Stage      string `json:"stage"`
	Round      string `json:"round"`
	CheckSize  string `json:"check_size"`
}

// DealUpdate carries partial updates. Absent fields are left untouched;
// an explicit null clears the field.
type DealUpdate struct {
	Name       Optional[string] `json:"name"`
	CompanyURL Optional[string] `json:"company_url"`
	Stage      Optional[string] `json:"stage"`
	Round      Optional[string] `json:"round"`
	CheckSize  Optional[string] `json:"check_size"`
	Status     Optional[string] `json:"status"`
}
