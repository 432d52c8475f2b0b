package models

import "time"

// MemoFields are the free-text sections shared by the current memo and
// every historical version of it.
type MemoFields struct {
	Summary       string `json:"summary"`
	Market        string `json:"market"`
	Product       string `json:"product"`
	Traction      string `json:"traction"`
	Risks         string `json:"risks"`
	OpenQuestions string `json:"open_questions"`
}

type Memo struct {
	ID          int        `json:"id"`
	DealID      int        `json:"deal_id"`
	CreatedByID int        `json:"created_by_id"`
	MemoFields
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// MemoVersion is an immutable snapshot of a memo's fields as they were
// before an update. Version numbers per memo are contiguous from 1.
type MemoVersion struct {
	ID            int `json:"id"`
	MemoID        int `json:"memo_id"`
	VersionNumber int `json:"version_number"`
	MemoFields
	CreatedByID int       `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type MemoCreate struct {
	DealID int `json:"deal_id" binding:"required"`
	MemoFields
}

// MemoUpdate carries partial updates. Absent fields are left untouched;
// an explicit null clears the section.
type MemoUpdate struct {
	Summary       Optional[string] `json:"summary"`
	Market        Optional[string] `json:"market"`
	Product       Optional[string] `json:"product"`
	Traction      Optional[string] `json:"traction"`
	Risks         Optional[string] `json:"risks"`
	OpenQuestions Optional[string] `json:"open_questions"`
}

// Apply overlays the set fields onto f. A null field overwrites with "".
func (u *MemoUpdate) Apply(f *MemoFields) {
	if u.Summary.Set {
		f.Summary = u.Summary.Value
	}
	if u.Market.Set {
		f.Market = u.Market.Value
	}
	if u.Product.Set {
		f.Product = u.Product.Value
	}
	if u.Traction.Set {
		f.Traction = u.Traction.Value
	}
	if u.Risks.Set {
		f.Risks = u.Risks.Value
	}
	if u.OpenQuestions.Set {
		f.OpenQuestions = u.OpenQuestions.Value
	}
}
