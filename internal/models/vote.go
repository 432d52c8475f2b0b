package models

import "time"

// Vote is a partner's single endorsement of a deal. At most one per
// (deal, user) pair, enforced by the unique_user_deal_vote constraint.
type Vote struct {
	ID        int       `json:"id"`
	DealID    int       `json:"deal_id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
