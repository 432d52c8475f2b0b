package models

import (
	"fmt"
	"time"
)

const (
	ActivityStageChange = "stage_change"
	ActivityComment     = "comment"
	ActivityVote        = "vote"
	ActivityApproval    = "approval"
	ActivityDecline     = "decline"
	ActivityMemoUpdated = "memo_updated"
)

// Activity is an append-only audit record. Rows are never updated or
// deleted except by the deal delete cascade.
type Activity struct {
	ID           int       `json:"id"`
	DealID       int       `json:"deal_id"`
	UserID       int       `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// Builders below keep the audit descriptions in one place; every mutation
// in the workflow goes through exactly one of them.

func DealCreatedActivity(dealID, userID int, stage string) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityStageChange,
		Description:  fmt.Sprintf("Deal created in %s stage", stage),
	}
}

func StageChangeActivity(dealID, userID int, from, to string) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityStageChange,
		Description:  fmt.Sprintf("Moved from %s to %s", from, to),
	}
}

func CommentActivity(dealID, userID int, comment string) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityComment,
		Description:  comment,
	}
}

func VoteCastActivity(dealID, userID int) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityVote,
		Description:  "Voted on this deal",
	}
}

func ApprovalActivity(dealID, userID int) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityApproval,
		Description:  "Approved this deal",
	}
}

func DeclineActivity(dealID, userID int) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityDecline,
		Description:  "Declined this deal",
	}
}

func MemoUpdatedActivity(dealID, userID, version int) *Activity {
	return &Activity{
		DealID:       dealID,
		UserID:       userID,
		ActivityType: ActivityMemoUpdated,
		Description:  fmt.Sprintf("Memo updated (version %d)", version),
	}
}
