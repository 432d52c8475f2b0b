package repositories

import (
	"database/sql"
	"fmt"

	"dealpipeline/internal/models"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	ListByDeal(dealID, limit, offset int) ([]*models.Activity, error)
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// insertActivity appends one audit row inside the caller's transaction.
// Shared by the deal, vote and memo repositories.
func insertActivity(tx *sql.Tx, a *models.Activity) error {
	const q = `
		INSERT INTO activities (deal_id, user_id, activity_type, description, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	if err := tx.QueryRow(q, a.DealID, a.UserID, a.ActivityType, a.Description).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		return insertActivity(tx, activity)
	})
}

func (r *activityRepository) ListByDeal(dealID, limit, offset int) ([]*models.Activity, error) {
	const q = `
		SELECT id, deal_id, user_id, activity_type, description, created_at
		FROM activities
		WHERE deal_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(q, dealID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var res []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		if err := rows.Scan(&a.ID, &a.DealID, &a.UserID, &a.ActivityType, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		res = append(res, a)
	}
	return res, rows.Err()
}
