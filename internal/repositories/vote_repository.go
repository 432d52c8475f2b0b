package repositories

import (
	"database/sql"
	"fmt"

	"dealpipeline/internal/models"
)

type VoteRepository interface {
	// Create inserts the vote and its audit activity atomically. A second
	// vote for the same (deal, user) pair fails with ErrDuplicate via the
	// unique_user_deal_vote constraint, even under concurrent inserts.
	Create(vote *models.Vote, activity *models.Activity) error
	GetByDealAndUser(dealID, userID int) (*models.Vote, error)
	ListByDeal(dealID int) ([]*models.Vote, error)
}

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *models.Vote, activity *models.Activity) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO votes (deal_id, user_id, created_at)
			VALUES ($1, $2, NOW())
			RETURNING id, created_at
		`
		err := tx.QueryRow(q, vote.DealID, vote.UserID).Scan(&vote.ID, &vote.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("insert vote: %w", err)
		}
		return insertActivity(tx, activity)
	})
}

func (r *voteRepository) GetByDealAndUser(dealID, userID int) (*models.Vote, error) {
	const q = `
		SELECT id, deal_id, user_id, created_at
		FROM votes
		WHERE deal_id = $1 AND user_id = $2
	`
	v := &models.Vote{}
	err := r.db.QueryRow(q, dealID, userID).Scan(&v.ID, &v.DealID, &v.UserID, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vote: %w", err)
	}
	return v, nil
}

func (r *voteRepository) ListByDeal(dealID int) ([]*models.Vote, error) {
	const q = `SELECT id, deal_id, user_id, created_at FROM votes WHERE deal_id = $1`
	rows, err := r.db.Query(q, dealID)
	if err != nil {
		return nil, fmt.Errorf("list votes: %w", err)
	}
	defer rows.Close()

	var votes []*models.Vote
	for rows.Next() {
		v := &models.Vote{}
		if err := rows.Scan(&v.ID, &v.DealID, &v.UserID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}
