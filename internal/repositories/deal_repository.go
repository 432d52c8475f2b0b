package repositories

import (
	"database/sql"
	"fmt"

	"dealpipeline/internal/models"
)

type DealRepository interface {
	// Create inserts the deal and its initial activity atomically.
	Create(deal *models.Deal, initial *models.Activity) error
	GetByID(id int) (*models.Deal, error)
	// Update writes the full row; when stageChange is non-nil it is appended
	// in the same transaction.
	Update(deal *models.Deal, stageChange *models.Activity) error
	// UpdateStatus sets status and appends the decision activity atomically.
	UpdateStatus(id int, status string, activity *models.Activity) error
	// DeleteCascade removes the deal together with its votes, activities,
	// memo and memo versions. Returns false when the deal does not exist.
	DeleteCascade(id int) (bool, error)
	List(stage string, limit, offset int) ([]*models.Deal, error)
}

type dealRepository struct {
	db *sql.DB
}

func NewDealRepository(db *sql.DB) DealRepository {
	return &dealRepository{db: db}
}

const dealColumns = `id, name, company_url, owner_id, stage, round, check_size, status, created_at, updated_at`

func scanDeal(row interface{ Scan(...any) error }) (*models.Deal, error) {
	d := &models.Deal{}
	var (
		companyURL sql.NullString
		round      sql.NullString
		checkSize  sql.NullString
		updatedAt  sql.NullTime
	)
	err := row.Scan(&d.ID, &d.Name, &companyURL, &d.OwnerID, &d.Stage, &round, &checkSize, &d.Status, &d.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	d.CompanyURL = companyURL.String
	d.Round = round.String
	d.CheckSize = checkSize.String
	if updatedAt.Valid {
		t := updatedAt.Time
		d.UpdatedAt = &t
	}
	return d, nil
}

func (r *dealRepository) Create(deal *models.Deal, initial *models.Activity) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO deals (name, company_url, owner_id, stage, round, check_size, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`
		err := tx.QueryRow(q,
			deal.Name,
			deal.CompanyURL,
			deal.OwnerID,
			deal.Stage,
			deal.Round,
			deal.CheckSize,
			deal.Status,
			deal.CreatedAt,
		).Scan(&deal.ID)
		if err != nil {
			return fmt.Errorf("insert deal: %w", err)
		}
		initial.DealID = deal.ID
		return insertActivity(tx, initial)
	})
}

func (r *dealRepository) GetByID(id int) (*models.Deal, error) {
	const q = `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	deal, err := scanDeal(r.db.QueryRow(q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get deal by id: %w", err)
	}
	return deal, nil
}

func (r *dealRepository) Update(deal *models.Deal, stageChange *models.Activity) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		const q = `
			UPDATE deals
			SET name=$1, company_url=$2, stage=$3, round=$4, check_size=$5, status=$6, updated_at=NOW()
			WHERE id=$7
			RETURNING updated_at
		`
		var updatedAt sql.NullTime
		err := tx.QueryRow(q,
			deal.Name,
			deal.CompanyURL,
			deal.Stage,
			deal.Round,
			deal.CheckSize,
			deal.Status,
			deal.ID,
		).Scan(&updatedAt)
		if err != nil {
			return fmt.Errorf("update deal: %w", err)
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			deal.UpdatedAt = &t
		}
		if stageChange != nil {
			return insertActivity(tx, stageChange)
		}
		return nil
	})
}

func (r *dealRepository) UpdateStatus(id int, status string, activity *models.Activity) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		const q = `UPDATE deals SET status=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(q, status, id); err != nil {
			return fmt.Errorf("update deal status: %w", err)
		}
		return insertActivity(tx, activity)
	})
}

func (r *dealRepository) DeleteCascade(id int) (bool, error) {
	found := false
	err := withTx(r.db, func(tx *sql.Tx) error {
		// Children first so no orphan row can survive a partial failure.
		steps := []string{
			`DELETE FROM memo_versions WHERE memo_id IN (SELECT id FROM memos WHERE deal_id = $1)`,
			`DELETE FROM memos WHERE deal_id = $1`,
			`DELETE FROM votes WHERE deal_id = $1`,
			`DELETE FROM activities WHERE deal_id = $1`,
		}
		for _, q := range steps {
			if _, err := tx.Exec(q, id); err != nil {
				return fmt.Errorf("cascade delete: %w", err)
			}
		}
		res, err := tx.Exec(`DELETE FROM deals WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete deal: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete deal: %w", err)
		}
		found = affected > 0
		return nil
	})
	return found, err
}

func (r *dealRepository) List(stage string, limit, offset int) ([]*models.Deal, error) {
	q := `SELECT ` + dealColumns + ` FROM deals`
	args := []interface{}{}
	if stage != "" {
		q += ` WHERE stage = $1`
		args = append(args, stage)
	}
	q += fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	var deals []*models.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}
