package repositories

import (
	"database/sql"
	"fmt"

	"dealpipeline/internal/models"
)

type MemoRepository interface {
	// Create inserts the memo and its version-1 snapshot atomically. A
	// second memo for the same deal fails with ErrDuplicate via the unique
	// constraint on deal_id.
	Create(memo *models.Memo) error
	// Update snapshots the pre-update fields as the next version, applies
	// the partial update and appends the memo_updated activity, all in one
	// transaction holding a row lock on the memo so concurrent updates
	// serialize version assignment. Returns (nil, 0, nil) when the memo
	// does not exist, otherwise the updated memo and the version number
	// assigned to the snapshot.
	Update(memoID int, update *models.MemoUpdate, actorID int) (*models.Memo, int, error)
	GetByID(memoID int) (*models.Memo, error)
	GetByDeal(dealID int) (*models.Memo, error)
	ListVersions(memoID int) ([]*models.MemoVersion, error)
	GetVersion(versionID int) (*models.MemoVersion, error)
}

type memoRepository struct {
	db *sql.DB
}

func NewMemoRepository(db *sql.DB) MemoRepository {
	return &memoRepository{db: db}
}

const memoColumns = `id, deal_id, created_by_id, summary, market, product, traction, risks, open_questions, created_at, updated_at`

func scanMemo(row interface{ Scan(...any) error }) (*models.Memo, error) {
	m := &models.Memo{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&m.ID, &m.DealID, &m.CreatedByID,
		&m.Summary, &m.Market, &m.Product, &m.Traction, &m.Risks, &m.OpenQuestions,
		&m.CreatedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		m.UpdatedAt = &t
	}
	return m, nil
}

func insertVersion(tx *sql.Tx, memoID, versionNumber int, fields models.MemoFields, createdByID int) error {
	const q = `
		INSERT INTO memo_versions (memo_id, version_number, summary, market, product, traction, risks, open_questions, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err := tx.Exec(q,
		memoID, versionNumber,
		fields.Summary, fields.Market, fields.Product, fields.Traction, fields.Risks, fields.OpenQuestions,
		createdByID,
	)
	if err != nil {
		return fmt.Errorf("insert memo version: %w", err)
	}
	return nil
}

func (r *memoRepository) Create(memo *models.Memo) error {
	return withTx(r.db, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO memos (deal_id, created_by_id, summary, market, product, traction, risks, open_questions, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			RETURNING id, created_at
		`
		err := tx.QueryRow(q,
			memo.DealID, memo.CreatedByID,
			memo.Summary, memo.Market, memo.Product, memo.Traction, memo.Risks, memo.OpenQuestions,
		).Scan(&memo.ID, &memo.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("insert memo: %w", err)
		}
		return insertVersion(tx, memo.ID, 1, memo.MemoFields, memo.CreatedByID)
	})
}

func (r *memoRepository) Update(memoID int, update *models.MemoUpdate, actorID int) (*models.Memo, int, error) {
	var (
		memo    *models.Memo
		version int
	)
	err := withTx(r.db, func(tx *sql.Tx) error {
		const lockQ = `SELECT ` + memoColumns + ` FROM memos WHERE id = $1 FOR UPDATE`
		m, err := scanMemo(tx.QueryRow(lockQ, memoID))
		if err == sql.ErrNoRows {
			return nil // memo stays nil, caller reports not found
		}
		if err != nil {
			return fmt.Errorf("lock memo: %w", err)
		}

		const nextQ = `SELECT COALESCE(MAX(version_number), 0) + 1 FROM memo_versions WHERE memo_id = $1`
		if err := tx.QueryRow(nextQ, memoID).Scan(&version); err != nil {
			return fmt.Errorf("next version: %w", err)
		}

		// Snapshot the pre-update state, then apply the partial update.
		if err := insertVersion(tx, memoID, version, m.MemoFields, actorID); err != nil {
			return err
		}
		update.Apply(&m.MemoFields)

		const updQ = `
			UPDATE memos
			SET summary=$1, market=$2, product=$3, traction=$4, risks=$5, open_questions=$6, updated_at=NOW()
			WHERE id=$7
			RETURNING updated_at
		`
		var updatedAt sql.NullTime
		err = tx.QueryRow(updQ,
			m.Summary, m.Market, m.Product, m.Traction, m.Risks, m.OpenQuestions, memoID,
		).Scan(&updatedAt)
		if err != nil {
			return fmt.Errorf("update memo: %w", err)
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			m.UpdatedAt = &t
		}

		if err := insertActivity(tx, models.MemoUpdatedActivity(m.DealID, actorID, version)); err != nil {
			return err
		}
		memo = m
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if memo == nil {
		return nil, 0, nil
	}
	return memo, version, nil
}

func (r *memoRepository) GetByID(memoID int) (*models.Memo, error) {
	const q = `SELECT ` + memoColumns + ` FROM memos WHERE id = $1`
	m, err := scanMemo(r.db.QueryRow(q, memoID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get memo: %w", err)
	}
	return m, nil
}

func (r *memoRepository) GetByDeal(dealID int) (*models.Memo, error) {
	const q = `SELECT ` + memoColumns + ` FROM memos WHERE deal_id = $1`
	m, err := scanMemo(r.db.QueryRow(q, dealID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get memo by deal: %w", err)
	}
	return m, nil
}

const versionColumns = `id, memo_id, version_number, summary, market, product, traction, risks, open_questions, created_by_id, created_at`

func scanVersion(row interface{ Scan(...any) error }) (*models.MemoVersion, error) {
	v := &models.MemoVersion{}
	err := row.Scan(
		&v.ID, &v.MemoID, &v.VersionNumber,
		&v.Summary, &v.Market, &v.Product, &v.Traction, &v.Risks, &v.OpenQuestions,
		&v.CreatedByID, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *memoRepository) ListVersions(memoID int) ([]*models.MemoVersion, error) {
	const q = `SELECT ` + versionColumns + ` FROM memo_versions WHERE memo_id = $1 ORDER BY version_number DESC`
	rows, err := r.db.Query(q, memoID)
	if err != nil {
		return nil, fmt.Errorf("list memo versions: %w", err)
	}
	defer rows.Close()

	var versions []*models.MemoVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan memo version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func (r *memoRepository) GetVersion(versionID int) (*models.MemoVersion, error) {
	const q = `SELECT ` + versionColumns + ` FROM memo_versions WHERE id = $1`
	v, err := scanVersion(r.db.QueryRow(q, versionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get memo version: %w", err)
	}
	return v, nil
}
