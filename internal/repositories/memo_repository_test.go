package repositories_test

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"dealpipeline/internal/models"
	"dealpipeline/internal/repositories"
)

var memoCols = []string{"id", "deal_id", "created_by_id", "summary", "market", "product", "traction", "risks", "open_questions", "created_at", "updated_at"}

func TestMemoRepositoryCreate_WritesVersionOne(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO memos`).
		WithArgs(1, 4, "strong team", "fintech", "", "", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, createdAt))
	mock.ExpectExec(`INSERT INTO memo_versions`).
		WithArgs(11, 1, "strong team", "fintech", "", "", "", "", 4).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := repositories.NewMemoRepository(db)
	memo := &models.Memo{
		DealID:      1,
		CreatedByID: 4,
		MemoFields:  models.MemoFields{Summary: "strong team", Market: "fintech"},
	}
	require.NoError(t, repo.Create(memo))
	require.Equal(t, 11, memo.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoRepositoryCreate_DuplicateDealRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO memos`).
		WithArgs(1, 4, "", "", "", "", "", "").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "memos_deal_id_key"})
	mock.ExpectRollback()

	repo := repositories.NewMemoRepository(db)
	err = repo.Create(&models.Memo{DealID: 1, CreatedByID: 4})
	require.ErrorIs(t, err, repositories.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}

// The update transaction must lock the memo row, compute the next version
// from the existing maximum, snapshot the pre-update field values, apply
// the partial update and append the audit row, in that order.
func TestMemoRepositoryUpdate_SnapshotsPreUpdateState(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM memos WHERE id = \$1 FOR UPDATE`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(memoCols).
			AddRow(11, 1, 4, "old summary", "fintech", "ledger", "10 pilots", "churn", "pricing?", createdAt, nil))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version_number\), 0\) \+ 1 FROM memo_versions`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	// snapshot carries the pre-update values, not the incoming ones
	mock.ExpectExec(`INSERT INTO memo_versions`).
		WithArgs(11, 3, "old summary", "fintech", "ledger", "10 pilots", "churn", "pricing?", 7).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(`UPDATE memos`).
		WithArgs("new summary", "fintech", "ledger", "10 pilots", "", "pricing?", 11).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))
	mock.ExpectQuery(`INSERT INTO activities`).
		WithArgs(1, 7, models.ActivityMemoUpdated, "Memo updated (version 3)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(99, updatedAt))
	mock.ExpectCommit()

	repo := repositories.NewMemoRepository(db)
	upd := &models.MemoUpdate{
		Summary: models.Opt("new summary"),
		Risks:   models.OptNull[string](),
	}
	memo, version, err := repo.Update(11, upd, 7)
	require.NoError(t, err)
	require.Equal(t, 3, version)
	require.Equal(t, "new summary", memo.Summary)
	require.Equal(t, "", memo.Risks)
	require.Equal(t, "fintech", memo.Market)
	require.NotNil(t, memo.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoRepositoryUpdate_FirstUpdateAssignsVersionTwo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM memos WHERE id = \$1 FOR UPDATE`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(memoCols).
			AddRow(11, 1, 4, "v1 summary", "", "", "", "", "", createdAt, nil))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(version_number\), 0\) \+ 1 FROM memo_versions`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(2))
	mock.ExpectExec(`INSERT INTO memo_versions`).
		WithArgs(11, 2, "v1 summary", "", "", "", "", "", 7).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery(`UPDATE memos`).
		WithArgs("v2 summary", "", "", "", "", "", 11).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(createdAt))
	mock.ExpectQuery(`INSERT INTO activities`).
		WithArgs(1, 7, models.ActivityMemoUpdated, "Memo updated (version 2)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(100, createdAt))
	mock.ExpectCommit()

	repo := repositories.NewMemoRepository(db)
	_, version, err := repo.Update(11, &models.MemoUpdate{Summary: models.Opt("v2 summary")}, 7)
	require.NoError(t, err)
	require.Equal(t, 2, version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoRepositoryUpdate_MissingMemo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM memos WHERE id = \$1 FOR UPDATE`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(memoCols))
	mock.ExpectCommit()

	repo := repositories.NewMemoRepository(db)
	memo, version, err := repo.Update(42, &models.MemoUpdate{}, 7)
	require.NoError(t, err)
	require.Nil(t, memo)
	require.Equal(t, 0, version)
	require.NoError(t, mock.ExpectationsWereMet())
}
