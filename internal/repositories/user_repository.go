package repositories

import (
	"database/sql"
	"fmt"

	"dealpipeline/internal/models"
)

type UserRepository interface {
	// Create fails with ErrDuplicate when the email is already registered.
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List(limit, offset int) ([]*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, role, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	var (
		fullName  sql.NullString
		updatedAt sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &fullName, &u.Role, &u.IsActive, &u.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	u.FullName = fullName.String
	if updatedAt.Valid {
		t := updatedAt.Time
		u.UpdatedAt = &t
	}
	return u, nil
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (email, password_hash, full_name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(q, user.Email, user.PasswordHash, user.FullName, user.Role, user.IsActive).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *userRepository) Update(user *models.User) error {
	const q = `
		UPDATE users
		SET email=$1, password_hash=$2, full_name=$3, role=$4, is_active=$5, updated_at=NOW()
		WHERE id=$6
	`
	_, err := r.db.Exec(q, user.Email, user.PasswordHash, user.FullName, user.Role, user.IsActive, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}
	return res, rows.Err()
}
