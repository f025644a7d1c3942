package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

const userColumns = `id, fullname, email, phone_number, hashed_password, role, profile, created_at, updated_at`

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	profile, err := json.Marshal(user.Profile)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Create: marshal profile: %w", err)
	}
	query := `INSERT INTO users (id, fullname, email, phone_number, hashed_password, role, profile)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecContext(ctx, query,
		user.ID, user.Fullname, user.Email, user.PhoneNumber, user.HashedPassword, user.Role, profile,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("user already exists with this email: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByEmail: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}

// Update persists the mutable fields of an existing user. Password and
// role are never written by this path.
func (r *pgUserRepository) Update(ctx context.Context, user *model.User) error {
	profile, err := json.Marshal(user.Profile)
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: marshal profile: %w", err)
	}
	query := `UPDATE users
	          SET fullname = $2, email = $3, phone_number = $4, profile = $5, updated_at = now()
	          WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Fullname, user.Email, user.PhoneNumber, profile,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user already exists with this email: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgUserRepository.Update: %w", err)
	}
	if rows == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgUserRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var profile []byte
	err := row.Scan(
		&user.ID, &user.Fullname, &user.Email, &user.PhoneNumber,
		&user.HashedPassword, &user.Role, &profile, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(profile) > 0 {
		if err := json.Unmarshal(profile, &user.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
	}
	return user, nil
}
