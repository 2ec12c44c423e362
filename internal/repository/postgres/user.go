package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	query := `INSERT INTO users (id, email, first_name, last_name, role, subscription_tier, district, municipality, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.SubscriptionTier,
		u.District, u.Municipality, now, now)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, first_name, last_name, role, subscription_tier, district, municipality, created_on, updated_on
	          FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, first_name, last_name, role, subscription_tier, district, municipality, created_on, updated_on
	          FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, first_name=$2, last_name=$3, role=$4, subscription_tier=$5, district=$6, municipality=$7, updated_on=$8
	          WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query,
		u.Email, u.FirstName, u.LastName, u.Role, u.SubscriptionTier, u.District, u.Municipality, time.Now(), u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, email, first_name, last_name, role, subscription_tier, district, municipality, created_on, updated_on
	          FROM users ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.SubscriptionTier,
			&u.District, &u.Municipality, &createdOn, &updatedOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format(time.RFC3339)
		u.UpdatedOn = updatedOn.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.SubscriptionTier,
		&u.District, &u.Municipality, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format(time.RFC3339)
	u.UpdatedOn = updatedOn.Format(time.RFC3339)
	return u, nil
}
