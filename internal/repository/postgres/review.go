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

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.Date.IsZero() {
		rv.Date = time.Now()
	}
	query := `INSERT INTO reviews (id, booking_id, reviewer_id, tool_id, type, rating, comment, date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		rv.ID, rv.BookingID, rv.ReviewerID, nullString(rv.ToolID), rv.Type, rv.Rating, rv.Comment, rv.Date)
	return err
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT id, booking_id, reviewer_id, tool_id, type, rating, comment, date FROM reviews WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	rv := &domain.Review{}
	var toolID sql.NullString
	if err := row.Scan(&rv.ID, &rv.BookingID, &rv.ReviewerID, &toolID, &rv.Type, &rv.Rating, &rv.Comment, &rv.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("review %s: %w", id, repository.ErrNotFound)
		}
		return nil, err
	}
	rv.ToolID = toolID.String
	return rv, nil
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	query := `UPDATE reviews SET rating=$1, comment=$2, date=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, rv.Rating, rv.Comment, time.Now(), rv.ID)
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

func (r *reviewRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.Review, error) {
	query := `SELECT id, booking_id, reviewer_id, tool_id, type, rating, comment, date FROM reviews WHERE booking_id = $1`
	return r.queryReviews(ctx, query, bookingID)
}

func (r *reviewRepository) ListByTool(ctx context.Context, toolID string) ([]domain.Review, error) {
	query := `SELECT id, booking_id, reviewer_id, tool_id, type, rating, comment, date FROM reviews WHERE tool_id = $1 ORDER BY date DESC`
	return r.queryReviews(ctx, query, toolID)
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		var toolID sql.NullString
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.ReviewerID, &toolID, &rv.Type, &rv.Rating, &rv.Comment, &rv.Date); err != nil {
			return nil, err
		}
		rv.ToolID = toolID.String
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
