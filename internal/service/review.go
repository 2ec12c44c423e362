package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
	"toolshed-backend/internal/utils"
)

var (
	ErrReviewNotAllowed = errors.New("booking is not reviewable yet")
	ErrDuplicateReview  = errors.New("a review of this type already exists for the booking")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, bookingRepo repository.BookingRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, reviewerID, bookingID string, reviewType domain.ReviewType, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch reviewType {
	case domain.ReviewTypeRenterToOwner, domain.ReviewTypeRenterToTool:
		if booking.RenterID != reviewerID {
			return nil, ErrUnauthorized
		}
		if !utils.CanReviewAsRenter(booking) {
			return nil, ErrReviewNotAllowed
		}
	case domain.ReviewTypeOwnerToRenter:
		if booking.OwnerID != reviewerID {
			return nil, ErrUnauthorized
		}
		if !utils.CanReviewAsOwner(booking) {
			return nil, ErrReviewNotAllowed
		}
	default:
		return nil, fmt.Errorf("unknown review type %q", reviewType)
	}

	existing, err := s.reviewRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	booking.Reviews = existing
	if booking.ReviewByType(reviewType) != nil {
		return nil, ErrDuplicateReview
	}

	review := &domain.Review{
		BookingID:  bookingID,
		ReviewerID: reviewerID,
		Type:       reviewType,
		Rating:     rating,
		Comment:    comment,
		Date:       time.Now(),
	}
	if reviewType == domain.ReviewTypeRenterToTool {
		review.ToolID = booking.ToolID
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewerID, reviewID string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.ReviewerID != reviewerID {
		return nil, ErrUnauthorized
	}

	review.Rating = rating
	review.Comment = comment
	review.Date = time.Now()
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewerID, reviewID string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.ReviewerID != reviewerID {
		return ErrUnauthorized
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewService) ListToolReviews(ctx context.Context, toolID string) ([]domain.Review, error) {
	return s.reviewRepo.ListByTool(ctx, toolID)
}
