package service

import (
	"context"
	"testing"

	"toolshed-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_CreateReview(t *testing.T) {
	ctx := context.Background()

	paidCompleted := func() *domain.Booking {
		return &domain.Booking{
			ID: "b-1", ToolID: "tool-1", RenterID: "renter-1", OwnerID: "owner-1",
			Status:        domain.BookingStatusCompleted,
			PaymentStatus: domain.PaymentStatusCompleted,
		}
	}

	t.Run("renter reviews the tool", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewReviewService(reviewRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "b-1").Return(paidCompleted(), nil).Once()
		reviewRepo.On("ListByBooking", ctx, "b-1").Return([]domain.Review{}, nil).Once()
		reviewRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Type == domain.ReviewTypeRenterToTool && r.ToolID == "tool-1" && r.Rating == 5
		})).Return(nil).Once()

		review, err := svc.CreateReview(ctx, "renter-1", "b-1", domain.ReviewTypeRenterToTool, 5, "great drill")
		assert.NoError(t, err)
		assert.Equal(t, "tool-1", review.ToolID)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("owner reviews the renter", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewReviewService(reviewRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "b-1").Return(paidCompleted(), nil).Once()
		reviewRepo.On("ListByBooking", ctx, "b-1").Return([]domain.Review{}, nil).Once()
		reviewRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Type == domain.ReviewTypeOwnerToRenter && r.ToolID == ""
		})).Return(nil).Once()

		_, err := svc.CreateReview(ctx, "owner-1", "b-1", domain.ReviewTypeOwnerToRenter, 4, "returned on time")
		assert.NoError(t, err)
	})

	t.Run("renter cannot review before payment settles", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewReviewService(reviewRepo, bookingRepo)

		b := paidCompleted()
		b.PaymentStatus = domain.PaymentStatusPending
		bookingRepo.On("GetByID", ctx, "b-1").Return(b, nil).Once()

		_, err := svc.CreateReview(ctx, "renter-1", "b-1", domain.ReviewTypeRenterToTool, 5, "")
		assert.ErrorIs(t, err, ErrReviewNotAllowed)
	})

	t.Run("one review per type per booking", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewReviewService(reviewRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "b-1").Return(paidCompleted(), nil).Once()
		reviewRepo.On("ListByBooking", ctx, "b-1").Return([]domain.Review{
			{ID: "r-1", Type: domain.ReviewTypeRenterToTool},
		}, nil).Once()

		_, err := svc.CreateReview(ctx, "renter-1", "b-1", domain.ReviewTypeRenterToTool, 3, "")
		assert.ErrorIs(t, err, ErrDuplicateReview)
	})

	t.Run("renter cannot leave the owner's review type", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewReviewService(reviewRepo, bookingRepo)

		bookingRepo.On("GetByID", ctx, "b-1").Return(paidCompleted(), nil).Once()

		_, err := svc.CreateReview(ctx, "renter-1", "b-1", domain.ReviewTypeOwnerToRenter, 3, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("rating bounds", func(t *testing.T) {
		svc := NewReviewService(nil, nil)
		_, err := svc.CreateReview(ctx, "renter-1", "b-1", domain.ReviewTypeRenterToTool, 0, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
		_, err = svc.CreateReview(ctx, "renter-1", "b-1", domain.ReviewTypeRenterToTool, 6, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("author updates their review", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		svc := NewReviewService(reviewRepo, nil)

		reviewRepo.On("GetByID", ctx, "r-1").Return(&domain.Review{
			ID: "r-1", ReviewerID: "renter-1", Rating: 5,
		}, nil).Once()
		reviewRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Review) bool {
			return r.Rating == 2 && r.Comment == "broke after a day"
		})).Return(nil).Once()

		review, err := svc.UpdateReview(ctx, "renter-1", "r-1", 2, "broke after a day")
		assert.NoError(t, err)
		assert.Equal(t, 2, review.Rating)
	})

	t.Run("only the author may update", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		svc := NewReviewService(reviewRepo, nil)

		reviewRepo.On("GetByID", ctx, "r-1").Return(&domain.Review{
			ID: "r-1", ReviewerID: "renter-1",
		}, nil).Once()

		_, err := svc.UpdateReview(ctx, "someone-else", "r-1", 3, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("author deletes their review", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		svc := NewReviewService(reviewRepo, nil)

		reviewRepo.On("GetByID", ctx, "r-1").Return(&domain.Review{
			ID: "r-1", ReviewerID: "renter-1",
		}, nil).Once()
		reviewRepo.On("Delete", ctx, "r-1").Return(nil).Once()

		err := svc.DeleteReview(ctx, "renter-1", "r-1")
		assert.NoError(t, err)
		reviewRepo.AssertExpectations(t)
	})
}
