package service

import (
	"context"
	"testing"

	"toolshed-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func adminUser(id string) *domain.User {
	return &domain.User{ID: id, Role: domain.UserRoleAdmin}
}

func TestReportService_CreateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("files an open report", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		svc := NewReportService(reportRepo, nil)

		reportRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Report) bool {
			return r.ReporterID == "u-1" &&
				r.ToolID == "tool-1" &&
				r.Status == domain.ReportStatusOpen
		})).Return(nil).Once()

		report, err := svc.CreateReport(ctx, "u-1", "", "tool-1", "misleading listing", "photos show a different model")
		assert.NoError(t, err)
		assert.Equal(t, domain.ReportStatusOpen, report.Status)
		reportRepo.AssertExpectations(t)
	})

	t.Run("requires a reason and a target", func(t *testing.T) {
		svc := NewReportService(nil, nil)

		_, err := svc.CreateReport(ctx, "u-1", "u-2", "", "", "")
		assert.ErrorIs(t, err, ErrInvalidReport)

		_, err = svc.CreateReport(ctx, "u-1", "", "", "spam", "")
		assert.ErrorIs(t, err, ErrInvalidReport)
	})
}

func TestReportService_AdminHandling(t *testing.T) {
	ctx := context.Background()

	t.Run("non-admins may not list reports", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewReportService(nil, userRepo)

		userRepo.On("GetByID", ctx, "u-1").Return(&domain.User{
			ID: "u-1", Role: domain.UserRoleRenter,
		}, nil).Once()

		_, err := svc.ListReports(ctx, "u-1", "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("lists reports filtered by status", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		svc := NewReportService(reportRepo, userRepo)

		userRepo.On("GetByID", ctx, "admin-1").Return(adminUser("admin-1"), nil).Once()
		reportRepo.On("List", ctx, domain.ReportStatusOpen).Return([]domain.Report{
			{ID: "rep-1", Status: domain.ReportStatusOpen},
		}, nil).Once()

		reports, err := svc.ListReports(ctx, "admin-1", domain.ReportStatusOpen)
		assert.NoError(t, err)
		assert.Len(t, reports, 1)
	})

	t.Run("resolving stamps the admin and the time", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		svc := NewReportService(reportRepo, userRepo)

		userRepo.On("GetByID", ctx, "admin-1").Return(adminUser("admin-1"), nil).Once()
		reportRepo.On("GetByID", ctx, "rep-1").Return(&domain.Report{
			ID: "rep-1", Status: domain.ReportStatusOpen,
		}, nil).Once()
		reportRepo.On("Update", ctx, mock.MatchedBy(func(r *domain.Report) bool {
			return r.Status == domain.ReportStatusResolved &&
				r.ResolvedBy == "admin-1" &&
				r.ResolvedAt != nil
		})).Return(nil).Once()

		report, err := svc.ResolveReport(ctx, "admin-1", "rep-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.ReportStatusResolved, report.Status)
		reportRepo.AssertExpectations(t)
	})

	t.Run("a closed report cannot be decided again", func(t *testing.T) {
		reportRepo := new(MockReportRepo)
		userRepo := new(MockUserRepo)
		svc := NewReportService(reportRepo, userRepo)

		userRepo.On("GetByID", ctx, "admin-1").Return(adminUser("admin-1"), nil).Once()
		reportRepo.On("GetByID", ctx, "rep-1").Return(&domain.Report{
			ID: "rep-1", Status: domain.ReportStatusResolved,
		}, nil).Once()

		_, err := svc.DismissReport(ctx, "admin-1", "rep-1")
		assert.ErrorIs(t, err, ErrReportClosed)
	})
}

func TestAdminService_PlatformStats(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the dashboard summary for admins", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		statsRepo := new(MockStatsRepo)
		svc := NewAdminService(userRepo, statsRepo)

		userRepo.On("GetByID", ctx, "admin-1").Return(adminUser("admin-1"), nil).Once()
		statsRepo.On("PlatformStats", ctx).Return(&domain.PlatformStats{
			TotalUsers: 42, TotalRevenueCents: 123400, OpenReports: 3,
		}, nil).Once()

		stats, err := svc.PlatformStats(ctx, "admin-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), stats.TotalUsers)
		assert.Equal(t, int64(3), stats.OpenReports)
	})

	t.Run("non-admins may not read stats", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAdminService(userRepo, nil)

		userRepo.On("GetByID", ctx, "u-1").Return(&domain.User{
			ID: "u-1", Role: domain.UserRoleSupplier,
		}, nil).Once()

		_, err := svc.PlatformStats(ctx, "u-1")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
