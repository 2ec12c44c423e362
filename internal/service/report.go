package service

import (
	"context"
	"errors"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

var (
	ErrInvalidReport = errors.New("report needs a reason and a reported user or tool")
	ErrReportClosed  = errors.New("report is already closed")
)

type reportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
}

func NewReportService(reportRepo repository.ReportRepository, userRepo repository.UserRepository) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

func (s *reportService) CreateReport(ctx context.Context, reporterID, reportedUserID, toolID, reason, description string) (*domain.Report, error) {
	if reason == "" || (reportedUserID == "" && toolID == "") {
		return nil, ErrInvalidReport
	}

	report := &domain.Report{
		ReporterID:     reporterID,
		ReportedUserID: reportedUserID,
		ToolID:         toolID,
		Reason:         reason,
		Description:    description,
		Status:         domain.ReportStatusOpen,
		CreatedAt:      time.Now(),
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) ListReports(ctx context.Context, adminID string, status domain.ReportStatus) ([]domain.Report, error) {
	if err := requireAdmin(ctx, s.userRepo, adminID); err != nil {
		return nil, err
	}
	return s.reportRepo.List(ctx, status)
}

func (s *reportService) ResolveReport(ctx context.Context, adminID, reportID string) (*domain.Report, error) {
	return s.closeReport(ctx, adminID, reportID, domain.ReportStatusResolved)
}

func (s *reportService) DismissReport(ctx context.Context, adminID, reportID string) (*domain.Report, error) {
	return s.closeReport(ctx, adminID, reportID, domain.ReportStatusDismissed)
}

func (s *reportService) closeReport(ctx context.Context, adminID, reportID string, status domain.ReportStatus) (*domain.Report, error) {
	if err := requireAdmin(ctx, s.userRepo, adminID); err != nil {
		return nil, err
	}

	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != domain.ReportStatusOpen {
		return nil, ErrReportClosed
	}

	now := time.Now()
	report.Status = status
	report.ResolvedBy = adminID
	report.ResolvedAt = &now
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
