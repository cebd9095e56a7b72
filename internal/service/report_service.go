package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"mindcare/internal/cache"
	"mindcare/internal/model"
	"mindcare/internal/repository"
)

var riskLevels = []model.RiskLevel{model.RiskLow, model.RiskModerate, model.RiskHigh, model.RiskCrisis}

// reportTransitions lists the statuses a report may move to from each status
var reportTransitions = map[model.ReportStatus][]model.ReportStatus{
	model.ReportOpen:     {model.ReportReviewed, model.ReportClosed},
	model.ReportReviewed: {model.ReportClosed, model.ReportOpen},
	model.ReportClosed:   {model.ReportOpen},
}

// ReportService manages counsellor case reports
type ReportService struct {
	reports    repository.ReportRepo
	users      repository.UserRepo
	dashboards cache.DashboardCache
}

// NewReportService creates a new report service
func NewReportService(reports repository.ReportRepo, users repository.UserRepo, dashboards cache.DashboardCache) *ReportService {
	return &ReportService{reports: reports, users: users, dashboards: dashboards}
}

// Create files a report about a student of the counsellor's college
func (s *ReportService) Create(ctx context.Context, actor *model.UserClaims, req *model.CreateReportRequest) (*model.Report, error) {
	if actor.Role != model.RoleCounsellor {
		return nil, ErrForbidden
	}

	summary := strings.TrimSpace(req.Summary)
	if summary == "" {
		return nil, fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}
	risk := req.RiskLevel
	if risk == "" {
		risk = model.RiskModerate
	}
	if !lo.Contains(riskLevels, risk) {
		return nil, fmt.Errorf("%w: unknown risk level %q", ErrInvalidInput, risk)
	}

	student, err := s.users.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil || student.Role != model.RoleStudent {
		return nil, fmt.Errorf("%w: student", ErrNotFound)
	}
	if student.College != actor.College {
		return nil, ErrForbidden
	}

	report := &model.Report{
		StudentID:    student.ID,
		CounsellorID: actor.UserID,
		College:      actor.College,
		SessionID:    req.SessionID,
		Summary:      summary,
		RiskLevel:    risk,
		Status:       model.ReportOpen,
		Source:       model.ReportFromCounsellor,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	s.invalidate(ctx, report.College)
	return report, nil
}

// UpdateStatus moves a report along open → reviewed → closed, or reopens it
func (s *ReportService) UpdateStatus(ctx context.Context, actor *model.UserClaims, id string, status model.ReportStatus) (*model.Report, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrForbidden
	}
	if _, ok := reportTransitions[status]; !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}
	if !sameCollege(actor, report.College) {
		return nil, ErrForbidden
	}
	if !lo.Contains(reportTransitions[report.Status], status) {
		return nil, fmt.Errorf("%w: report is %s", ErrConflict, report.Status)
	}

	report.Status = status
	if report.CounsellorID == "" && actor.Role == model.RoleCounsellor {
		report.CounsellorID = actor.UserID
	}
	if err := s.reports.Update(ctx, report); err != nil {
		return nil, err
	}
	s.invalidate(ctx, report.College)
	return report, nil
}

// List returns reports of a college. Only admins may name another college.
func (s *ReportService) List(ctx context.Context, actor *model.UserClaims, college string, status model.ReportStatus) ([]*model.Report, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrForbidden
	}
	if actor.Role != model.RoleAdmin || college == "" {
		college = actor.College
	}
	return s.reports.ListByCollege(ctx, college, status)
}

func (s *ReportService) invalidate(ctx context.Context, college string) {
	if err := s.dashboards.InvalidateCollege(ctx, college); err != nil {
		log.WithError(err).WithField("college", college).Warn("failed to invalidate college dashboard")
	}
}
