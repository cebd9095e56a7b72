package service

import (
	"context"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"mindcare/internal/cache"
	"mindcare/internal/counselor"
	"mindcare/internal/model"
	"mindcare/internal/repository"
)

const (
	dashboardHistory = 5
	atRiskLimit      = 10
)

// DashboardService builds the role specific home screen
type DashboardService struct {
	assessments *AssessmentService
	sessions    *SessionService
	feedback    *FeedbackService
	assessRepo  repository.AssessmentRepo
	reports     repository.ReportRepo
	users       repository.UserRepo
	risk        cache.RiskBoard
	dashboards  cache.DashboardCache
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	assessments *AssessmentService,
	sessions *SessionService,
	feedback *FeedbackService,
	assessRepo repository.AssessmentRepo,
	reports repository.ReportRepo,
	users repository.UserRepo,
	risk cache.RiskBoard,
	dashboards cache.DashboardCache,
) *DashboardService {
	return &DashboardService{
		assessments: assessments,
		sessions:    sessions,
		feedback:    feedback,
		assessRepo:  assessRepo,
		reports:     reports,
		users:       users,
		risk:        risk,
		dashboards:  dashboards,
	}
}

// Dashboard returns the dashboard for the actor's role
func (s *DashboardService) Dashboard(ctx context.Context, actor *model.UserClaims) (interface{}, error) {
	switch actor.Role {
	case model.RoleStudent:
		return s.Student(ctx, actor)
	case model.RoleCounsellor:
		return s.Counsellor(ctx, actor)
	case model.RoleCollegeHead:
		return s.College(ctx, actor.College)
	case model.RoleAdmin:
		return s.Admin(ctx)
	}
	return nil, ErrForbidden
}

func (s *DashboardService) Student(ctx context.Context, actor *model.UserClaims) (*model.StudentDashboard, error) {
	latest, err := s.assessments.Latest(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	history, err := s.assessments.History(ctx, actor, actor.UserID, dashboardHistory)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.sessions.Upcoming(ctx, actor)
	if err != nil {
		return nil, err
	}

	var result *model.AssessmentResult
	if latest != nil {
		result = &latest.Result
	}
	return &model.StudentDashboard{
		Role:             actor.Role,
		LastAssessment:   latest,
		History:          history,
		UpcomingSessions: upcoming,
		Recommendations:  counselor.Recommendations(result),
	}, nil
}

func (s *DashboardService) Counsellor(ctx context.Context, actor *model.UserClaims) (*model.CounsellorDashboard, error) {
	open, err := s.reports.ListByCollege(ctx, actor.College, model.ReportOpen)
	if err != nil {
		return nil, err
	}
	atRisk, err := s.risk.GetTop(ctx, actor.College, atRiskLimit)
	if err != nil {
		log.WithError(err).WithField("college", actor.College).Warn("failed to read risk board")
		atRisk = []model.RiskEntry{}
	}
	today, err := s.sessions.Today(ctx, actor)
	if err != nil {
		return nil, err
	}
	students, err := s.users.List(ctx, model.UserFilter{Role: model.RoleStudent, College: actor.College})
	if err != nil {
		return nil, err
	}

	return &model.CounsellorDashboard{
		Role:          actor.Role,
		OpenReports:   open,
		AtRisk:        atRisk,
		TodaySessions: today,
		Students: lo.Filter(students, func(u *model.User, _ int) bool {
			return u.CounsellorID == actor.UserID
		}),
	}, nil
}

// College aggregates the latest assessment of every student in a college
func (s *DashboardService) College(ctx context.Context, college string) (*model.CollegeDashboard, error) {
	cached, err := s.dashboards.GetCollege(ctx, college)
	if err != nil {
		log.WithError(err).WithField("college", college).Warn("failed to read cached dashboard")
	}
	if cached != nil {
		return cached, nil
	}

	students, err := s.users.List(ctx, model.UserFilter{Role: model.RoleStudent, College: college})
	if err != nil {
		return nil, err
	}
	latest, err := s.assessRepo.LatestPerUser(ctx, college)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.reports.CountByStatus(ctx, college)
	if err != nil {
		return nil, err
	}

	dash := &model.CollegeDashboard{
		Role:    model.RoleCollegeHead,
		College: college,
		ActiveStudents: lo.CountBy(students, func(u *model.User) bool {
			return u.Active
		}),
		AssessmentCount: len(latest),
		PHQ9Distribution: lo.CountValuesBy(latest, func(a *model.Assessment) model.Severity {
			return a.Result.PHQ9Severity
		}),
		GAD7Distribution: lo.CountValuesBy(latest, func(a *model.Assessment) model.Severity {
			return a.Result.GAD7Severity
		}),
		PersonalityBreakdown: lo.CountValuesBy(latest, func(a *model.Assessment) model.Personality {
			return a.Result.AIPersonality
		}),
		ReportsByStatus: byStatus,
	}
	if len(latest) > 0 {
		total := lo.SumBy(latest, func(a *model.Assessment) int { return a.Result.WellnessScore })
		dash.AverageWellness = round2(float64(total) / float64(len(latest)))
	}

	if err := s.dashboards.SetCollege(ctx, dash); err != nil {
		log.WithError(err).WithField("college", college).Warn("failed to cache college dashboard")
	}
	return dash, nil
}

func (s *DashboardService) Admin(ctx context.Context) (*model.AdminDashboard, error) {
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.assessRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	summary, err := s.feedback.summarize(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AdminDashboard{
		Role:             model.RoleAdmin,
		UsersByRole:      byRole,
		TotalAssessments: total,
		Feedback:         *summary,
	}, nil
}
