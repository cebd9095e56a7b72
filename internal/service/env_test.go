package service

import (
	"time"

	"mindcare/internal/config"
	"mindcare/internal/counselor"
	"mindcare/internal/model"
	"mindcare/internal/scoring"
	"mindcare/internal/service/servicetest"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// firstRand always picks the first template
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

const testCollege = "Riverside College"

var (
	student  = &model.User{ID: "stu-1", Email: "asha@riverside.edu", Name: "Asha", Role: model.RoleStudent, College: testCollege, Active: true}
	peer     = &model.User{ID: "stu-2", Email: "ben@riverside.edu", Name: "Ben", Role: model.RoleStudent, College: testCollege, Active: true}
	coun     = &model.User{ID: "coun-1", Email: "rao@riverside.edu", Name: "Dr Rao", Role: model.RoleCounsellor, College: testCollege, Active: true}
	head     = &model.User{ID: "head-1", Email: "head@riverside.edu", Name: "Head", Role: model.RoleCollegeHead, College: testCollege, Active: true}
	outsider = &model.User{ID: "coun-9", Email: "lee@hilltop.edu", Name: "Dr Lee", Role: model.RoleCounsellor, College: "Hilltop College", Active: true}
	admin    = &model.User{ID: "admin-1", Email: "admin@mindcare.app", Name: "Admin", Role: model.RoleAdmin, Active: true}
)

func claimsFor(u *model.User) *model.UserClaims {
	return &model.UserClaims{UserID: u.ID, Role: u.Role, College: u.College}
}

type testEnv struct {
	users        *servicetest.UserRepo
	assessRepo   *servicetest.AssessmentRepo
	sessionRepo  *servicetest.SessionRepo
	reportRepo   *servicetest.ReportRepo
	feedbackRepo *servicetest.FeedbackRepo
	chatRepo     *servicetest.ChatRepo
	last         *servicetest.AssessmentCache
	risk         *servicetest.RiskBoard
	tokens       *servicetest.TokenCache
	dashCache    *servicetest.DashboardCache
	hub          *servicetest.Broadcaster

	auth        *AuthService
	userSvc     *UserService
	assessments *AssessmentService
	chat        *ChatService
	sessions    *SessionService
	reports     *ReportService
	feedback    *FeedbackService
	dashboards  *DashboardService
}

func newTestEnv() *testEnv {
	e := &testEnv{
		users:        servicetest.NewUserRepo(student, peer, coun, head, outsider, admin),
		assessRepo:   &servicetest.AssessmentRepo{},
		sessionRepo:  servicetest.NewSessionRepo(),
		reportRepo:   &servicetest.ReportRepo{},
		feedbackRepo: &servicetest.FeedbackRepo{},
		chatRepo:     &servicetest.ChatRepo{},
		last:         servicetest.NewAssessmentCache(),
		risk:         servicetest.NewRiskBoard(),
		tokens:       servicetest.NewTokenCache(),
		dashCache:    servicetest.NewDashboardCache(),
		hub:          &servicetest.Broadcaster{},
	}

	counselorCfg := config.CounselorConfig{
		Helplines:          []string{"Campus helpline: 555-0100"},
		DefaultPersonality: model.PersonalitySupportive,
		MaxMessageLength:   500,
		HistoryLimit:       50,
	}
	demo := []model.DemoAccount{
		{Email: "Demo.Student@demo.edu", Password: "student123", Name: "Demo Student", Role: model.RoleStudent, College: "Demo College"},
	}

	e.auth = NewAuthService(e.users, e.tokens, config.JWTConfig{Secret: "test-secret", TTL: time.Hour}, demo)
	e.auth.now = fixedClock

	notifier := NewCrisisNotifier(e.reportRepo)
	notifier.now = fixedClock
	notifier.SetBroadcaster(e.hub)

	e.assessments = NewAssessmentService(scoring.NewScorer(fixedClock), e.assessRepo, e.users, e.last, e.risk, e.dashCache, notifier)
	e.userSvc = NewUserService(e.users, e.auth, e.assessments)
	e.userSvc.SetBroadcaster(e.hub)

	e.chat = NewChatService(counselor.NewSelector(firstRand{}), e.assessments, e.chatRepo, e.users, notifier, counselorCfg)
	e.chat.now = fixedClock
	e.chat.SetBroadcaster(e.hub)

	e.sessions = NewSessionService(e.sessionRepo, e.users)
	e.sessions.now = fixedClock
	e.sessions.SetBroadcaster(e.hub)

	e.reports = NewReportService(e.reportRepo, e.users, e.dashCache)
	e.feedback = NewFeedbackService(e.feedbackRepo)
	e.dashboards = NewDashboardService(e.assessments, e.sessions, e.feedback, e.assessRepo, e.reportRepo, e.users, e.risk, e.dashCache)
	return e
}
