package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"mindcare/internal/cache"
	"mindcare/internal/counselor"
	"mindcare/internal/model"
	"mindcare/internal/repository"
	"mindcare/internal/scoring"
)

const defaultHistoryLimit = 10

// AssessmentService scores and stores PHQ-9/GAD-7 check-ins
type AssessmentService struct {
	scorer     *scoring.Scorer
	repo       repository.AssessmentRepo
	users      repository.UserRepo
	last       cache.AssessmentCache
	risk       cache.RiskBoard
	dashboards cache.DashboardCache
	notifier   *CrisisNotifier
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	scorer *scoring.Scorer,
	repo repository.AssessmentRepo,
	users repository.UserRepo,
	last cache.AssessmentCache,
	risk cache.RiskBoard,
	dashboards cache.DashboardCache,
	notifier *CrisisNotifier,
) *AssessmentService {
	return &AssessmentService{
		scorer:     scorer,
		repo:       repo,
		users:      users,
		last:       last,
		risk:       risk,
		dashboards: dashboards,
		notifier:   notifier,
	}
}

// Submit scores a student's answers and stores the result
func (s *AssessmentService) Submit(ctx context.Context, actor *model.UserClaims, resp *model.AssessmentResponse) (*model.AssessmentSubmitResponse, error) {
	if actor.Role != model.RoleStudent {
		return nil, ErrForbidden
	}

	phq9, gad7, err := scoring.Validate(resp)
	if err != nil {
		return nil, err
	}
	result := s.scorer.ScoreValues(phq9, gad7)

	assessment := &model.Assessment{
		UserID:      actor.UserID,
		College:     actor.College,
		PHQ9Answers: phq9,
		GAD7Answers: gad7,
		Result:      *result,
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{"user_id": actor.UserID, "assessment_id": assessment.ID})
	s.cacheLast(ctx, assessment)
	if err := s.risk.UpdateScore(ctx, actor.College, actor.UserID, result.CombinedScore()); err != nil {
		logger.WithError(err).Warn("failed to update risk board")
	}
	if err := s.dashboards.InvalidateCollege(ctx, actor.College); err != nil {
		logger.WithError(err).Warn("failed to invalidate college dashboard")
	}

	logger.WithFields(log.Fields{
		"phq9":        result.PHQ9Score,
		"gad7":        result.GAD7Score,
		"personality": result.AIPersonality,
	}).Info("assessment scored")

	if result.AIPersonality == model.PersonalityCrisis {
		if _, err := s.notifier.Raise(ctx, actor.UserID, actor.College, "assessment scores in crisis range", assessment.ID); err != nil {
			logger.WithError(err).Error("failed to store crisis report")
		}
	}

	return &model.AssessmentSubmitResponse{
		Assessment:      assessment,
		Recommendations: counselor.Recommendations(result),
	}, nil
}

// Latest returns the newest assessment of a user, or nil if there is none
func (s *AssessmentService) Latest(ctx context.Context, userID string) (*model.Assessment, error) {
	cached, err := s.last.GetLast(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("failed to read cached assessment")
	}
	if cached != nil {
		return cached, nil
	}

	latest, err := s.repo.GetLatestByUser(ctx, userID)
	if err != nil || latest == nil {
		return nil, err
	}
	s.cacheLast(ctx, latest)
	return latest, nil
}

// cacheLast stores a as the user's last assessment. When that fails the old
// entry is dropped so reads fall back to the database.
func (s *AssessmentService) cacheLast(ctx context.Context, a *model.Assessment) {
	logger := log.WithField("user_id", a.UserID)
	err := s.last.SetLast(ctx, a)
	if err == nil {
		return
	}
	logger.WithError(err).Warn("failed to cache last assessment")
	if err := s.last.DeleteLast(ctx, a.UserID); err != nil {
		logger.WithError(err).Error("failed to drop stale cached assessment")
	}
}

// LatestFor returns the newest assessment of a user visible to the actor
func (s *AssessmentService) LatestFor(ctx context.Context, actor *model.UserClaims, userID string) (*model.Assessment, error) {
	if err := s.authorize(ctx, actor, userID); err != nil {
		return nil, err
	}
	latest, err := s.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

// History lists a student's assessments, newest first
func (s *AssessmentService) History(ctx context.Context, actor *model.UserClaims, userID string, limit int) ([]*model.Assessment, error) {
	if err := s.authorize(ctx, actor, userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// RiskBoard returns the highest combined scores in the actor's college
func (s *AssessmentService) RiskBoard(ctx context.Context, actor *model.UserClaims, college string, limit int) ([]model.RiskEntry, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrForbidden
	}
	if actor.Role != model.RoleAdmin || college == "" {
		college = actor.College
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.risk.GetTop(ctx, college, limit)
}

// MoveStudent re-files a student's assessments under a new college: stored
// results, the risk boards and both colleges' dashboards follow the student.
func (s *AssessmentService) MoveStudent(ctx context.Context, studentID, from, to string) error {
	if err := s.repo.SetCollege(ctx, studentID, to); err != nil {
		return err
	}

	logger := log.WithFields(log.Fields{"user_id": studentID, "from": from, "to": to})
	if err := s.last.DeleteLast(ctx, studentID); err != nil {
		logger.WithError(err).Warn("failed to drop cached assessment")
	}
	if err := s.risk.Remove(ctx, from, studentID); err != nil {
		logger.WithError(err).Warn("failed to remove student from risk board")
	}

	latest, err := s.repo.GetLatestByUser(ctx, studentID)
	if err != nil {
		return err
	}
	if latest != nil {
		if err := s.risk.UpdateScore(ctx, to, studentID, latest.Result.CombinedScore()); err != nil {
			logger.WithError(err).Warn("failed to update risk board")
		}
	}
	for _, college := range []string{from, to} {
		if err := s.dashboards.InvalidateCollege(ctx, college); err != nil {
			logger.WithError(err).WithField("college", college).Warn("failed to invalidate college dashboard")
		}
	}
	logger.Info("student assessments moved")
	return nil
}

// authorize lets students see their own results and staff see the students
// currently enrolled in their college
func (s *AssessmentService) authorize(ctx context.Context, actor *model.UserClaims, studentID string) error {
	if actor.UserID == studentID {
		return nil
	}
	if !actor.Role.IsStaff() {
		return ErrForbidden
	}
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if student == nil || student.Role != model.RoleStudent {
		return fmt.Errorf("%w: student", ErrNotFound)
	}
	if !sameCollege(actor, student.College) {
		return ErrForbidden
	}
	return nil
}

// startOfDay truncates t to local midnight
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
