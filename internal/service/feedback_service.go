package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"mindcare/internal/model"
	"mindcare/internal/repository"
)

var feedbackCategories = []model.FeedbackCategory{
	model.FeedbackApp,
	model.FeedbackSession,
	model.FeedbackCounselorBot,
	model.FeedbackOther,
}

// FeedbackService collects app and session ratings
type FeedbackService struct {
	feedback repository.FeedbackRepo
}

func NewFeedbackService(feedback repository.FeedbackRepo) *FeedbackService {
	return &FeedbackService{feedback: feedback}
}

// Submit records a 1-5 rating from any user
func (s *FeedbackService) Submit(ctx context.Context, actor *model.UserClaims, req *model.SubmitFeedbackRequest) (*model.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	category := req.Category
	if category == "" {
		category = model.FeedbackApp
	}
	if !lo.Contains(feedbackCategories, category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	fb := &model.Feedback{
		UserID:    actor.UserID,
		SessionID: req.SessionID,
		Rating:    req.Rating,
		Category:  category,
		Comment:   strings.TrimSpace(req.Comment),
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// List returns the newest feedback (admin only)
func (s *FeedbackService) List(ctx context.Context, actor *model.UserClaims, limit int) ([]*model.Feedback, error) {
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.feedback.List(ctx, limit)
}

// Summary aggregates every rating (admin only)
func (s *FeedbackService) Summary(ctx context.Context, actor *model.UserClaims) (*model.FeedbackSummary, error) {
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.summarize(ctx)
}

func (s *FeedbackService) summarize(ctx context.Context) (*model.FeedbackSummary, error) {
	tallies, err := s.feedback.TallyByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return summarizeFeedback(tallies), nil
}

func summarizeFeedback(tallies []model.FeedbackTally) *model.FeedbackSummary {
	summary := &model.FeedbackSummary{
		Count:      lo.SumBy(tallies, func(t model.FeedbackTally) int { return t.Count }),
		ByCategory: map[model.FeedbackCategory]int{},
	}
	if summary.Count == 0 {
		return summary
	}

	total := lo.SumBy(tallies, func(t model.FeedbackTally) int { return t.RatingSum })
	summary.AverageRating = round2(float64(total) / float64(summary.Count))
	for _, t := range tallies {
		summary.ByCategory[t.Category] = t.Count
	}
	return summary
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
