package model

import "time"

type FeedbackCategory string

const (
	FeedbackApp          FeedbackCategory = "app"
	FeedbackSession      FeedbackCategory = "session"
	FeedbackCounselorBot FeedbackCategory = "counselor_bot"
	FeedbackOther        FeedbackCategory = "other"
)

type Feedback struct {
	ID        string           `json:"id" bson:"_id"`
	UserID    string           `json:"userId" bson:"userId"`
	SessionID string           `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	Rating    int              `json:"rating" bson:"rating"` // 1-5
	Category  FeedbackCategory `json:"category" bson:"category"`
	Comment   string           `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

type SubmitFeedbackRequest struct {
	SessionID string           `json:"sessionId"`
	Rating    int              `json:"rating"`
	Category  FeedbackCategory `json:"category"`
	Comment   string           `json:"comment"`
}

// FeedbackSummary aggregates all feedback
type FeedbackSummary struct {
	Count         int                      `json:"count"`
	AverageRating float64                  `json:"averageRating"`
	ByCategory    map[FeedbackCategory]int `json:"byCategory"`
}

// FeedbackTally counts ratings within one category
type FeedbackTally struct {
	Category  FeedbackCategory `bson:"_id"`
	Count     int              `bson:"count"`
	RatingSum int              `bson:"ratingSum"`
}
