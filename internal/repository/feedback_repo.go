package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mindcare/internal/model"
)

// FeedbackRepo handles MongoDB operations for feedback
type FeedbackRepo interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	List(ctx context.Context, limit int) ([]*model.Feedback, error)
	// TallyByCategory groups all feedback by category with rating totals
	TallyByCategory(ctx context.Context) ([]model.FeedbackTally, error)
}

type feedbackRepo struct {
	collection *mongo.Collection
}

// NewFeedbackRepo creates a new feedback repository
func NewFeedbackRepo(db *mongo.Database) FeedbackRepo {
	return &feedbackRepo{
		collection: db.Collection(feedbackCollection),
	}
}

func (r *feedbackRepo) Create(ctx context.Context, feedback *model.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = primitive.NewObjectID().Hex()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, feedback)
	return err
}

func (r *feedbackRepo) List(ctx context.Context, limit int) ([]*model.Feedback, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions("createdAt", -1, limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*model.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *feedbackRepo) TallyByCategory(ctx context.Context) ([]model.FeedbackTally, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "ratingSum", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tallies := []model.FeedbackTally{}
	if err := cursor.All(ctx, &tallies); err != nil {
		return nil, err
	}
	return tallies, nil
}
