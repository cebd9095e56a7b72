package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mindcare/internal/model"
)

// AssessmentRepo handles MongoDB operations for scored assessments
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	GetLatestByUser(ctx context.Context, userID string) (*model.Assessment, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.Assessment, error)
	// LatestPerUser returns each student's newest assessment in a college
	LatestPerUser(ctx context.Context, college string) ([]*model.Assessment, error)
	Count(ctx context.Context) (int, error)
	// SetCollege re-files every assessment of a user under college
	SetCollege(ctx context.Context, userID, college string) error
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection(assessmentsCollection),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.ID == "" {
		assessment.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetLatestByUser(ctx context.Context, userID string) (*model.Assessment, error) {
	list, err := r.ListByUser(ctx, userID, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

func (r *assessmentRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.Assessment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions("result.completedAt", -1, limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assessments := []*model.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) LatestPerUser(ctx context.Context, college string) ([]*model.Assessment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "college", Value: college}}}},
		{{Key: "$sort", Value: bson.D{{Key: "result.completedAt", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$userId"},
			{Key: "latest", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$latest"}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assessments := []*model.Assessment{}
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) Count(ctx context.Context) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(n), err
}

func (r *assessmentRepo) SetCollege(ctx context.Context, userID, college string) error {
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"college": college}},
	)
	return err
}
