package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mindcare/internal/model"
)

// ReportRepo handles MongoDB operations for case reports
type ReportRepo interface {
	Create(ctx context.Context, report *model.Report) error
	GetByID(ctx context.Context, id string) (*model.Report, error)
	Update(ctx context.Context, report *model.Report) error
	// ListByCollege lists newest first; an empty status matches all
	ListByCollege(ctx context.Context, college string, status model.ReportStatus) ([]*model.Report, error)
	CountByStatus(ctx context.Context, college string) (map[model.ReportStatus]int, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		collection: db.Collection(reportsCollection),
	}
}

func (r *reportRepo) Create(ctx context.Context, report *model.Report) error {
	if report.ID == "" {
		report.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, report)
	return err
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	var report model.Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) Update(ctx context.Context, report *model.Report) error {
	report.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": report.ID}, report)
	return err
}

func (r *reportRepo) ListByCollege(ctx context.Context, college string, status model.ReportStatus) ([]*model.Report, error) {
	filter := bson.M{"college": college}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions("createdAt", -1, 0))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []*model.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepo) CountByStatus(ctx context.Context, college string) (map[model.ReportStatus]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "college", Value: college}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	return countGroups[model.ReportStatus](ctx, r.collection, pipeline)
}
