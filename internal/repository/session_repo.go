package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mindcare/internal/model"
)

// SessionRepo handles MongoDB operations for counselling sessions
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	// UpdateFrom replaces the session only while its stored status is still
	// from. It reports false when another update got there first.
	UpdateFrom(ctx context.Context, session *model.Session, from model.SessionStatus) (bool, error)
	// ListForUser returns sessions where userID is the student or the
	// counsellor, scheduled in [from, to). A zero bound is open.
	ListForUser(ctx context.Context, userID string, from, to time.Time) ([]*model.Session, error)
}

type sessionRepo struct {
	collection *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{
		collection: db.Collection(sessionsCollection),
	}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) UpdateFrom(ctx context.Context, session *model.Session, from model.SessionStatus) (bool, error) {
	session.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": session.ID, "status": from}, session)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *sessionRepo) ListForUser(ctx context.Context, userID string, from, to time.Time) ([]*model.Session, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"studentId": userID},
		bson.M{"counsellorId": userID},
	}}
	window := bson.M{}
	if !from.IsZero() {
		window["$gte"] = from
	}
	if !to.IsZero() {
		window["$lt"] = to
	}
	if len(window) > 0 {
		filter["scheduledAt"] = window
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions("scheduledAt", 1, 0))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []*model.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
