package repository

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection       = "users"
	assessmentsCollection = "assessments"
	sessionsCollection    = "sessions"
	reportsCollection     = "reports"
	feedbackCollection    = "feedback"
	chatCollection        = "chat_messages"
)

// ErrDuplicateKey is returned when a unique index rejects a write
var ErrDuplicateKey = errors.New("duplicate key")

// EnsureIndexes creates the indexes every repository relies on.
// Failures are logged and do not stop startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) {
	createIndex(ctx, db.Collection(usersCollection), bson.D{{Key: "email", Value: 1}}, true)
	createIndex(ctx, db.Collection(usersCollection), bson.D{
		{Key: "role", Value: 1},
		{Key: "college", Value: 1},
	}, false)

	createIndex(ctx, db.Collection(assessmentsCollection), bson.D{
		{Key: "userId", Value: 1},
		{Key: "result.completedAt", Value: -1},
	}, false)
	createIndex(ctx, db.Collection(assessmentsCollection), bson.D{
		{Key: "college", Value: 1},
		{Key: "result.completedAt", Value: -1},
	}, false)

	createIndex(ctx, db.Collection(sessionsCollection), bson.D{
		{Key: "studentId", Value: 1},
		{Key: "scheduledAt", Value: 1},
	}, false)
	createIndex(ctx, db.Collection(sessionsCollection), bson.D{
		{Key: "counsellorId", Value: 1},
		{Key: "scheduledAt", Value: 1},
	}, false)

	createIndex(ctx, db.Collection(reportsCollection), bson.D{
		{Key: "college", Value: 1},
		{Key: "status", Value: 1},
		{Key: "createdAt", Value: -1},
	}, false)

	createIndex(ctx, db.Collection(feedbackCollection), bson.D{{Key: "createdAt", Value: -1}}, false)

	createIndex(ctx, db.Collection(chatCollection), bson.D{
		{Key: "conversationId", Value: 1},
		{Key: "createdAt", Value: -1},
	}, false)

	log.Info("mongo indexes ensured")
}

func createIndex(ctx context.Context, coll *mongo.Collection, keys bson.D, unique bool) {
	opts := options.Index().SetUnique(unique)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		log.WithError(err).WithField("collection", coll.Name()).Warn("failed to create index")
	}
}

func findOptions(sortKey string, order, limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: sortKey, Value: order}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}
