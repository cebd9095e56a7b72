package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mindcare/internal/model"
)

// ChatRepo handles MongoDB operations for chat messages
type ChatRepo interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	// ListByConversation returns the newest limit messages, oldest first
	ListByConversation(ctx context.Context, conversationID string, limit int) ([]*model.ChatMessage, error)
}

type chatRepo struct {
	collection *mongo.Collection
}

// NewChatRepo creates a new chat repository
func NewChatRepo(db *mongo.Database) ChatRepo {
	return &chatRepo{
		collection: db.Collection(chatCollection),
	}
}

func (r *chatRepo) Create(ctx context.Context, msg *model.ChatMessage) error {
	_, err := r.collection.InsertOne(ctx, msg)
	return err
}

func (r *chatRepo) ListByConversation(ctx context.Context, conversationID string, limit int) ([]*model.ChatMessage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"conversationId": conversationID}, findOptions("createdAt", -1, limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	msgs := []*model.ChatMessage{}
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
