package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowiq/flowiq/internal/core/domain"
)

const chatCollection = "chat_messages"

// ChatRepository stores assistant transcripts as one document per message.
type ChatRepository struct {
	coll *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{coll: db.Collection(chatCollection)}
}

type chatDoc struct {
	ID        string `bson:"_id"`
	UserID    string `bson:"user_id"`
	Sender    string `bson:"sender"`
	Text      string `bson:"text"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *ChatRepository) Append(ctx context.Context, msg *domain.ChatMessage) error {
	doc := chatDoc{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Sender:    msg.Sender,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *ChatRepository) History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find chat history: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []domain.ChatMessage
	for cursor.Next(ctx) {
		var doc chatDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		messages = append(messages, domain.ChatMessage{
			ID:        doc.ID,
			UserID:    doc.UserID,
			Sender:    doc.Sender,
			Text:      doc.Text,
			CreatedAt: time.Unix(doc.CreatedAt, 0).UTC(),
		})
	}
	return messages, cursor.Err()
}
