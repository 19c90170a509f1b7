package repo

import (
	"context"
	"time"

	dom "github.com/NabinS-D/TodoList/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepo interface {
	Save(ctx context.Context, m dom.ChatMessage) error
	History(ctx context.Context, room string, limit int64) ([]dom.ChatMessage, error)
}

type messageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Message   string             `bson:"message"`
	Room      string             `bson:"room"`
	Timestamp time.Time          `bson:"timestamp"`
}

type MongoMessageRepo struct {
	col *mongo.Collection
}

func NewMongoMessageRepo(db *mongo.Database) *MongoMessageRepo {
	return &MongoMessageRepo{col: db.Collection("chat_messages")}
}

func (r *MongoMessageRepo) Save(ctx context.Context, m dom.ChatMessage) error {
	_, err := r.col.InsertOne(ctx, messageDoc{
		User:      m.User,
		Message:   m.Message,
		Room:      m.Room,
		Timestamp: m.Timestamp,
	})
	return err
}

// History returns up to limit messages for the room, oldest first.
func (r *MongoMessageRepo) History(ctx context.Context, room string, limit int64) ([]dom.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{"room": room}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []dom.ChatMessage
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		list = append(list, dom.ChatMessage{
			ID:        doc.ID.Hex(),
			User:      doc.User,
			Message:   doc.Message,
			Room:      doc.Room,
			Timestamp: doc.Timestamp,
		})
	}
	return list, cur.Err()
}

var _ MessageRepo = (*MongoMessageRepo)(nil)
