package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dom "github.com/NabinS-D/TodoList/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID marks an id that is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid id")

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id string) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	Update(ctx context.Context, id string, patch dom.Todo) (dom.Todo, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type todoDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Priority    string             `bson:"priority"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type MongoTodoRepo struct {
	col *mongo.Collection
}

func NewMongoTodoRepo(db *mongo.Database) *MongoTodoRepo {
	return &MongoTodoRepo{col: db.Collection("todos")}
}

func (r *MongoTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	res, err := r.col.InsertOne(ctx, todoDoc{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	t.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return t, nil
}

func (r *MongoTodoRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return dom.Todo{}, err
	}
	var doc todoDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return dom.Todo{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []dom.Todo
	for cur.Next(ctx) {
		var doc todoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toDomain())
	}
	return list, cur.Err()
}

// Update sets the mutable fields plus updated_at; created_at is never
// touched. The service merges the patch before calling.
func (r *MongoTodoRepo) Update(ctx context.Context, id string, patch dom.Todo) (dom.Todo, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return dom.Todo{}, err
	}
	set := bson.M{
		"title":       patch.Title,
		"description": patch.Description,
		"status":      string(patch.Status),
		"priority":    string(patch.Priority),
		"updated_at":  patch.UpdatedAt,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc todoDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return dom.Todo{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoTodoRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoTodoRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func (d todoDoc) toDomain() dom.Todo {
	return dom.Todo{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Status:      dom.Status(d.Status),
		Priority:    dom.Priority(d.Priority),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
