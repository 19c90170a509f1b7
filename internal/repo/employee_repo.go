package repo

import (
	"context"

	dom "github.com/NabinS-D/TodoList/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmployeeRepo interface {
	Create(ctx context.Context, e dom.Employee) (dom.Employee, error)
	GetByName(ctx context.Context, name string) (dom.Employee, error)
	List(ctx context.Context) ([]dom.Employee, error)
	Update(ctx context.Context, name string, patch dom.Employee) (dom.Employee, error)
	Delete(ctx context.Context, name string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// employeeDoc is the stored shape. The collection has no unique index on
// name; lookups with duplicate names return the first match.
type employeeDoc struct {
	Name    string `bson:"name"`
	Surname string `bson:"surname"`
	Age     int    `bson:"age"`
	Gender  string `bson:"gender"`
}

type MongoEmployeeRepo struct {
	col *mongo.Collection
}

func NewMongoEmployeeRepo(db *mongo.Database) *MongoEmployeeRepo {
	return &MongoEmployeeRepo{col: db.Collection("employees")}
}

func (r *MongoEmployeeRepo) Create(ctx context.Context, e dom.Employee) (dom.Employee, error) {
	_, err := r.col.InsertOne(ctx, employeeDoc{
		Name:    e.Name,
		Surname: e.Surname,
		Age:     e.Age,
		Gender:  string(e.Gender),
	})
	if err != nil {
		return dom.Employee{}, err
	}
	return e, nil
}

func (r *MongoEmployeeRepo) GetByName(ctx context.Context, name string) (dom.Employee, error) {
	var doc employeeDoc
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		return dom.Employee{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoEmployeeRepo) List(ctx context.Context) ([]dom.Employee, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var list []dom.Employee
	for cur.Next(ctx) {
		var doc employeeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		list = append(list, doc.toDomain())
	}
	return list, cur.Err()
}

// Update sets the named fields on the first document matching name. The
// service layer merges the patch into the existing document beforehand, so
// every field here carries its intended final value.
func (r *MongoEmployeeRepo) Update(ctx context.Context, name string, patch dom.Employee) (dom.Employee, error) {
	set := bson.M{
		"name":    patch.Name,
		"surname": patch.Surname,
		"age":     patch.Age,
		"gender":  string(patch.Gender),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"name": name}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return dom.Employee{}, err
	}
	return doc.toDomain(), nil
}

func (r *MongoEmployeeRepo) Delete(ctx context.Context, name string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoEmployeeRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (d employeeDoc) toDomain() dom.Employee {
	return dom.Employee{
		Name:    d.Name,
		Surname: d.Surname,
		Age:     d.Age,
		Gender:  dom.Gender(d.Gender),
	}
}
