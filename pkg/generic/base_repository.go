package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a document with the requested id does not exist.
var ErrNotFound = errors.New("document not found")

// BaseRepository covers the CRUD surface shared by plain document collections.
type BaseRepository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id string) (T, error)
	Find(ctx context.Context, filter bson.M) ([]T, error)
	Replace(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
}

// MongoBaseRepository implements BaseRepository on a single collection.
type MongoBaseRepository[T Entity] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T Entity](collection *mongo.Collection) *MongoBaseRepository[T] {
	return &MongoBaseRepository[T]{Collection: collection}
}

func (r *MongoBaseRepository[T]) Create(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *MongoBaseRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var entity T
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return entity, errors.New("invalid id")
	}

	err = r.Collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entity, ErrNotFound
	}
	return entity, err
}

func (r *MongoBaseRepository[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entities []T
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// Replace overwrites the stored document with entity, matched by its id.
func (r *MongoBaseRepository[T]) Replace(ctx context.Context, entity T) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": entity.GetID()}, entity)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBaseRepository[T]) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid id")
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
