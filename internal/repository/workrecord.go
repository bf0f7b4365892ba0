package repository

import (
	"context"
	"regexp"

	"staffhub/internal/model"
	"staffhub/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IWorkRecordRepository defines worksheet/progress persistence
type IWorkRecordRepository interface {
	generic.BaseRepository[*model.WorkRecord]
	FindFiltered(ctx context.Context, filter model.WorkRecordFilter) ([]*model.WorkRecord, error)
	UpdateTask(ctx context.Context, id primitive.ObjectID, task string) (*model.WorkRecord, error)
}

// WorkRecordRepository implements worksheet persistence on the tasks
// collection, reusing the generic base repository for plain CRUD.
type WorkRecordRepository struct {
	*generic.MongoBaseRepository[*model.WorkRecord]
}

func NewWorkRecordRepository(db *mongo.Database) IWorkRecordRepository {
	return &WorkRecordRepository{
		MongoBaseRepository: generic.NewBaseRepository[*model.WorkRecord](db.Collection("tasks")),
	}
}

// FindFiltered narrows records by owner email, case-insensitive name, and
// month prefix of the date field.
func (r *WorkRecordRepository) FindFiltered(ctx context.Context, filter model.WorkRecordFilter) ([]*model.WorkRecord, error) {
	query := bson.M{}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	if filter.Name != "" {
		query["name"] = bson.M{"$regex": "^" + regexp.QuoteMeta(filter.Name) + "$", "$options": "i"}
	}
	if filter.Month != "" {
		query["date"] = bson.M{"$regex": "^" + regexp.QuoteMeta(filter.Month)}
	}
	return r.Find(ctx, query)
}

// UpdateTask replaces the task text of a record and returns the updated document.
func (r *WorkRecordRepository) UpdateTask(ctx context.Context, id primitive.ObjectID, task string) (*model.WorkRecord, error) {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"task": task}})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var record *model.WorkRecord
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
