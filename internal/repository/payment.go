package repository

import (
	"context"

	"staffhub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IPaymentRepository reads the immutable payment audit trail. Writes happen
// only inside the payroll transition transaction.
type IPaymentRepository interface {
	FindByEmail(ctx context.Context, email string) ([]*model.PaymentRecord, error)
	CountByPayrollID(ctx context.Context, payrollID primitive.ObjectID) (int64, error)
}

// PaymentRepository implements audit trail reads on the payments collection
type PaymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) IPaymentRepository {
	return &PaymentRepository{collection: db.Collection("payments")}
}

// FindByEmail returns an employee's payment history sorted by period.
func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*model.PaymentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.PaymentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PaymentRepository) CountByPayrollID(ctx context.Context, payrollID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"payrollId": payrollID})
}
