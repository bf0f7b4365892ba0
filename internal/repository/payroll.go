package repository

import (
	"context"
	"fmt"
	"time"

	"staffhub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IPayrollRepository defines payroll persistence
type IPayrollRepository interface {
	Create(ctx context.Context, record *model.PayrollRecord) (*model.PayrollRecord, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PayrollRecord, error)
	List(ctx context.Context, filter model.PayrollFilter) ([]*model.PayrollView, error)
	CountPaidForPeriod(ctx context.Context, email, month string, year int, excludeID primitive.ObjectID) (int64, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, paymentDate time.Time, approvedBy string) error
	EnsureIndexes(ctx context.Context) error
}

// PayrollRepository implements payroll persistence. It also owns the
// payments collection: the audit insert must commit together with the
// status flip, so both writes live in one transaction here.
type PayrollRepository struct {
	payroll  *mongo.Collection
	payments *mongo.Collection
}

func NewPayrollRepository(db *mongo.Database) IPayrollRepository {
	return &PayrollRepository{
		payroll:  db.Collection("payroll"),
		payments: db.Collection("payments"),
	}
}

// EnsureIndexes creates the partial unique index that enforces at most one
// Paid record per (email, month, year). A concurrent transition for a second
// record of the same period fails with a duplicate key error at commit time.
func (r *PayrollRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.payroll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "month", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": string(model.PayrollPaid)}),
	})
	return err
}

func (r *PayrollRepository) Create(ctx context.Context, record *model.PayrollRecord) (*model.PayrollRecord, error) {
	record.CreatedAt = time.Now()
	record.Status = model.PayrollPending
	res, err := r.payroll.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return record, nil
}

func (r *PayrollRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PayrollRecord, error) {
	var record *model.PayrollRecord
	err := r.payroll.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// List returns payroll records joined with the employee's display fields.
func (r *PayrollRepository) List(ctx context.Context, filter model.PayrollFilter) ([]*model.PayrollView, error) {
	match := bson.M{}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Month != "" {
		match["month"] = filter.Month
	}
	if filter.Year != 0 {
		match["year"] = filter.Year
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "email",
			"foreignField": "email",
			"as":           "employee",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$employee",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{
			"employeeName": "$employee.name",
			"designation":  "$employee.designation",
			"photoURL":     "$employee.photoURL",
		}}},
		{{Key: "$project", Value: bson.M{"employee": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}}},
	}

	cursor, err := r.payroll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var views []*model.PayrollView
	if err := cursor.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *PayrollRepository) CountPaidForPeriod(ctx context.Context, email, month string, year int, excludeID primitive.ObjectID) (int64, error) {
	return r.payroll.CountDocuments(ctx, bson.M{
		"_id":    bson.M{"$ne": excludeID},
		"email":  email,
		"month":  month,
		"year":   year,
		"status": model.PayrollPaid,
	})
}

// MarkPaid flips a Pending record to Paid and writes the audit entry as one
// transaction. The update is conditional on the current status, so a lost
// race surfaces as ErrAlreadyPaid rather than a second payment; the partial
// unique index turns a concurrent same-period commit into ErrDuplicatePeriod.
func (r *PayrollRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, paymentDate time.Time, approvedBy string) error {
	client := r.payroll.Database().Client()
	session, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var record model.PayrollRecord
		if err := r.payroll.FindOne(sc, bson.M{"_id": id}).Decode(&record); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrNotFound
			}
			return nil, err
		}

		res, err := r.payroll.UpdateOne(sc,
			bson.M{"_id": id, "status": model.PayrollPending},
			bson.M{"$set": bson.M{
				"status":      model.PayrollPaid,
				"paymentDate": paymentDate,
				"approvedBy":  approvedBy,
			}},
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicatePeriod
			}
			return nil, err
		}
		if res.ModifiedCount == 0 {
			return nil, ErrAlreadyPaid
		}

		audit := model.PaymentRecord{
			PayrollID:   id,
			Email:       record.Email,
			Amount:      record.Amount,
			Month:       record.Month,
			Year:        record.Year,
			PaymentDate: paymentDate,
			ApprovedBy:  approvedBy,
			CreatedAt:   time.Now(),
		}
		if _, err := r.payments.InsertOne(sc, audit); err != nil {
			return nil, fmt.Errorf("failed to write payment audit: %w", err)
		}
		return nil, nil
	})
	return err
}
