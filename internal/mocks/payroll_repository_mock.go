package mocks

import (
	"context"
	"time"

	"staffhub/internal/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PayrollRepository struct{ mock.Mock }

func (m *PayrollRepository) Create(ctx context.Context, record *model.PayrollRecord) (*model.PayrollRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PayrollRecord), args.Error(1)
}

func (m *PayrollRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.PayrollRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PayrollRecord), args.Error(1)
}

func (m *PayrollRepository) List(ctx context.Context, filter model.PayrollFilter) ([]*model.PayrollView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PayrollView), args.Error(1)
}

func (m *PayrollRepository) CountPaidForPeriod(ctx context.Context, email, month string, year int, excludeID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, email, month, year, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PayrollRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, paymentDate time.Time, approvedBy string) error {
	return m.Called(ctx, id, paymentDate, approvedBy).Error(0)
}

func (m *PayrollRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
