package mocks

import (
	"context"

	"staffhub/internal/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentRepository struct{ mock.Mock }

func (m *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*model.PaymentRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PaymentRecord), args.Error(1)
}

func (m *PaymentRepository) CountByPayrollID(ctx context.Context, payrollID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, payrollID)
	return args.Get(0).(int64), args.Error(1)
}
