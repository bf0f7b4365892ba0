package mocks

import (
	"context"

	"staffhub/internal/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkRecordRepository struct{ mock.Mock }

func (m *WorkRecordRepository) Create(ctx context.Context, record *model.WorkRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *WorkRecordRepository) GetByID(ctx context.Context, id string) (*model.WorkRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkRecord), args.Error(1)
}

func (m *WorkRecordRepository) Find(ctx context.Context, filter bson.M) ([]*model.WorkRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.WorkRecord), args.Error(1)
}

func (m *WorkRecordRepository) Replace(ctx context.Context, record *model.WorkRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *WorkRecordRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *WorkRecordRepository) FindFiltered(ctx context.Context, filter model.WorkRecordFilter) ([]*model.WorkRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.WorkRecord), args.Error(1)
}

func (m *WorkRecordRepository) UpdateTask(ctx context.Context, id primitive.ObjectID, task string) (*model.WorkRecord, error) {
	args := m.Called(ctx, id, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WorkRecord), args.Error(1)
}
