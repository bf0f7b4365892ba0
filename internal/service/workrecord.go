package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/generic"
	"staffhub/pkg/util"
)

// WorkRecordService handles worksheet and progress records. Both surfaces
// share one durable collection; there is no process-local state.
type WorkRecordService struct {
	repo repository.IWorkRecordRepository
}

// NewWorkRecordService creates a new work record service
func NewWorkRecordService(repo repository.IWorkRecordRepository) *WorkRecordService {
	return &WorkRecordService{repo: repo}
}

// Create validates and stores a new work record.
func (s *WorkRecordService) Create(ctx context.Context, req *model.WorkRecordRequest) (*model.WorkRecord, error) {
	email, err := util.NormalizeEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	record := &model.WorkRecord{
		Name:      req.Name,
		Email:     email,
		Task:      req.Task,
		Date:      req.Date,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create work record: %w", err)
	}
	return record, nil
}

// ListByEmail returns the worksheet entries owned by email.
func (s *WorkRecordService) ListByEmail(ctx context.Context, email string) ([]*model.WorkRecord, error) {
	records, err := s.repo.FindFiltered(ctx, model.WorkRecordFilter{Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	return records, nil
}

// ListFiltered returns records matching an optional name and month filter.
func (s *WorkRecordService) ListFiltered(ctx context.Context, name, month string) ([]*model.WorkRecord, error) {
	records, err := s.repo.FindFiltered(ctx, model.WorkRecordFilter{Name: name, Month: month})
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	return records, nil
}

// UpdateTask replaces the task text of a record.
func (s *WorkRecordService) UpdateTask(ctx context.Context, idHex, task string) (*model.WorkRecord, error) {
	if task == "" {
		return nil, fmt.Errorf("%w: task is required", ErrValidation)
	}
	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateTask(ctx, id, task)
}

// Delete removes a record by id.
func (s *WorkRecordService) Delete(ctx context.Context, idHex string) error {
	if !util.IsValidObjectID(idHex) {
		return fmt.Errorf("%w: invalid id", ErrValidation)
	}
	if err := s.repo.Delete(ctx, idHex); err != nil {
		if errors.Is(err, generic.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to delete work record: %w", err)
	}
	return nil
}
