package service

import (
	"context"
	"fmt"

	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/util"
)

// UserService handles user registration, lookup, and role administration.
type UserService struct {
	repo repository.IUserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a user unless the email is already taken.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	email, err := util.NormalizeEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	role := model.RoleEmployee
	if req.Role != "" {
		parsed, ok := model.ParseRole(req.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
		}
		role = parsed
	}

	name := req.Name
	if name == "" {
		name = email
	}
	if len(name) > util.MaxNameLength {
		return nil, fmt.Errorf("%w: name exceeds maximum length", ErrValidation)
	}

	user := &model.User{
		Name:        name,
		Email:       email,
		Role:        role,
		Salary:      req.Salary,
		BankAccount: req.BankAccount,
		Designation: req.Designation,
		PhotoURL:    req.PhotoURL,
	}
	if req.Password != "" {
		hash, err := util.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Login verifies credentials and returns the user on success. Fired
// employees are refused even with a valid password.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	normalized, err := util.NormalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if !util.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if user.Fired {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

// GetByEmail returns the user for an email, or repository.ErrNotFound.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

// List returns all users, redacted.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// HasRole reports whether the user stored under email holds role. It fails
// closed: a missing user or a store error yields false.
func (s *UserService) HasRole(ctx context.Context, email string, role model.Role) bool {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return false
	}
	return user.Role.Is(role)
}

// PromoteToHR sets a user's role to HR.
func (s *UserService) PromoteToHR(ctx context.Context, idHex string) error {
	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateFields(ctx, id, map[string]interface{}{"role": model.RoleHR})
}

// SetVerified flips a user's verification flag.
func (s *UserService) SetVerified(ctx context.Context, idHex string, verified bool) error {
	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateFields(ctx, id, map[string]interface{}{"verified": verified})
}

// Fire marks an employee as terminated. Users are never hard-deleted.
func (s *UserService) Fire(ctx context.Context, idHex string) error {
	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.repo.UpdateFields(ctx, id, map[string]interface{}{"fired": true})
}

// IncreaseSalary raises an employee's salary. The new amount must strictly
// exceed the current one; equal or lower amounts are rejected.
func (s *UserService) IncreaseSalary(ctx context.Context, idHex string, newSalary float64) error {
	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return repository.ErrNotFound
	}
	if newSalary <= user.Salary {
		return ErrSalaryNotIncreased
	}
	return s.repo.UpdateFields(ctx, id, map[string]interface{}{"salary": newSalary})
}
