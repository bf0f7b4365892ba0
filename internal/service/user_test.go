package service

import (
	"context"
	"errors"
	"testing"

	"staffhub/internal/mocks"
	"staffhub/internal/model"
	"staffhub/pkg/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegisterNewUser(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "new@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "new@x.com" && u.Role == model.RoleEmployee &&
			u.PasswordHash != "" && util.VerifyPassword("secret", u.PasswordHash)
	})).Return(&model.User{ID: primitive.NewObjectID(), Email: "new@x.com"}, nil)

	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "New@X.com", // normalized to lowercase
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", user.Email)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.User{Email: "taken@x.com"}, nil)

	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Email: "taken@x.com"})
	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := NewUserService(new(mocks.UserRepository))

	for _, email := range []string{"", "nope", "a@b"} {
		_, err := svc.Register(context.Background(), &model.RegisterRequest{Email: email})
		assert.ErrorIs(t, err, ErrValidation, "email %q", email)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil)

	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &model.RegisterRequest{Email: "a@x.com", Role: "superuser"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHasRoleFailsClosed(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)
		assert.False(t, NewUserService(repo).HasRole(ctx, "ghost@x.com", model.RoleAdmin))
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("connection reset"))
		assert.False(t, NewUserService(repo).HasRole(ctx, "a@x.com", model.RoleAdmin))
	})

	t.Run("role mismatch", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Role: model.RoleEmployee}, nil)
		assert.False(t, NewUserService(repo).HasRole(ctx, "a@x.com", model.RoleAdmin))
	})
}

func TestHasRoleIgnoresCase(t *testing.T) {
	// Legacy documents store 'hr' lowercase.
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Role: model.Role("hr")}, nil)

	assert.True(t, NewUserService(repo).HasRole(context.Background(), "a@x.com", model.RoleHR))
}

func TestIncreaseSalaryMustStrictlyIncrease(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(mocks.UserRepository)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Salary: 1000}, nil)

	svc := NewUserService(repo)

	for _, salary := range []float64{1000, 999.99, 0} {
		err := svc.IncreaseSalary(context.Background(), id.Hex(), salary)
		assert.ErrorIs(t, err, ErrSalaryNotIncreased, "salary %v", salary)
	}
	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestIncreaseSalaryApplies(t *testing.T) {
	id := primitive.NewObjectID()
	repo := new(mocks.UserRepository)
	repo.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Salary: 1000}, nil)
	repo.On("UpdateFields", mock.Anything, id, map[string]interface{}{"salary": 1200.0}).Return(nil)

	svc := NewUserService(repo)

	require.NoError(t, svc.IncreaseSalary(context.Background(), id.Hex(), 1200))
	repo.AssertExpectations(t)
}

func TestLogin(t *testing.T) {
	hash, err := util.HashPassword("secret")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com", PasswordHash: hash}, nil)

		user, err := NewUserService(repo).Login(context.Background(), "a@x.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com", PasswordHash: hash}, nil)

		_, err := NewUserService(repo).Login(context.Background(), "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)

		_, err := NewUserService(repo).Login(context.Background(), "ghost@x.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("fired employee", func(t *testing.T) {
		repo := new(mocks.UserRepository)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com", PasswordHash: hash, Fired: true}, nil)

		_, err := NewUserService(repo).Login(context.Background(), "a@x.com", "secret")
		assert.ErrorIs(t, err, ErrAccountDisabled)
	})
}
