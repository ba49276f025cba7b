package auth_test

import (
	"context"
	"testing"
	"time"

	"pharmacy/internal/domain/model"
	"pharmacy/internal/repository"
	auth "pharmacy/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

var _ repository.UserRepository = (*MockUserRepo)(nil)

type MockHasher struct{ mock.Mock }

func (m *MockHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestRegisterUser_OK(t *testing.T) {
	userRepo := new(MockUserRepo)
	hasher := new(MockHasher)
	clock := fixedClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	uc := auth.NewRegisterUserUsecase(userRepo, hasher, clock)

	userRepo.On("FindByEmail", mock.Anything, "Asha@Example.com").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "password123").Return("$2a$12$hashed", nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//emailは小文字化して保存
		return u.Email == "asha@example.com" &&
			u.PasswordHash == "$2a$12$hashed" &&
			u.Role == model.RoleUser
	})).Return(nil)

	out, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Name:     " Asha ",
		Email:    "Asha@Example.com",
		Password: "password123",
		Age:      30,
		Phone:    "9876543210",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Asha", out.User.Name)
	assert.Equal(t, "asha@example.com", out.User.Email)
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := auth.NewRegisterUserUsecase(userRepo, new(MockHasher), fixedClock{t: time.Now()})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "not-an-email",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidEmailFormat)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_PasswordTooShort(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := auth.NewRegisterUserUsecase(userRepo, new(MockHasher), fixedClock{t: time.Now()})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "asha@example.com",
		Password: "short77",
	})

	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	uc := auth.NewRegisterUserUsecase(userRepo, new(MockHasher), fixedClock{t: time.Now()})

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(&model.User{ID: 1, Email: "asha@example.com"}, nil)

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "asha@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
