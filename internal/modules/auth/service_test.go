package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backoffice/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "admin@backoffice.local").Return(&domain.User{
		ID:           1,
		Email:        "admin@backoffice.local",
		PasswordHash: hashOf(t, "admin123"),
		Role:         domain.RoleAdmin,
	}, nil)

	result, err := svc.Login(ctx, LoginRequest{Email: "admin@backoffice.local", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, "test-token", result.AccessToken)
	assert.Equal(t, int64(1), result.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "admin@backoffice.local").Return(&domain.User{
		ID:           1,
		PasswordHash: hashOf(t, "admin123"),
	}, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: "admin@backoffice.local", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "ghost@backoffice.local").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(ctx, LoginRequest{Email: "ghost@backoffice.local", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_HashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "new@backoffice.local").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(ctx, RegisterRequest{
		Email:    "new@backoffice.local",
		Password: "supersecret",
		Name:     "New Staff",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, stubJWT{})
	ctx := context.Background()

	users.On("GetByEmail", ctx, "taken@backoffice.local").Return(&domain.User{ID: 2}, nil)

	_, err := svc.Register(ctx, RegisterRequest{
		Email:    "taken@backoffice.local",
		Password: "supersecret",
		Name:     "Dup",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}
