package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/pkg/jwt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, testJWTManager())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	user := &domain.User{
		ID: 7, Email: "editor@example.com", PasswordHash: string(hash),
		Role: "editor", OrganizationID: 1,
	}
	users.On("FindByEmail", "editor@example.com").Return(user, nil)

	resp, err := svc.Login(&domain.LoginRequest{Email: "editor@example.com", Password: "correct-horse"})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, uint64(7), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, testJWTManager())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	user := &domain.User{ID: 7, Email: "editor@example.com", PasswordHash: string(hash)}
	users.On("FindByEmail", "editor@example.com").Return(user, nil)

	_, err := svc.Login(&domain.LoginRequest{Email: "editor@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewAuthService(users, testJWTManager())

	users.On("FindByEmail", "nobody@example.com").Return(nil, common.ErrUserNotFound)

	_, err := svc.Login(&domain.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	// Indistinguishable from a wrong password
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_TokenCarriesPrincipal(t *testing.T) {
	users := new(mockUserRepo)
	manager := testJWTManager()
	svc := NewAuthService(users, manager)

	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	user := &domain.User{
		ID: 7, Email: "admin@example.com", PasswordHash: string(hash),
		Role: "admin", OrganizationID: 42,
	}
	users.On("FindByEmail", "admin@example.com").Return(user, nil)

	resp, err := svc.Login(&domain.LoginRequest{Email: "admin@example.com", Password: "pw"})
	assert.NoError(t, err)

	claims, err := manager.VerifyToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, uint64(42), claims.OrganizationID)
}
