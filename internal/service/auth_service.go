package service

import (
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/internal/domain"
	"github.com/quillcms/quill-backend/internal/repository"
	"github.com/quillcms/quill-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService login and principal lookup
type AuthService interface {
	Login(req *domain.LoginRequest) (*domain.LoginResponse, error)
	GetUser(userID uint64) (*domain.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{users: users, jwtManager: jwtManager}
}

// Login verifies credentials and mints a token pair. Wrong email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.Role, user.OrganizationID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *authService) GetUser(userID uint64) (*domain.User, error) {
	return s.users.FindByID(userID)
}
