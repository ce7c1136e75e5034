package auth

import (
	"context"
	"database/sql"
	"errors"

	"go-frameshop/internal/features/user"
	"go-frameshop/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *user.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo}
}

func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, *user.User, error) {
	u, err := s.UserRepo.FindAdmin(ctx, username)
	if err == sql.ErrNoRows {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Name, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
