package usecase

import (
	"context"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (TokenPair, repository.User, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users  repository.UserRepository
	tokens jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *Auth {
	return &Auth{users: users, tokens: tokens}
}

func (u *Auth) Login(ctx context.Context, email, password string) (TokenPair, repository.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return TokenPair{}, repository.User{}, ErrInvalidCredentials
		}
		return TokenPair{}, repository.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, repository.User{}, ErrInvalidCredentials
	}

	pair, err := u.issue(user)
	if err != nil {
		return TokenPair{}, repository.User{}, ErrInternal
	}
	return pair, user, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	if !u.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrUnauthorized
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return TokenPair{}, ErrUnauthorized
		}
		return TokenPair{}, ErrInternal
	}

	pair, err := u.issue(user)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (u *Auth) issue(user repository.User) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
