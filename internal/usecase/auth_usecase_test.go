package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func authFixture(t *testing.T) (*Auth, *fakeUserRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	users := &fakeUserRepo{users: map[int64]repository.User{
		1: {ID: 1, Email: "a.santos@example.com", PasswordHash: string(hash), Role: "employee"},
	}}
	svc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUsecase(users, svc), users
}

func TestLogin(t *testing.T) {
	uc, _ := authFixture(t)

	pair, user, err := uc.Login(context.Background(), "a.santos@example.com", "secret-password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("user id = %d, want 1", user.ID)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _ := authFixture(t)

	if _, _, err := uc.Login(context.Background(), "a.santos@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := uc.Login(context.Background(), "nobody@example.com", "secret-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh(t *testing.T) {
	uc, _ := authFixture(t)

	pair, _, err := uc.Login(context.Background(), "a.santos@example.com", "secret-password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	renewed, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if renewed.AccessToken == "" || renewed.RefreshToken == "" {
		t.Fatal("expected renewed tokens")
	}

	// An access token must not be accepted for refresh.
	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRefresh_Garbage(t *testing.T) {
	uc, _ := authFixture(t)

	if _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
