package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mascotassj/backend/internal/config"
	"github.com/mascotassj/backend/internal/dto"
	"github.com/mascotassj/backend/internal/models"
	"github.com/mascotassj/backend/internal/ratelimit"
	"github.com/mascotassj/backend/internal/testutil"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testutil.DB(t, &models.User{}, &models.RefreshToken{})
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
	return NewAuthService(db, cfg, ratelimit.NewLoginLimiter())
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestAuthService(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "  User@Example.COM  ",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.User.Email != "user@example.com" {
		t.Errorf("stored email = %q, want normalized", resp.User.Email)
	}
	if resp.User.Role != "user" {
		t.Errorf("role = %q, want user", resp.User.Role)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("token pair incomplete")
	}

	// Duplicate registration, regardless of casing.
	if _, err := service.Register(&dto.RegisterRequest{
		Email:    "user@example.com",
		Password: "correcthorse",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register err = %v, want ErrEmailTaken", err)
	}

	login, err := service.Login(&dto.LoginRequest{
		Email:    "USER@example.com",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.AccessToken == "" {
		t.Error("login returned no access token")
	}

	if _, err := service.Login(&dto.LoginRequest{
		Email:    "user@example.com",
		Password: "wrongpassword",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("bad password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	service := newTestAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"bad email", "not-an-email", "correcthorse"},
		{"short password", "ok@example.com", "short"},
		{"empty email", "", "correcthorse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Register(&dto.RegisterRequest{
				Email:    tt.email,
				Password: tt.password,
			}); err == nil {
				t.Error("Register accepted invalid input")
			}
		})
	}
}

func TestLoginBlockedAfterRepeatedFailures(t *testing.T) {
	service := newTestAuthService(t)

	if _, err := service.Register(&dto.RegisterRequest{
		Email:    "victim@example.com",
		Password: "correcthorse",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for i := 0; i < ratelimit.MaxFailures-1; i++ {
		if _, err := service.Login(&dto.LoginRequest{
			Email:    "victim@example.com",
			Password: "wrongpassword",
		}); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d err = %v, want ErrInvalidCredentials", i+1, err)
		}
	}

	// The fifth failure flips to blocked.
	if _, err := service.Login(&dto.LoginRequest{
		Email:    "victim@example.com",
		Password: "wrongpassword",
	}); !errors.Is(err, ErrLoginBlocked) {
		t.Fatalf("fifth failure err = %v, want ErrLoginBlocked", err)
	}

	// Even the correct password is refused while blocked.
	if _, err := service.Login(&dto.LoginRequest{
		Email:    "victim@example.com",
		Password: "correcthorse",
	}); !errors.Is(err, ErrLoginBlocked) {
		t.Errorf("blocked login with correct password err = %v, want ErrLoginBlocked", err)
	}
}

func TestRefreshRotation(t *testing.T) {
	service := newTestAuthService(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "rotate@example.com",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	refreshed, err := service.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == resp.RefreshToken {
		t.Error("refresh did not rotate the token")
	}

	// The old token is single use.
	if _, err := service.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("reused token err = %v, want ErrInvalidToken", err)
	}

	if _, err := service.Refresh(&dto.RefreshRequest{RefreshToken: "garbage"}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	service := newTestAuthService(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "logout@example.com",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := service.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	if _, err := service.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("refresh after logout err = %v, want ErrInvalidToken", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	service := newTestAuthService(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "gone@example.com",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := service.DeleteAccount(resp.User.ID, "wrongpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	if err := service.DeleteAccount(resp.User.ID, "correcthorse"); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	if _, err := service.Login(&dto.LoginRequest{
		Email:    "gone@example.com",
		Password: "correcthorse",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("login after deletion err = %v, want ErrInvalidCredentials", err)
	}
}
