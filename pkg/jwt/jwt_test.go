package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/Sujithrababu/attendance-system/config"
)

func testManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "test-secret-key-0123456789",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_GenerateAndParse(t *testing.T) {
	m := testManager(15 * time.Minute)

	token, err := m.GenerateAccessToken("user-001", "sujithra", "student", "23IT56")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-001" {
		t.Errorf("UserID = %q, want user-001", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.StudentID != "23IT56" {
		t.Errorf("StudentID = %q, want 23IT56", claims.StudentID)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("expected a non-empty jti")
	}
}

func TestManager_RefreshTokenType(t *testing.T) {
	m := testManager(15 * time.Minute)

	token, err := m.GenerateRefreshToken("user-001", "sujithra", "student", "23IT56")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
}

func TestManager_ParseExpired(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.GenerateAccessToken("user-001", "sujithra", "student", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestManager_ParseWrongSecret(t *testing.T) {
	m := testManager(15 * time.Minute)
	other := NewManager(&config.AuthConfig{
		JWTSecret:       "another-secret-key-456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("user-001", "sujithra", "student", "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
