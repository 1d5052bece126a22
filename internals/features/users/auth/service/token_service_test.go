package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"triviaku_backend/internals/configs"
	userModel "triviaku_backend/internals/features/users/user/model"
)

func testUser() userModel.UserModel {
	return userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Tester",
		Email:    "tester@example.com",
		Role:     "player",
		IsActive: true,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	user := testUser()
	token, err := IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	claims, err := ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken error: %v", err)
	}

	if claims["id"] != user.ID.String() {
		t.Errorf("claim id = %v, want %s", claims["id"], user.ID)
	}
	if claims["user_name"] != user.UserName {
		t.Errorf("claim user_name = %v, want %s", claims["user_name"], user.UserName)
	}
	if claims["role"] != user.Role {
		t.Errorf("claim role = %v, want %s", claims["role"], user.Role)
	}
	if claims["typ"] != "access" {
		t.Errorf("claim typ = %v, want access", claims["typ"])
	}
}

func TestAccessTokenExpiry(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	claims := BuildAccessClaims(testUser(), now)

	iat, ok := claims["iat"].(int64)
	if !ok {
		t.Fatalf("claim iat bertipe %T, want int64", claims["iat"])
	}
	exp, ok := claims["exp"].(int64)
	if !ok {
		t.Fatalf("claim exp bertipe %T, want int64", claims["exp"])
	}

	if got := time.Duration(exp-iat) * time.Second; got != AccessTokenTTL {
		t.Errorf("umur token = %s, want %s", got, AccessTokenTTL)
	}
	if iat != now.Unix() {
		t.Errorf("iat = %d, want %d", iat, now.Unix())
	}
}

func TestParseAccessTokenRejectsTampered(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	token, err := IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseAccessToken(tampered); err == nil {
		t.Error("token yang diubah harus ditolak")
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	token, err := IssueAccessToken(testUser())
	if err != nil {
		t.Fatalf("IssueAccessToken error: %v", err)
	}

	configs.JWTSecret = "another-secret"
	defer func() { configs.JWTSecret = "unit-test-secret" }()

	if _, err := ParseAccessToken(token); err == nil {
		t.Error("token dengan secret lama harus ditolak")
	}
}
