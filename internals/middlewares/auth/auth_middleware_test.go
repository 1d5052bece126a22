package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestValidateTokenExpiry(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		claims  jwt.MapClaims
		wantErr bool
	}{
		{"masih hidup", jwt.MapClaims{"exp": float64(now.Add(time.Hour).Unix())}, false},
		{"sudah lewat jauh", jwt.MapClaims{"exp": float64(now.Add(-time.Hour).Unix())}, true},
		{"baru saja expired, masih dalam leeway", jwt.MapClaims{"exp": float64(now.Add(-10 * time.Second).Unix())}, false},
		{"lewat leeway", jwt.MapClaims{"exp": float64(now.Add(-60 * time.Second).Unix())}, true},
		{"tanpa exp", jwt.MapClaims{}, true},
		{"exp bukan angka", jwt.MapClaims{"exp": "besok"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTokenExpiry(tt.claims, 30*time.Second)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTokenExpiry() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		claims  jwt.MapClaims
		want    uuid.UUID
		wantErr bool
	}{
		{"klaim id", jwt.MapClaims{"id": id.String()}, id, false},
		{"fallback sub", jwt.MapClaims{"sub": id.String()}, id, false},
		{"id menang atas sub", jwt.MapClaims{"id": id.String(), "sub": uuid.New().String()}, id, false},
		{"kosong", jwt.MapClaims{}, uuid.Nil, true},
		{"bukan uuid", jwt.MapClaims{"id": "123"}, uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractUserID(tt.claims)
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractUserID() err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("extractUserID() = %s, want %s", got, tt.want)
			}
		})
	}
}
