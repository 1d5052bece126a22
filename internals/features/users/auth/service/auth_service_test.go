package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "triviaku_backend/internals/features/users/auth/helper"
	userModel "triviaku_backend/internals/features/users/user/model"
)

func activeUserWithPassword(t *testing.T, password string) *userModel.UserModel {
	t.Helper()
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Laura Player",
		Email:    "laura@example.com",
		Password: &hash,
		Role:     "player",
		IsActive: true,
	}
}

func TestCheckLoginCredentialsIndistinguishableFailures(t *testing.T) {
	okUser := activeUserWithPassword(t, "password123")

	inactive := activeUserWithPassword(t, "password123")
	inactive.IsActive = false

	noPassword := activeUserWithPassword(t, "password123")
	noPassword.Password = nil

	// tiga jalur gagal yang berbeda harus menghasilkan verdict yang sama persis
	tests := []struct {
		name     string
		user     *userModel.UserModel
		findErr  error
		password string
	}{
		{"email tidak terdaftar", nil, gorm.ErrRecordNotFound, "password123"},
		{"akun nonaktif", inactive, nil, "password123"},
		{"akun tanpa password (akun Google)", noPassword, nil, "password123"},
		{"password salah", okUser, nil, "bukan-passwordnya"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkLoginCredentials(tt.user, tt.findErr, tt.password)
			if !errors.Is(err, errInvalidCredentials) {
				t.Errorf("verdict = %v, want errInvalidCredentials", err)
			}
		})
	}
}

func TestCheckLoginCredentialsSuccess(t *testing.T) {
	user := activeUserWithPassword(t, "password123")
	if err := checkLoginCredentials(user, nil, "password123"); err != nil {
		t.Errorf("kredensial benar ditolak: %v", err)
	}
}

func TestCheckLoginCredentialsPassesThroughLookupErrors(t *testing.T) {
	// error infrastruktur bukan soal kredensial: jangan disamarkan jadi 401
	dbErr := errors.New("connection refused")
	err := checkLoginCredentials(nil, dbErr, "password123")
	if errors.Is(err, errInvalidCredentials) {
		t.Error("error lookup tidak boleh dipetakan ke invalid credentials")
	}
	if !errors.Is(err, dbErr) {
		t.Errorf("error lookup harus diteruskan, dapat %v", err)
	}
}
