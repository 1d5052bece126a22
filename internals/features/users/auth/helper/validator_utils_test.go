package helpers

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"a.b+c@sub.domain.co", true},
		{"fgolmos10@gmail.com", true},
		{"", false},
		{"bukan-email", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false},
		{"user @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  bool
	}{
		{"valid", "Laura", "laura@example.com", "password123", false},
		{"user_name kosong", "", "laura@example.com", "password123", true},
		{"user_name terlalu pendek", "ab", "laura@example.com", "password123", true},
		{"email tidak valid", "Laura", "bukan-email", "password123", true},
		{"password terlalu pendek", "Laura", "laura@example.com", "1234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegisterInput(tt.userName, tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegisterInput() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput("laura@example.com", "password123"); err != nil {
		t.Errorf("input valid ditolak: %v", err)
	}
	if err := ValidateLoginInput("", "password123"); err == nil {
		t.Error("email kosong harusnya ditolak")
	}
	if err := ValidateLoginInput("laura@example.com", ""); err == nil {
		t.Error("password kosong harusnya ditolak")
	}
}
