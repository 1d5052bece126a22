package helpers

import (
	"errors"
	"regexp"
	"strings"
)

// Validasi Email (regex simple)
func IsValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return errors.New("user_name, email, dan password wajib diisi")
	}
	if len(userName) < 3 {
		return errors.New("user_name harus minimal 3 karakter")
	}
	if !IsValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	if len(password) < 8 {
		return errors.New("password harus minimal 8 karakter")
	}
	return nil
}

func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("email dan password wajib diisi")
	}
	if !IsValidEmail(email) {
		return errors.New("format email tidak valid")
	}
	return nil
}
