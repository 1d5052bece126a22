package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"triviaku_backend/internals/constants"
	authHelper "triviaku_backend/internals/features/users/auth/helper"
	userModel "triviaku_backend/internals/features/users/user/model"
)

// SeedUsers membuat akun awal (admin + player). Upsert per email.
func SeedUsers(db *gorm.DB) error {
	seedUsers := []struct {
		Name     string
		Email    string
		Password string
		Role     string
	}{
		{"Fernando Admin", "fgolmos10@gmail.com", "admin123", constants.RoleAdmin},
		{"Miguel Admin", "miguelvillalpando19@gmail.com", "admin123", constants.RoleAdmin},
		{"Laura Player", "fernando.g.olmos10@gmail.com", "player123", constants.RolePlayer},
		{"Carlos Player", "carlos@gmail.com", "player123", constants.RolePlayer},
		{"Ana Player", "ana@gmail.com", "player123", constants.RolePlayer},
		{"Pedro Player", "pedro@gmail.com", "player123", constants.RolePlayer},
	}

	for _, su := range seedUsers {
		var existing userModel.UserModel
		err := db.First(&existing, "email = ?", su.Email).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := authHelper.HashPassword(su.Password)
		if err != nil {
			return err
		}
		user := userModel.UserModel{
			UserName: su.Name,
			Email:    su.Email,
			Password: &hashed,
			Role:     su.Role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("🌱 User dibuat: %s (%s)", su.Email, su.Role)
	}
	return nil
}
