package model

import (
	"time"

	"github.com/google/uuid"
)

// OTPCodeModel menyimpan kode OTP per email.
// Kode tidak pernah disimpan plaintext: hanya HMAC-SHA256 hash-nya.
// Email tidak harus milik user terdaftar (dipakai juga untuk alur registrasi).
type OTPCodeModel struct {
	OTPCodeID        uuid.UUID `gorm:"column:otp_code_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"otp_code_id"`
	OTPCodeEmail     string    `gorm:"column:otp_code_email;size:255;not null;index" json:"otp_code_email"`
	OTPCodeHash      []byte    `gorm:"column:otp_code_hash;type:bytea;not null" json:"-"`
	OTPCodeExpiresAt time.Time `gorm:"column:otp_code_expires_at;not null;index" json:"otp_code_expires_at"`
	OTPCodeVerified  bool      `gorm:"column:otp_code_verified;not null;default:false" json:"otp_code_verified"`
	OTPCodeCreatedAt time.Time `gorm:"column:otp_code_created_at;autoCreateTime" json:"otp_code_created_at"`
}

func (OTPCodeModel) TableName() string {
	return "otp_codes"
}
