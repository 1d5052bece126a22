package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"triviaku_backend/internals/configs"
	authModel "triviaku_backend/internals/features/users/auth/model"
)

// ErrDeliveryFailed: email gagal terkirim. Record OTP-nya tetap valid (tidak di-rollback),
// caller yang memutuskan mau di-surface seperti apa.
var ErrDeliveryFailed = errors.New("otp delivery failed")

const otpCodeLength = 6

// OTPSender mengirim kode plaintext out-of-band (SMTP, dsb)
type OTPSender interface {
	SendOTP(email, code string) error
}

// OTPService: ledger kode OTP per email.
// Kode disimpan sebagai HMAC-SHA256 hash — plaintext tidak pernah bisa dibaca ulang.
type OTPService struct {
	DB     *gorm.DB
	Sender OTPSender
	secret []byte
	ttl    time.Duration
}

func NewOTPService(db *gorm.DB, sender OTPSender) *OTPService {
	return &OTPService{
		DB:     db,
		Sender: sender,
		secret: []byte(configs.OTPSecret),
		ttl:    configs.OTPExpiration,
	}
}

// GenerateOTPCode menghasilkan kode 6 digit, tiap digit diambil independen
// dari crypto/rand (leading zero sah).
func GenerateOTPCode() (string, error) {
	buf := make([]byte, otpCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := make([]byte, otpCodeLength)
	for i, b := range buf {
		code[i] = '0' + (b % 10)
	}
	return string(code), nil
}

func (s *OTPService) computeHash(code string) []byte {
	m := hmac.New(sha256.New, s.secret)
	m.Write([]byte(code))
	return m.Sum(nil)
}

// matchCode: perbandingan constant-time terhadap hash tersimpan
func (s *OTPService) matchCode(storedHash []byte, candidate string) bool {
	return hmac.Equal(storedHash, s.computeHash(candidate))
}

// RequestCode menerbitkan kode baru untuk email:
// semua kode lama yang belum verified di-invalidate dalam transaksi yang sama,
// lalu kode plaintext dikirim via Sender.
func (s *OTPService) RequestCode(ctx context.Context, email string) error {
	code, err := GenerateOTPCode()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record := authModel.OTPCodeModel{
		OTPCodeEmail:     email,
		OTPCodeHash:      s.computeHash(code),
		OTPCodeExpiresAt: now.Add(s.ttl),
		OTPCodeVerified:  false,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Invalidate semua kode lama yang belum dipakai untuk email ini
		if err := tx.Model(&authModel.OTPCodeModel{}).
			Where("otp_code_email = ? AND otp_code_verified = FALSE", email).
			Update("otp_code_verified", true).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return err
	}

	// Kirim setelah commit. Gagal kirim ≠ rollback: record tetap valid.
	if err := s.Sender.SendOTP(email, code); err != nil {
		log.Printf("[ERROR] Gagal kirim OTP ke %s: %v", email, err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// firstVerifiable memindai ledger satu email (terbaru dulu) dan mengembalikan
// id record pertama yang masih bisa dipakai: belum verified, belum expired,
// dan hash-nya cocok dengan kandidat (constant-time).
func (s *OTPService) firstVerifiable(records []authModel.OTPCodeModel, candidate string, now time.Time) (uuid.UUID, bool) {
	for _, rec := range records {
		if rec.OTPCodeVerified || !rec.OTPCodeExpiresAt.After(now) {
			continue
		}
		if s.matchCode(rec.OTPCodeHash, candidate) {
			return rec.OTPCodeID, true
		}
	}
	return uuid.Nil, false
}

// VerifyCode mencocokkan kandidat terhadap ledger email, terbaru dulu.
// Match pertama langsung di-mark verified (single-use).
// Fail-closed: error lookup apa pun diperlakukan sebagai invalid.
func (s *OTPService) VerifyCode(ctx context.Context, email, candidate string) (bool, error) {
	if len(candidate) != otpCodeLength {
		return false, nil
	}

	var records []authModel.OTPCodeModel
	if err := s.DB.WithContext(ctx).
		Where("otp_code_email = ?", email).
		Order("otp_code_created_at DESC").
		Find(&records).Error; err != nil {
		return false, err
	}

	id, ok := s.firstVerifiable(records, candidate, time.Now().UTC())
	if !ok {
		return false, nil
	}
	if err := s.DB.WithContext(ctx).
		Model(&authModel.OTPCodeModel{}).
		Where("otp_code_id = ?", id).
		Update("otp_code_verified", true).Error; err != nil {
		return false, err
	}
	return true, nil
}

// HasValidCode: cek keberadaan kode yang masih bisa dipakai, tanpa mutasi
func (s *OTPService) HasValidCode(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.DB.WithContext(ctx).
		Model(&authModel.OTPCodeModel{}).
		Where("otp_code_email = ? AND otp_code_verified = FALSE AND otp_code_expires_at > ?",
			email, time.Now().UTC()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PurgeExpired membersihkan semua kode yang sudah lewat expiry (verified atau bukan).
// Murni housekeeping: kode expired memang sudah tidak bisa dipakai.
func (s *OTPService) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("otp_code_expires_at < ?", time.Now().UTC()).
		Delete(&authModel.OTPCodeModel{})
	return res.RowsAffected, res.Error
}
