package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"triviaku_backend/internals/features/users/auth/service"
)

// StartOTPCleanupScheduler menjalankan purge kode OTP expired secara periodik.
// Bukan correctness-critical (kode expired sudah tidak bisa dipakai), murni
// supaya tabel otp_codes tidak tumbuh terus.
func StartOTPCleanupScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("OTP_CLEANUP_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		otpSvc := service.NewOTPService(db, nil)

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan otp_codes...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			deleted, err := otpSvc.PurgeExpired(ctx)
			cancel()

			if err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus OTP expired: %v", err)
			} else if deleted > 0 {
				log.Printf("[CLEANUP] %d kode OTP expired dihapus", deleted)
			} else {
				log.Println("[CLEANUP] Tidak ada kode OTP yang memenuhi syarat dihapus")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
