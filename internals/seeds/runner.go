package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run menjalankan semua seeder secara berurutan (parent dulu).
// Semua seeder idempotent: aman dijalankan berulang kali.
func Run(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeder...")

	if err := SeedUsers(db); err != nil {
		log.Printf("[ERROR] Seeder user gagal: %v", err)
		return
	}
	if err := SeedCategories(db); err != nil {
		log.Printf("[ERROR] Seeder kategori gagal: %v", err)
		return
	}
	if err := SeedQuizzes(db); err != nil {
		log.Printf("[ERROR] Seeder quiz gagal: %v", err)
		return
	}

	log.Println("✅ Seeding selesai.")
}
