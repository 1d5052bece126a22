package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret       string
	OTPSecret       string
	GoogleClientID  string
	VapidPublicKey  string
	VapidPrivateKey string
	VapidSubject    string
	EmailHost       string
	EmailPort       int
	EmailUser       string
	EmailPassword   string
	EmailFrom       string
	OTPExpiration   time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	OTPSecret = GetEnv("OTP_SECRET")
	if OTPSecret == "" {
		// fallback supaya ledger OTP tetap jalan di env lama
		OTPSecret = JWTSecret
	}
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	VapidPublicKey = GetEnv("VAPID_PUBLIC_KEY")
	VapidPrivateKey = GetEnv("VAPID_PRIVATE_KEY")
	VapidSubject = GetEnv("VAPID_SUBJECT", "mailto:admin@triviachallenge.online")

	EmailHost = GetEnv("EMAIL_HOST", "smtp.gmail.com")
	EmailPort = getEnvInt("EMAIL_PORT", 587)
	EmailUser = GetEnv("EMAIL_USER")
	EmailPassword = GetEnv("EMAIL_PASSWORD")
	EmailFrom = GetEnv("EMAIL_FROM")

	OTPExpiration = time.Duration(getEnvInt("OTP_EXPIRATION_MINUTES", 10)) * time.Minute

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if GoogleClientID == "" {
		log.Println("❌ GOOGLE_CLIENT_ID belum diset!")
	} else {
		log.Println("✅ GOOGLE_CLIENT_ID berhasil dimuat.")
	}

	if VapidPublicKey == "" || VapidPrivateKey == "" {
		log.Println("⚠️ VAPID keys belum diset, push notification tidak akan jalan")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Info,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	} else {
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
