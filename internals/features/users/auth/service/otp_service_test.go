package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	authModel "triviaku_backend/internals/features/users/auth/model"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		code, err := GenerateOTPCode()
		if err != nil {
			t.Fatalf("GenerateOTPCode() error: %v", err)
		}
		if len(code) != otpCodeLength {
			t.Fatalf("len(code) = %d, want %d", len(code), otpCodeLength)
		}
		for _, ch := range code {
			if ch < '0' || ch > '9' {
				t.Fatalf("kode mengandung karakter non-digit: %q", code)
			}
		}
		seen[code] = struct{}{}
	}
	// 200 kali generate harusnya tidak semua identik
	if len(seen) < 2 {
		t.Error("kode yang dihasilkan tidak bervariasi")
	}
}

func TestComputeHashDeterministic(t *testing.T) {
	s := &OTPService{secret: []byte("test-secret")}

	h1 := s.computeHash("123456")
	h2 := s.computeHash("123456")
	if !bytes.Equal(h1, h2) {
		t.Error("hash kode yang sama harus identik")
	}

	h3 := s.computeHash("654321")
	if bytes.Equal(h1, h3) {
		t.Error("hash kode berbeda tidak boleh identik")
	}
}

func TestComputeHashSecretDependent(t *testing.T) {
	a := &OTPService{secret: []byte("secret-a")}
	b := &OTPService{secret: []byte("secret-b")}

	if bytes.Equal(a.computeHash("123456"), b.computeHash("123456")) {
		t.Error("secret berbeda harus menghasilkan hash berbeda")
	}
}

func TestMatchCode(t *testing.T) {
	s := &OTPService{secret: []byte("test-secret")}
	stored := s.computeHash("042137")

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"kode benar", "042137", true},
		{"kode salah", "042138", false},
		{"kosong", "", false},
		{"leading zero dipertahankan", "42137", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.matchCode(stored, tt.candidate); got != tt.want {
				t.Errorf("matchCode(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

// ledger in-memory kecil yang meniru transisi RequestCode:
// semua record unverified di-mark verified, lalu kode baru di-prepend
// (urutan terbaru dulu, sama seperti hasil query VerifyCode).
type otpLedger struct {
	svc     *OTPService
	records []authModel.OTPCodeModel
	now     time.Time
}

func newOTPLedger() *otpLedger {
	return &otpLedger{
		svc: &OTPService{secret: []byte("test-secret"), ttl: 10 * time.Minute},
		now: time.Now().UTC(),
	}
}

func (l *otpLedger) request(code string) {
	for i := range l.records {
		l.records[i].OTPCodeVerified = true
	}
	l.records = append([]authModel.OTPCodeModel{{
		OTPCodeID:        uuid.New(),
		OTPCodeHash:      l.svc.computeHash(code),
		OTPCodeExpiresAt: l.now.Add(l.svc.ttl),
	}}, l.records...)
}

// verify meniru VerifyCode tanpa DB: scan lalu mark single-use
func (l *otpLedger) verify(candidate string) bool {
	id, ok := l.svc.firstVerifiable(l.records, candidate, l.now)
	if !ok {
		return false
	}
	for i := range l.records {
		if l.records[i].OTPCodeID == id {
			l.records[i].OTPCodeVerified = true
		}
	}
	return true
}

func TestVerifyLifecycleNewRequestInvalidatesOldCodes(t *testing.T) {
	l := newOTPLedger()
	l.request("111111")
	l.request("222222")

	if l.verify("111111") {
		t.Error("kode lama harusnya tidak berlaku setelah request baru")
	}
	if !l.verify("222222") {
		t.Error("kode terbaru harusnya berlaku")
	}
}

func TestVerifyLifecycleSingleUse(t *testing.T) {
	l := newOTPLedger()
	l.request("314159")

	if !l.verify("314159") {
		t.Fatal("verifikasi pertama harusnya berhasil")
	}
	if l.verify("314159") {
		t.Error("kode yang sudah dipakai harusnya ditolak")
	}
}

func TestVerifyLifecycleExpiredCodeRejected(t *testing.T) {
	l := newOTPLedger()
	l.request("271828")

	// geser jam melewati expiry
	l.now = l.now.Add(l.svc.ttl + time.Second)

	if l.verify("271828") {
		t.Error("kode expired harusnya ditolak walau hash-nya cocok")
	}
}

func TestFirstVerifiablePrefersNewest(t *testing.T) {
	svc := &OTPService{secret: []byte("test-secret")}
	now := time.Now().UTC()

	// dua record belum verified dengan kode sama (terbaru dulu)
	newest := authModel.OTPCodeModel{
		OTPCodeID:        uuid.New(),
		OTPCodeHash:      svc.computeHash("555555"),
		OTPCodeExpiresAt: now.Add(time.Minute),
	}
	older := authModel.OTPCodeModel{
		OTPCodeID:        uuid.New(),
		OTPCodeHash:      svc.computeHash("555555"),
		OTPCodeExpiresAt: now.Add(time.Minute),
	}

	id, ok := svc.firstVerifiable([]authModel.OTPCodeModel{newest, older}, "555555", now)
	if !ok {
		t.Fatal("harusnya ada record yang cocok")
	}
	if id != newest.OTPCodeID {
		t.Error("record terbaru yang harusnya ke-match duluan")
	}
}

func TestVerifyCodeRejectsWrongLength(t *testing.T) {
	// Kandidat dengan panjang salah ditolak sebelum menyentuh DB,
	// jadi service tanpa DB pun aman dipanggil.
	s := &OTPService{secret: []byte("test-secret")}

	for _, candidate := range []string{"", "12345", "1234567", "abcdefg"} {
		ok, err := s.VerifyCode(context.Background(), "a@b.com", candidate)
		if err != nil {
			t.Errorf("VerifyCode(%q) error: %v", candidate, err)
		}
		if ok {
			t.Errorf("VerifyCode(%q) = true, want false", candidate)
		}
	}
}
