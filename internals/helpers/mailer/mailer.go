package mailer

import (
	"bytes"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"triviaku_backend/internals/configs"
)

// Mailer membungkus SMTP transport untuk email transaksional
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer() *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(
			configs.EmailHost,
			configs.EmailPort,
			configs.EmailUser,
			configs.EmailPassword,
		),
		from: configs.EmailFrom,
	}
}

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9; border-radius: 10px;">
    <div style="text-align: center; padding: 20px 0; background-color: #4CAF50; color: white; border-radius: 10px 10px 0 0;">
      <h1>Trivia Challenge</h1>
    </div>
    <div style="background-color: white; padding: 30px; border-radius: 0 0 10px 10px;">
      <h2>Kode Verifikasi</h2>
      <p>Kamu meminta kode verifikasi untuk akunmu.</p>
      <div style="font-size: 32px; font-weight: bold; text-align: center; letter-spacing: 5px; color: #4CAF50; padding: 20px; background-color: #f0f0f0; border-radius: 5px; margin: 20px 0;">{{.Code}}</div>
      <p><strong>Kode ini kedaluwarsa dalam {{.Minutes}} menit.</strong></p>
      <p>Kalau kamu tidak meminta kode ini, abaikan saja email ini.</p>
    </div>
    <div style="text-align: center; margin-top: 20px; font-size: 12px; color: #777;">
      <p>&copy; {{.Year}} Trivia Challenge.</p>
    </div>
  </div>
</body>
</html>`))

// SendOTP mengirim kode OTP plaintext ke email tujuan.
// Plaintext tidak pernah disimpan: setelah dikirim, yang tersisa hanya hash di ledger.
func (m *Mailer) SendOTP(email, code string) error {
	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, map[string]any{
		"Code":    code,
		"Minutes": int(configs.OTPExpiration.Minutes()),
		"Year":    time.Now().Year(),
	}); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Kode verifikasimu - Trivia Challenge")
	msg.SetBody("text/html", body.String())

	return m.dialer.DialAndSend(msg)
}
