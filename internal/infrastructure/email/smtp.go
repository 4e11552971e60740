// Package email delivers staff credential mails over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedconfig "beyazmasa/internal/shared/config"
)

type SMTPCredentialMailer struct {
	config sharedconfig.MailConfig
	dialer *gomail.Dialer
}

// NewSMTPCredentialMailer builds the mailer. An empty SMTP host returns nil,
// which the caller treats as mail delivery disabled.
func NewSMTPCredentialMailer(config sharedconfig.MailConfig) *SMTPCredentialMailer {
	if config.SMTPHost == "" {
		return nil
	}

	return &SMTPCredentialMailer{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword),
	}
}

func (s *SMTPCredentialMailer) SendCredentials(ctx context.Context, email, fullName, password string) error {
	subject := "Beyaz Masa Personel Hesabınız"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Beyaz Masa Yönetim Paneli</h2>
			<p>Sayın %s,</p>
			<p>Adınıza bir personel hesabı oluşturulmuştur. Giriş bilgileriniz:</p>
			<p><b>E-posta:</b> %s<br/><b>Şifre:</b> %s</p>
			<p>İlk girişinizden sonra şifrenizi değiştirmenizi öneririz.</p>
		</body>
		</html>
	`, fullName, email, password)

	plainBody := fmt.Sprintf(`Sayın %s,

Adınıza bir personel hesabı oluşturulmuştur. Giriş bilgileriniz:

E-posta: %s
Şifre: %s

İlk girişinizden sonra şifrenizi değiştirmenizi öneririz.
`, fullName, email, password)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPCredentialMailer) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
