package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"collabriq-backend/internal/config"
)

type SMTPSender struct{}

func (s *SMTPSender) Send(to, subject, body string) error {
	env := config.GetEnv()

	addr := fmt.Sprintf("%s:%s", env.SMTPHost, env.SMTPPort)

	var auth smtp.Auth
	if env.SMTPUsername != "" {
		if strings.Contains(env.SMTPHost, "outlook") || strings.Contains(env.SMTPHost, "office365") {
			auth = newLoginAuth(env.SMTPUsername, env.SMTPPassword)
		} else {
			auth = smtp.PlainAuth("", env.SMTPUsername, env.SMTPPassword, env.SMTPHost)
		}
	}

	message := strings.Join([]string{
		"From: " + env.SMTPFrom,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, env.SMTPFrom, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
