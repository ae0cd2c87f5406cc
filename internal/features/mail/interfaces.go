package mail

// MailSender delivers a single plain-text message to one recipient.
type MailSender interface {
	Send(to, subject, body string) error
}
