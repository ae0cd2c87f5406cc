package mail

var mailSender MailSender = &SMTPSender{}

func GetMailSender() MailSender {
	return mailSender
}

// SetMailSender swaps the sender implementation, used by tests to capture
// outgoing messages instead of hitting a real SMTP server.
func SetMailSender(sender MailSender) {
	mailSender = sender
}
