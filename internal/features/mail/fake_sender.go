package mail

import "sync"

// FakeSender records messages in memory. Tests install it via SetMailSender
// and inspect SentMessages to extract signup and reset links.
type FakeSender struct {
	mu           sync.Mutex
	SentMessages []FakeMessage
}

type FakeMessage struct {
	To      string
	Subject string
	Body    string
}

func (s *FakeSender) Send(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SentMessages = append(s.SentMessages, FakeMessage{To: to, Subject: subject, Body: body})

	return nil
}

func (s *FakeSender) LastMessage() *FakeMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.SentMessages) == 0 {
		return nil
	}

	return &s.SentMessages[len(s.SentMessages)-1]
}
