package services

import (
	"fmt"
	"net/smtp"
)

// MailSender sends a plain text email.
type MailSender interface {
	SendMail(to, subject, body string) error
}

// SMTPSender sends mail through an authenticated SMTP relay (Gmail by default).
type SMTPSender struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPSender(host string, port int, from, password string) (*SMTPSender, error) {
	if from == "" || password == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL and ADMIN_EMAIL_PASS must be set")
	}
	return &SMTPSender{host: host, port: port, from: from, password: password}, nil
}

func (s *SMTPSender) SendMail(to, subject, body string) error {
	msg := fmt.Sprintf("From: \"KaamKarwalo\" <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, to, subject, body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
