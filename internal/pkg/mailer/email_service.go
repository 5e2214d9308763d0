package mailer

import (
	"fmt"
	"html"
	"strings"

	"solar-catalog-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactNotification(msg *entity.ContactMessage) error
}

// Sender abstracts the SMTP transport so message composition can be tested.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	sender      Sender
	senderEmail string
	senderName  string
	notifyEmail string
}

func NewEmailService(host string, port int, username, password, senderName, notifyEmail string) IEmailService {
	return NewEmailServiceWithSender(gomail.NewDialer(host, port, username, password), username, senderName, notifyEmail)
}

func NewEmailServiceWithSender(sender Sender, senderEmail, senderName, notifyEmail string) IEmailService {
	return &emailService{
		sender:      sender,
		senderEmail: senderEmail,
		senderName:  senderName,
		notifyEmail: notifyEmail,
	}
}

func (s *emailService) SendContactNotification(msg *entity.ContactMessage) error {
	m := buildContactMessage(s.senderEmail, s.senderName, s.notifyEmail, msg)
	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func buildContactMessage(from, fromName, to string, msg *entity.ContactMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("New inquiry from %s", msg.Name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact form message</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
		</div>
	`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"),
	)
	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s", msg.Name, msg.Email, msg.Phone, msg.Message))
	return m
}
