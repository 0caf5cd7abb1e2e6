package services

import (
	"context"
	"fmt"
	"html"
	"log"

	"contacthub/internal/domain"
)

type emailService struct {
	mailer       domain.Mailer
	ownerAddress string
}

// NewEmailService returns an EmailService that sends contact-form emails
// through the given Mailer. ownerAddress receives the notification email.
func NewEmailService(mailer domain.Mailer, ownerAddress string) domain.EmailService {
	return &emailService{mailer: mailer, ownerAddress: ownerAddress}
}

// SendOwnerNotification emails the submitted fields to the site owner with
// Reply-To set to the submitter, so the owner can answer directly.
func (s *emailService) SendOwnerNotification(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact email data is nil")
	}
	name := html.EscapeString(data.Name)
	email := html.EscapeString(data.Email)
	subject := html.EscapeString(data.Subject)
	message := html.EscapeString(data.Message)
	msg := &domain.EmailMessage{
		To:      s.ownerAddress,
		ReplyTo: data.Email,
		Subject: fmt.Sprintf("New contact message: %s", data.Subject),
		HTML: fmt.Sprintf(`<h2>New contact message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`, name, email, subject, message),
		Text: fmt.Sprintf("New contact message\n\nName: %s\nEmail: %s\nSubject: %s\n\n%s\n",
			data.Name, data.Email, data.Subject, data.Message),
	}
	if err := s.mailer.Send(msg); err != nil {
		return fmt.Errorf("failed to send owner notification: %w", err)
	}
	log.Printf("[EMAIL] Owner notification sent for message from %s", data.Email)
	return nil
}

// SendSubmitterAcknowledgement confirms receipt to the submitter, echoing the subject.
func (s *emailService) SendSubmitterAcknowledgement(ctx context.Context, data *domain.ContactEmailData) error {
	if data == nil {
		return fmt.Errorf("contact email data is nil")
	}
	name := html.EscapeString(data.Name)
	subject := html.EscapeString(data.Subject)
	msg := &domain.EmailMessage{
		To:      data.Email,
		Subject: "We received your message",
		HTML: fmt.Sprintf(`<h2>Thanks for getting in touch, %s!</h2>
<p>We received your message about <strong>%s</strong> and will get back to you as soon as possible.</p>`, name, subject),
		Text: fmt.Sprintf("Thanks for getting in touch, %s!\n\nWe received your message about %q and will get back to you as soon as possible.\n",
			data.Name, data.Subject),
	}
	if err := s.mailer.Send(msg); err != nil {
		return fmt.Errorf("failed to send acknowledgement: %w", err)
	}
	log.Printf("[EMAIL] Acknowledgement sent to %s", data.Email)
	return nil
}
