package domain

import "context"

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To      string
	ReplyTo string // optional
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(msg *EmailMessage) error
}

// ContactEmailData holds the submitted fields echoed into both
// contact-form emails.
type ContactEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	// SendOwnerNotification notifies the site owner of a new contact
	// submission, with Reply-To set to the submitter's address.
	SendOwnerNotification(ctx context.Context, data *ContactEmailData) error
	// SendSubmitterAcknowledgement confirms receipt to the submitter.
	SendSubmitterAcknowledgement(ctx context.Context, data *ContactEmailData) error
}
