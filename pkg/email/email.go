package email

import (
	"context"
	"fmt"

	"portfolio-backend/config"
)

const (
	notificationSubjectPrefix = "New contact message: "
	// ConfirmationSubject is the fixed acknowledgment subject
	ConfirmationSubject = "✅ Message received - I'll get back to you soon"
)

// Stage names which of the two sends failed
type Stage string

const (
	StageNotification Stage = "notification"
	StageConfirmation Stage = "confirmation"
)

// DeliveryError wraps a failure of one of the two contact emails.
// NotificationSent tells whether the owner was reached before the failure.
type DeliveryError struct {
	Stage            Stage
	NotificationSent bool
	Err              error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s email: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// EmailService renders contact emails and hands them to a Sender
type EmailService struct {
	sender     Sender
	renderer   *Renderer
	fromEmail  string
	toEmail    string
	ownerName  string
	ownerTitle string
	socials    []SocialLink
}

// NewEmailService wires the sender with the addresses and owner details from cfg
func NewEmailService(cfg *config.Config, sender Sender) (*EmailService, error) {
	renderer, err := NewRenderer(cfg.EmailTemplate)
	if err != nil {
		return nil, err
	}

	var socials []SocialLink
	for _, s := range []SocialLink{
		{Label: "WhatsApp", URL: cfg.WhatsAppURL},
		{Label: "LinkedIn", URL: cfg.LinkedInURL},
		{Label: "GitHub", URL: cfg.GitHubURL},
	} {
		if s.URL != "" {
			socials = append(socials, s)
		}
	}

	return &EmailService{
		sender:     sender,
		renderer:   renderer,
		fromEmail:  cfg.SMTPFromEmail,
		toEmail:    cfg.ContactEmailTo,
		ownerName:  cfg.OwnerName,
		ownerTitle: cfg.OwnerTitle,
		socials:    socials,
	}, nil
}

// IsConfigured reports whether the underlying sender can deliver mail.
// Senders that cannot tell are assumed ready.
func (s *EmailService) IsConfigured() bool {
	if c, ok := s.sender.(interface{ IsConfigured() bool }); ok {
		return c.IsConfigured()
	}
	return true
}

// Prepare fills the owner fields of data
func (s *EmailService) Prepare(data ContactEmailData) ContactEmailData {
	data.OwnerName = s.ownerName
	data.OwnerTitle = s.ownerTitle
	data.Socials = s.socials
	return data
}

// NotificationMessage builds the email addressed to the site owner
func (s *EmailService) NotificationMessage(data ContactEmailData) (*Message, error) {
	body, err := s.renderer.Notification(s.Prepare(data))
	if err != nil {
		return nil, err
	}
	return &Message{
		From:    s.fromEmail,
		To:      s.toEmail,
		Subject: notificationSubjectPrefix + data.Subject,
		HTML:    body,
		ReplyTo: data.SenderEmail,
	}, nil
}

// ConfirmationMessage builds the acknowledgment addressed to the submitter
func (s *EmailService) ConfirmationMessage(data ContactEmailData) (*Message, error) {
	body, err := s.renderer.Confirmation(s.Prepare(data))
	if err != nil {
		return nil, err
	}
	return &Message{
		From:    s.fromEmail,
		To:      data.SenderEmail,
		Subject: ConfirmationSubject,
		HTML:    body,
	}, nil
}

// SendContactEmails sends the owner notification and then the confirmation.
// It stops at the first failure and returns it as a *DeliveryError.
func (s *EmailService) SendContactEmails(ctx context.Context, data ContactEmailData) error {
	notification, err := s.NotificationMessage(data)
	if err != nil {
		return &DeliveryError{Stage: StageNotification, Err: err}
	}
	confirmation, err := s.ConfirmationMessage(data)
	if err != nil {
		return &DeliveryError{Stage: StageConfirmation, Err: err}
	}

	if err := s.sender.Send(ctx, notification); err != nil {
		return &DeliveryError{Stage: StageNotification, Err: err}
	}
	if err := s.sender.Send(ctx, confirmation); err != nil {
		return &DeliveryError{Stage: StageConfirmation, NotificationSent: true, Err: err}
	}
	return nil
}
