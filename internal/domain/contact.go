package domain

import (
	"context"
	"strings"
	"time"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required" example:"Ana"`
	Email   string `json:"email" validate:"required,contact_email" example:"ana@example.com"`
	Subject string `json:"subject" validate:"required" example:"Hi"`
	Message string `json:"message" validate:"required" example:"Hello there, loved your work"`
}

// Normalize returns a copy with surrounding whitespace removed from every field
func (r ContactRequest) Normalize() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: strings.TrimSpace(r.Message),
	}
}

// ContactStatus is the delivery outcome recorded for a submission
type ContactStatus string

const (
	ContactStatusSent               ContactStatus = "sent"
	ContactStatusNotificationFailed ContactStatus = "notification_failed"
	ContactStatusConfirmationFailed ContactStatus = "confirmation_failed"
)

// ContactSubmission is an archived contact request with its delivery outcome
type ContactSubmission struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	Error     string        `json:"error,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	RemoteIP  string        `json:"remote_ip,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// ContactMeta carries request details that are archived but never validated
type ContactMeta struct {
	RequestID string
	RemoteIP  string
}

// ContactRepository archives handled submissions
type ContactRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and sends a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest, meta ContactMeta) error
}
