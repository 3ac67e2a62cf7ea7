package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Client-facing messages
const (
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Invalid email address"
	MsgSendFailed        = "Failed to send message. Please try again later."
)

const archiveTimeout = 5 * time.Second

type contactUsecase struct {
	emailService     *email.EmailService
	contactRepo      domain.ContactRepository // nil disables the archive
	validate         *validator.Validate
	minMessageLength int
}

// NewContactUsecase creates a new contact usecase. contactRepo may be nil.
func NewContactUsecase(emailService *email.EmailService, contactRepo domain.ContactRepository, validate *validator.Validate, minMessageLength int) domain.ContactUsecase {
	return &contactUsecase{
		emailService:     emailService,
		contactRepo:      contactRepo,
		validate:         validate,
		minMessageLength: minMessageLength,
	}
}

// SendContactMessage validates the contact request and sends both emails.
// Identical requests are not deduplicated; each call sends again.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest, meta domain.ContactMeta) error {
	in := req.Normalize()
	if err := uc.check(in); err != nil {
		return err
	}

	data := email.ContactEmailData{
		SenderName:  in.Name,
		SenderEmail: in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
	}

	sendErr := uc.emailService.SendContactEmails(ctx, data)
	uc.archive(ctx, in, meta, sendErr)

	if sendErr != nil {
		// Logged with its stage by the error middleware
		return apperror.New(http.StatusInternalServerError, MsgSendFailed, fmt.Errorf("failed to send contact email: %w", sendErr))
	}
	return nil
}

// check applies the rules in order; the first failing rule decides the message
func (uc *contactUsecase) check(in domain.ContactRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		details := validation.FormatValidationErrors(err)
		if validation.HasTag(err, "required") {
			return apperror.BadRequest(MsgAllFieldsRequired).WithDetails(details...)
		}
		if validation.HasTag(err, "contact_email") {
			return apperror.BadRequest(MsgInvalidEmail).WithDetails(details...)
		}
		return apperror.BadRequest(details[0]).WithDetails(details...)
	}

	if uc.minMessageLength > 0 && utf8.RuneCountInString(in.Message) < uc.minMessageLength {
		return apperror.BadRequest(fmt.Sprintf("Message must be at least %d characters", uc.minMessageLength))
	}
	return nil
}

// archive records the outcome. Failures are logged only and never change the response.
func (uc *contactUsecase) archive(ctx context.Context, in domain.ContactRequest, meta domain.ContactMeta, sendErr error) {
	if uc.contactRepo == nil {
		return
	}

	submission := &domain.ContactSubmission{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.ContactStatusSent,
		RequestID: meta.RequestID,
		RemoteIP:  meta.RemoteIP,
	}
	if sendErr != nil {
		submission.Error = sendErr.Error()
		submission.Status = domain.ContactStatusNotificationFailed
		var de *email.DeliveryError
		if errors.As(sendErr, &de) && de.Stage == email.StageConfirmation {
			submission.Status = domain.ContactStatusConfirmationFailed
		}
	}

	// The client may already be gone; the record should still land
	archiveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), archiveTimeout)
	defer cancel()
	if err := uc.contactRepo.Create(archiveCtx, submission); err != nil {
		logger.Log.Warn("Failed to archive contact submission",
			zap.String("request_id", meta.RequestID),
			zap.Error(err),
		)
	}
}
