package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/types/business"
)

// EmailSender sends customer notifications. Satisfied by EmailService
// and replaced with a mock in tests.
type EmailSender interface {
	SendPermitConfirmation(ctx context.Context, customer *business.Customer, permit *business.Permit) error
	SendPermitEnded(ctx context.Context, customer *business.Customer, permit *business.Permit) error
	SendRefundCreated(ctx context.Context, customer *business.Customer, refund *business.Refund) error
}

// EmailService sends customer notifications through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewEmailService creates a new email service.
func NewEmailService(apiKey, fromEmail, fromName string) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger.Log,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

var permitConfirmationTemplate = template.Must(template.New("permit_confirmation").Parse(`
<p>Hi {{.FirstName}},</p>
<p>Your parking permit for zone {{.ZoneName}} and vehicle {{.Registration}} is now valid.</p>
<p>The permit is valid from {{.StartDate}}{{if .EndDate}} until {{.EndDate}}{{end}}.</p>
`))

var permitEndedTemplate = template.Must(template.New("permit_ended").Parse(`
<p>Hi {{.FirstName}},</p>
<p>Your parking permit for zone {{.ZoneName}} and vehicle {{.Registration}} has ended{{if .EndDate}} on {{.EndDate}}{{end}}.</p>
`))

var refundCreatedTemplate = template.Must(template.New("refund_created").Parse(`
<p>Hi {{.FirstName}},</p>
<p>A refund of {{.Amount}} € for your parking permit has been registered and will be handled by the city.</p>
`))

type permitEmailData struct {
	FirstName    string
	ZoneName     string
	Registration string
	StartDate    string
	EndDate      string
}

// SendPermitConfirmation notifies the customer that a permit became
// valid after payment.
func (s *EmailService) SendPermitConfirmation(ctx context.Context, customer *business.Customer, permit *business.Permit) error {
	data := permitEmailData{
		FirstName:    customer.FirstName,
		ZoneName:     permit.ZoneName,
		Registration: permit.VehicleRegistration,
		StartDate:    permit.StartTime.Format("02.01.2006"),
	}
	if permit.EndTime != nil {
		data.EndDate = permit.EndTime.Format("02.01.2006")
	}
	return s.send(customer, "Your parking permit is valid", permitConfirmationTemplate, data)
}

// SendPermitEnded notifies the customer that a permit was closed.
func (s *EmailService) SendPermitEnded(ctx context.Context, customer *business.Customer, permit *business.Permit) error {
	data := permitEmailData{
		FirstName:    customer.FirstName,
		ZoneName:     permit.ZoneName,
		Registration: permit.VehicleRegistration,
	}
	if permit.EndTime != nil {
		data.EndDate = permit.EndTime.Format("02.01.2006")
	}
	return s.send(customer, "Your parking permit has ended", permitEndedTemplate, data)
}

// SendRefundCreated notifies the customer that a refund was registered.
func (s *EmailService) SendRefundCreated(ctx context.Context, customer *business.Customer, refund *business.Refund) error {
	data := struct {
		FirstName string
		Amount    string
	}{
		FirstName: customer.FirstName,
		Amount:    refund.Amount.Round(2).StringFixed(2),
	}
	return s.send(customer, "Refund registered for your parking permit", refundCreatedTemplate, data)
}

func (s *EmailService) send(customer *business.Customer, subject string, tmpl *template.Template, data interface{}) error {
	if customer.Email == "" {
		s.logger.Debug("customer has no email address, skipping notification",
			zap.String("customer_id", customer.ID.String()))
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	sent, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{customer.Email},
		Subject: subject,
		Html:    body.String(),
	})
	if err != nil {
		s.logger.Error("failed to send email",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
			zap.String("subject", subject))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("email sent",
		zap.String("email_id", sent.Id),
		zap.String("customer_id", customer.ID.String()),
		zap.String("subject", subject))
	return nil
}
