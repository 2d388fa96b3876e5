package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) SendRentalReceipt(ctx context.Context, email, name, productName string, days int32, total decimal.Decimal, transactionID string) error {
	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(name, email)

	subject := fmt.Sprintf("Your Rentz receipt for %s", productName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYou have successfully rented %s for %d days.\nTotal cost: %s\nTransaction ID: %s\n\nThanks for using Rentz!",
		name, productName, days, total.StringFixed(2), transactionID,
	)

	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send receipt email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
