// utils/email.go
package utils

import (
	"fmt"
	"log"

	"github.com/keighl/postmark"

	"github.com/levankhai101280/burger-builder-2026/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// With an empty API token the service stays disabled and every send is a
// silent no-op, so checkout keeps working in local setups.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set. Order confirmation emails are disabled.")
		return &EmailService{}
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es == nil || es.client == nil {
		return nil
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail, displayName string, order models.Order) error {
	totalPrice := 0.0
	totalItems := 0
	if order.OrderData != nil {
		if order.OrderData.TotalPrice != nil {
			totalPrice = *order.OrderData.TotalPrice
		}
		if order.OrderData.TotalItems != nil {
			totalItems = *order.OrderData.TotalItems
		}
	}

	subject := "Order Confirmation - Burger Builder"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order (ID: %s)! Your %d burger(s) are on the way to <strong>%s</strong>.<br><br>Total: <strong>$%.2f</strong><br><br>Bon appétit!",
		displayName,
		order.ID.Hex(),
		totalItems,
		order.Contact.Address,
		totalPrice,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
