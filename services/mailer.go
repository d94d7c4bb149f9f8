package services

import "lafamilia/models"

// Mailer sends confirmation mail. A nil Mailer disables mail.
type Mailer interface {
	SendOrderConfirmation(order models.Order) error
	SendAdOrderNotification(sub models.AdOrderSubmission) error
}
