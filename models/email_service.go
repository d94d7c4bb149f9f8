package models

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer   *gomail.Dialer
	from     string
	notifyTo string
}

// NewEmailService returns an error when SMTP is not configured; callers run
// without mail in that case.
func NewEmailService(host string, port int, user, pass, from, notifyTo string) (*EmailService, error) {
	if host == "" || user == "" || pass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	if port == 0 {
		port = 587
	}
	if from == "" {
		from = user
	}
	return &EmailService{
		dialer:   gomail.NewDialer(host, port, user, pass),
		from:     from,
		notifyTo: notifyTo,
	}, nil
}

func (s *EmailService) SendOrderConfirmation(order Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", order.CustomerDetails.Email)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - La Familia iMall", order.OrderID))
	m.SetBody("text/html", orderConfirmationBody(order))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendAdOrderNotification(sub AdOrderSubmission) error {
	if s.notifyTo == "" {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.notifyTo)
	m.SetHeader("Subject", fmt.Sprintf("New ad order: %s (%s)", sub.AdType, sub.PriceLabel))
	m.SetBody("text/html", fmt.Sprintf(`
<h2>New ad order</h2>
<p><strong>Type:</strong> %s</p>
<p><strong>Runtime:</strong> %s</p>
<p><strong>Details Level:</strong> %s</p>
<p><strong>Price:</strong> %s</p>
<p><strong>Title:</strong> %s</p>
<p><strong>Target URL:</strong> %s</p>
<p><strong>Payment Method:</strong> %s</p>
`,
		html.EscapeString(sub.AdType),
		html.EscapeString(sub.AdRuntime),
		html.EscapeString(sub.AdDetailsLevel),
		sub.PriceLabel,
		html.EscapeString(sub.AdTitle),
		html.EscapeString(sub.AdTargetURL),
		html.EscapeString(sub.PaymentMethod),
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func orderConfirmationBody(order Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		color := item.SelectedColor
		if color == "" {
			color = "default"
		}
		fmt.Fprintf(&rows, "<tr><td>%s (%s)</td><td>%d</td><td>%s</td></tr>",
			html.EscapeString(item.Name), html.EscapeString(color), item.Quantity, money(item.LineTotal()))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .order-box { background-color: #eff6ff; padding: 20px; margin: 20px 0; border-radius: 8px; }
        table { width: 100%%; border-collapse: collapse; }
        td { padding: 6px 0; border-bottom: 1px solid #eee; }
    </style>
</head>
<body>
    <div class="container">
        <h2>Thank you for your order, %s!</h2>
        <div class="order-box">
            <p><strong>Order Number:</strong> %s</p>
            <p><strong>Shipping:</strong> %s %s (%s)</p>
            <p><strong>Payment:</strong> %s</p>
        </div>
        <table>%s</table>
        <p><strong>Subtotal:</strong> %s</p>
        <p><strong>Total:</strong> %s</p>
    </div>
</body>
</html>`,
		html.EscapeString(order.CustomerDetails.FullName),
		order.OrderID,
		order.ShippingMethod, html.EscapeString(order.ShippingCompany), money(order.ShippingFee),
		html.EscapeString(order.PaymentMethod),
		rows.String(),
		money(order.CartTotal),
		money(order.FinalTotal),
	)
}

func money(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}
