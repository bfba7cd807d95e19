package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/washify/booking/internal/kafka"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<html>
<body style="font-family: sans-serif; color: #1a1a1a;">
  <h1>Thank you for your booking!</h1>
  <p>Your booking number is <strong>{{.BookingNumber}}</strong>. Keep it to look up your booking.</p>
  <h2>{{.ServiceName}}</h2>
  <p>{{.ServicePrice}} kr</p>
  <table>
    <tr><td>Date</td><td>{{.BookingDate}}</td></tr>
    <tr><td>Time</td><td>{{.BookingTime}}</td></tr>
    <tr><td>Address</td><td>{{.Address}}, {{.PostalCode}} {{.City}}</td></tr>
    <tr><td>Car</td><td>{{.CarModel}}{{if .LicensePlate}} ({{.LicensePlate}}){{end}}</td></tr>
  </table>
  <p>We come to you. See you soon!</p>
</body>
</html>`))

// Confirmation renders the booking confirmation message for a created booking.
func Confirmation(event kafka.BookingEvent) (Message, error) {
	var buf strings.Builder
	if err := confirmationTmpl.Execute(&buf, event); err != nil {
		return Message{}, fmt.Errorf("render confirmation email: %w", err)
	}
	return Message{
		To:      event.CustomerEmail,
		Subject: fmt.Sprintf("Booking confirmation - %s", event.BookingNumber),
		HTML:    buf.String(),
	}, nil
}
