package mailer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"movie-mates/pkg/utils"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// BookingDetails is the content of a confirmation email and its QR code
type BookingDetails struct {
	TransactionID string   `json:"transactionID"`
	Movie         string   `json:"movie"`
	Time          string   `json:"time"`
	Date          string   `json:"date"`
	Theatre       string   `json:"theatre"`
	Seats         []string `json:"seats"`
	FoodItems     []string `json:"foodItems"`
	TotalCost     float64  `json:"totalCost"`
}

// Mailer is the notification gateway consumed by the services.
// Delivery failures are the caller's to handle; sends never mutate state.
type Mailer interface {
	SendBookingConfirmation(details *BookingDetails, to, firstName string) error
	SendNotice(to, subject, text string) error
	SendPromo(to, message string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		log:    log.With(zap.String("component", "mailer")),
	}
}

// SendBookingConfirmation mails the booking summary with an embedded QR code
// encoding the full booking details
func (m *smtpMailer) SendBookingConfirmation(details *BookingDetails, to, firstName string) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode booking details: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	html := fmt.Sprintf(`<h1>Hello %s,</h1>
		<p>Thank you for booking with Movie Mates!</p>
		<p>Here are your booking details:</p>
		<ul>
		<li>Transaction ID: %s</li>
		<li>Movie: %s</li>
		<li>Time: %s</li>
		<li>Date: %s</li>
		<li>Seat No.: %s</li>
		<li>Food Items: %s</li>
		<li>Total Cost: %.2f</li>
		</ul>
		<p>Please find attached your QR code for entry.</p>
		<img src="cid:qrcode.png" alt="Your QR Code"/>
		<p>Enjoy your movie!</p>
		<p>Best,<br/>The Movie Mates Team</p>`,
		firstName,
		details.TransactionID,
		details.Movie,
		details.Time,
		details.Date,
		strings.Join(details.Seats, ", "),
		strings.Join(details.FoodItems, ", "),
		details.TotalCost,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your Movie Mates Booking Confirmation")
	msg.SetBody("text/html", html)
	msg.Embed("qrcode.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(png)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send booking confirmation to %s: %w", to, err)
	}

	m.log.Info("Booking confirmation sent",
		zap.String("to", to),
		zap.String("transaction_id", details.TransactionID),
	)
	return nil
}

// SendNotice mails a short booking lifecycle notice (updated, deleted)
func (m *smtpMailer) SendNotice(to, subject, text string) error {
	html := fmt.Sprintf(`<h1>%s</h1>
		<p>Hello Movie Mates Member,</p>
		<p>%s</p>
		<p>Thank you for choosing Movie Mates!</p>
		<p>Best,<br/>The Movie Mates Team</p>`, subject, text)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %q notice to %s: %w", subject, to, err)
	}

	m.log.Info("Notice sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// SendPromo mails a promotional message
func (m *smtpMailer) SendPromo(to, message string) error {
	html := fmt.Sprintf(`<h1>Special Promo Alert from Movie Mates</h1>
		<p>Hello Movie Mates Member,</p>
		<p>%s</p>
		<p>Happy movie watching!</p>
		<p>Best,<br/>The Movie Mates Team</p>`, message)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Special Promo Alert")
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send promo to %s: %w", to, err)
	}

	m.log.Info("Promo sent", zap.String("to", to))
	return nil
}
