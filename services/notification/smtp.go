package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// SMTPConfig carries the outbound mail credentials.
type SMTPConfig struct {
	Host        string
	Port        string
	Sender      string
	AppPassword string
}

// SMTPNotificationService is the production NotificationService, sending plain
// authenticated SMTP mail.
type SMTPNotificationService struct {
	cfg SMTPConfig
	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotificationService creates the SMTP notifier.
func NewSMTPNotificationService(cfg SMTPConfig) *SMTPNotificationService {
	return &SMTPNotificationService{cfg: cfg, send: smtp.SendMail}
}

// SendBookingConfirmation composes and transmits the confirmation mail.
// Missing credentials or a transmission failure are logged and reported as
// false; they never roll back the committed booking.
func (s *SMTPNotificationService) SendBookingConfirmation(ctx context.Context, toAddress, name, detailsText string) bool {
	if s.cfg.Sender == "" || s.cfg.AppPassword == "" {
		zap.L().Error("email credentials missing, confirmation not sent",
			zap.String("to", toAddress))
		return false
	}

	subject := fmt.Sprintf("Session Confirmed: %s", name)
	body := fmt.Sprintf(`Hello %s,

Your mentorship session has been successfully booked!

Here are your details:
--------------------------------------------------
%s
--------------------------------------------------

Please be ready 5 minutes before the scheduled time with your questions.

Best regards,
Scholaris Team
`, name, detailsText)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.cfg.Sender)
	fmt.Fprintf(&msg, "To: %s\r\n", toAddress)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Sender, s.cfg.AppPassword, s.cfg.Host)

	if err := s.send(addr, auth, s.cfg.Sender, []string{toAddress}, []byte(msg.String())); err != nil {
		zap.L().Error("failed to send confirmation email",
			zap.String("to", toAddress), zap.Error(err))
		return false
	}

	zap.L().Info("confirmation email sent", zap.String("to", toAddress))
	return true
}
