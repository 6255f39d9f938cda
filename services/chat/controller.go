package chat

import (
	"context"
	"fmt"
	"strings"

	"scholaris/models"
	"scholaris/services/intelligence"

	"go.uber.org/zap"
)

// Accepted confirmation answers. Anything else while confirming earns a
// yes/no reprompt.
var (
	affirmatives = map[string]bool{"yes": true, "y": true, "confirm": true, "ok": true, "sure": true}
	negatives    = map[string]bool{"no": true, "cancel": true, "stop": true}
)

// advance is the state transition function: given the session and the new
// user message it returns the reply and whether the booking state should be
// reset once the reply has been recorded. It never fails the turn; collaborator
// errors degrade to fail-safe defaults per their contracts.
func (s *DefaultChatService) advance(ctx context.Context, session *models.Session, text string) (reply string, reset bool) {
	if session.Mode == models.ModeConfirming {
		return s.resolveConfirmation(ctx, session, text)
	}
	return s.collectOrAnswer(ctx, session, text)
}

// resolveConfirmation handles the yes/no gate in front of the store.
func (s *DefaultChatService) resolveConfirmation(ctx context.Context, session *models.Session, text string) (string, bool) {
	answer := strings.ToLower(strings.TrimSpace(text))

	switch {
	case affirmatives[answer]:
		details := models.DetailsFromPending(session.Pending)
		bookingID, err := s.Bookings.Save(ctx, details)
		if err != nil {
			zap.L().Error("booking save failed",
				zap.String("sessionID", session.ID), zap.Error(err))
			// Fields stay populated and the mode stays confirming, so a bare
			// "yes" retries the save.
			return fmt.Sprintf("Error saving booking: %v", err), false
		}

		// Best effort: the booking is committed whether or not the mail lands.
		s.Notifier.SendBookingConfirmation(ctx, details.Email, details.Name, detailsText(details))

		zap.L().Info("booking confirmed",
			zap.String("sessionID", session.ID), zap.Int64("bookingID", bookingID))
		return fmt.Sprintf(
			"Booking Confirmed!\n\nBooking ID: #%d\nI have sent a confirmation email to %s.",
			bookingID, details.Email,
		), true

	case negatives[answer]:
		return "Booking cancelled. How else can I help you?", true

	default:
		return "Please type 'Yes' to confirm the booking or 'No' to cancel.", false
	}
}

// collectOrAnswer classifies the message (booking intent is sticky while
// collecting), accumulates extracted fields and either prompts for the next
// missing field, presents the confirmation summary, or answers the query.
func (s *DefaultChatService) collectOrAnswer(ctx context.Context, session *models.Session, text string) (string, bool) {
	intent := models.IntentBooking
	if session.Mode != models.ModeCollecting {
		intent = intelligence.ClassifyIntent(ctx, s.LLM, text)
	}

	if intent != models.IntentBooking {
		answer, err := s.Responder.Answer(ctx, text, session.Messages)
		if err != nil {
			zap.L().Warn("query responder failed",
				zap.String("sessionID", session.ID), zap.Error(err))
			return "Sorry, I couldn't answer that right now. Please try again.", false
		}
		return answer, false
	}

	session.Mode = models.ModeCollecting

	// A nil result means extraction was unavailable this turn; the fields
	// gathered so far stand untouched.
	if result := intelligence.ExtractBookingDetails(ctx, s.LLM, session.BookingWindow()); result != nil {
		session.MergePending(result.Fields)
	}

	missing := missingFields(session.Pending)
	if len(missing) > 0 {
		return fmt.Sprintf(
			"I can help you book. I just need a few details. Could you please provide your %s?",
			models.FieldLabels[missing[0]],
		), false
	}

	session.Mode = models.ModeConfirming
	return confirmationSummary(models.DetailsFromPending(session.Pending)), false
}

// missingFields returns the unset booking fields in prompt priority order.
func missingFields(pending map[string]string) []string {
	var missing []string
	for _, field := range models.FieldOrder {
		if pending[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func confirmationSummary(d models.BookingDetails) string {
	return fmt.Sprintf(`Please confirm your booking details:

Name: %s
Email: %s
Phone: %s
Type: %s
Date: %s at %s

Is this correct? (Yes/No)`, d.Name, d.Email, d.Phone, d.BookingType, d.Date, d.Time)
}

func detailsText(d models.BookingDetails) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nType: %s\nDate: %s at %s",
		d.Name, d.Email, d.Phone, d.BookingType, d.Date, d.Time)
}
