// Package chat owns the booking dialogue state machine. Every inbound user
// message enters here and produces exactly one reply plus a session update.
package chat

import (
	"context"
	"fmt"

	"scholaris/database/repository"
	"scholaris/models"
	"scholaris/services/intelligence"
	"scholaris/services/knowledge"
	"scholaris/services/notification"
)

// ChatService processes one user turn end to end.
type ChatService interface {
	HandleMessage(ctx context.Context, sessionID, text string) (*models.ChatResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// DefaultChatService is the production ChatService.
type DefaultChatService struct {
	Sessions  SessionStore
	LLM       intelligence.Client
	Bookings  repository.BookingRepository
	Notifier  notification.NotificationService
	Responder knowledge.QueryResponder
}

// HandleMessage loads the session, advances the dialogue state machine by one
// user message and persists the updated session. Turns are synchronous: the
// reply is final by the time this returns.
func (s *DefaultChatService) HandleMessage(ctx context.Context, sessionID, text string) (*models.ChatResponse, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	session.AppendUser(text)
	reply, reset := s.advance(ctx, session, text)
	session.AppendAssistant(reply)
	if reset {
		// The reset cursor must land after the reply so a finished attempt,
		// confirmation banter included, never leaks into the next extraction.
		session.ResetBooking()
	}

	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &models.ChatResponse{
		SessionID: session.ID,
		Reply:     reply,
		Mode:      session.Mode,
	}, nil
}

// ResetSession discards all conversation state for the session.
func (s *DefaultChatService) ResetSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Clear(ctx, sessionID)
}
