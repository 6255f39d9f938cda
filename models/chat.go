package models

// Role identifies who produced a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SessionMode governs how the next user message is interpreted.
type SessionMode string

const (
	// ModeIdle: no booking attempt in progress; intent is classified per message.
	ModeIdle SessionMode = "idle"
	// ModeCollecting: a booking attempt is in progress; every message feeds the extractor.
	ModeCollecting SessionMode = "collecting"
	// ModeConfirming: all six fields captured; waiting for an explicit yes/no.
	ModeConfirming SessionMode = "confirming"
)

// Session is the accumulated state of one ongoing conversation.
type Session struct {
	ID          string            `json:"sessionId"`
	Messages    []ChatMessage     `json:"messages"`
	Mode        SessionMode       `json:"mode"`
	Pending     map[string]string `json:"pendingFields"`
	ResetCursor int               `json:"resetCursor"`
}

// NewSession returns an empty idle session.
func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Mode:    ModeIdle,
		Pending: make(map[string]string),
	}
}

// AppendUser records an inbound user message.
func (s *Session) AppendUser(content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: RoleUser, Content: content})
}

// AppendAssistant records an outbound assistant reply.
func (s *Session) AppendAssistant(content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: RoleAssistant, Content: content})
}

// BookingWindow returns the messages belonging to the current booking attempt,
// i.e. everything at or after the reset cursor. Messages from cancelled or
// completed attempts are excluded so they cannot contaminate extraction.
func (s *Session) BookingWindow() []ChatMessage {
	if s.ResetCursor >= len(s.Messages) {
		return nil
	}
	return s.Messages[s.ResetCursor:]
}

// MergePending folds newly extracted values into the pending field map.
// Only non-empty values are applied, the latest extraction wins, and a
// previously captured field is never cleared by an empty one.
func (s *Session) MergePending(fields map[string]string) {
	if s.Pending == nil {
		s.Pending = make(map[string]string)
	}
	for key, value := range fields {
		if value != "" {
			s.Pending[key] = value
		}
	}
}

// ResetBooking returns the session to idle: pending fields are cleared and the
// reset cursor advances past every message seen so far, so the next booking
// attempt starts from zero accumulated state.
func (s *Session) ResetBooking() {
	s.Mode = ModeIdle
	s.Pending = make(map[string]string)
	s.ResetCursor = len(s.Messages)
}
