package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"` // empty on the first turn; server assigns one
	Text      string `json:"text"`       // the user's message
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	SessionID string      `json:"session_id"`
	Reply     string      `json:"reply"`
	Mode      SessionMode `json:"mode"`
}

// Intent is the coarse classification of a user message.
type Intent string

const (
	IntentBooking Intent = "BOOKING"
	IntentQuery   Intent = "QUERY"
)

// Passage is one retrieved knowledge-base excerpt used to ground an answer.
type Passage struct {
	Content string  `json:"content"`
	Rank    float64 `json:"rank,omitempty"`
}

// UploadDocumentRequest loads (or replaces) a document in the knowledge base.
type UploadDocumentRequest struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
}

// UploadDocumentResponse reports how much of the document was indexed.
type UploadDocumentResponse struct {
	DocumentID string `json:"document_id"`
	Chunks     int    `json:"chunks"`
}
