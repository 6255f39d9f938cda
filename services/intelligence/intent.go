package intelligence

import (
	"context"
	"fmt"
	"strings"

	"scholaris/models"

	"go.uber.org/zap"
)

const intentPromptTemplate = `Classify the user's intent based on the latest message.
User Message: %q

Respond with EXACTLY one word: "BOOKING" or "QUERY".
If they say "hi", "hello", or ask about services, classify as "QUERY".
If they mention scheduling, dates, or explicitly say "book", classify as "BOOKING".`

// ClassifyIntent decides whether the latest user message starts (or continues)
// a booking or is a plain question. Only the literal token BOOKING maps to the
// booking intent; everything else, including a failed model call, is QUERY.
func ClassifyIntent(ctx context.Context, client Client, message string) models.Intent {
	out, err := client.Generate(ctx, fmt.Sprintf(intentPromptTemplate, message))
	if err != nil {
		zap.L().Debug("intent classification failed, defaulting to query", zap.Error(err))
		return models.IntentQuery
	}
	if strings.ToUpper(strings.TrimSpace(out)) == string(models.IntentBooking) {
		return models.IntentBooking
	}
	return models.IntentQuery
}
