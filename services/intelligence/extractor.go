package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"scholaris/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

const extractorPromptTemplate = `You are a booking assistant. Analyze the conversation history and extract the following booking details:
Name, Email, Phone, Booking Type, Date, Time.

Current Conversation History:
%s

Return a JSON object with the extracted fields. If a field is not mentioned, set it to null.
Also list which fields are strictly missing from the requirements.`

// extractionSchema constrains the model to the six nullable booking fields
// plus the missing-field list. Absent fields come back as null, never omitted.
var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":         {Type: genai.TypeString, Nullable: true, Description: "Customer name, or null if missing"},
		"email":        {Type: genai.TypeString, Nullable: true, Description: "Customer email, or null if missing"},
		"phone":        {Type: genai.TypeString, Nullable: true, Description: "Customer phone, or null if missing"},
		"booking_type": {Type: genai.TypeString, Nullable: true, Description: "Type of service (e.g., Mock Interview), or null if missing"},
		"date":         {Type: genai.TypeString, Nullable: true, Description: "Preferred date (YYYY-MM-DD), or null if missing"},
		"time":         {Type: genai.TypeString, Nullable: true, Description: "Preferred time, or null if missing"},
		"missing_fields": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of fields that are still missing",
		},
	},
	Required: []string{"name", "email", "phone", "booking_type", "date", "time", "missing_fields"},
}

type extractionPayload struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	BookingType   *string  `json:"booking_type"`
	Date          *string  `json:"date"`
	Time          *string  `json:"time"`
	MissingFields []string `json:"missing_fields"`
}

// ExtractBookingDetails derives booking fields from the turns of the current
// booking attempt. It fails closed: any model, transport or parse problem
// yields nil, which callers must treat as "no new information".
func ExtractBookingDetails(ctx context.Context, client Client, turns []models.ChatMessage) *models.ExtractionResult {
	if len(turns) == 0 {
		return nil
	}

	var history strings.Builder
	for _, turn := range turns {
		fmt.Fprintf(&history, "%s: %s\n", turn.Role, turn.Content)
	}

	raw, err := client.GenerateJSON(ctx,
		fmt.Sprintf(extractorPromptTemplate, history.String()), extractionSchema)
	if err != nil {
		zap.L().Debug("field extraction call failed", zap.Error(err))
		return nil
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &payload); err != nil {
		zap.L().Debug("field extraction returned unparsable JSON", zap.Error(err))
		return nil
	}

	fields := make(map[string]string)
	put := func(key string, value *string) {
		if value == nil {
			return
		}
		v := strings.TrimSpace(*value)
		// Some models spell out the null rather than using JSON null.
		if v == "" || strings.EqualFold(v, "null") {
			return
		}
		fields[key] = v
	}
	put(models.FieldName, payload.Name)
	put(models.FieldEmail, payload.Email)
	put(models.FieldPhone, payload.Phone)
	put(models.FieldBookingType, payload.BookingType)
	put(models.FieldDate, payload.Date)
	put(models.FieldTime, payload.Time)

	return &models.ExtractionResult{
		Fields:        fields,
		MissingFields: payload.MissingFields,
	}
}
