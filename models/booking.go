package models

// Booking field keys, in the fixed priority order used when prompting for the
// next missing field.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldBookingType = "booking_type"
	FieldDate        = "date"
	FieldTime        = "time"
)

// FieldOrder is the canonical prompt priority for the six booking fields.
var FieldOrder = []string{FieldName, FieldEmail, FieldPhone, FieldBookingType, FieldDate, FieldTime}

// FieldLabels maps field keys to the display names used in user-facing prompts.
var FieldLabels = map[string]string{
	FieldName:        "Name",
	FieldEmail:       "Email",
	FieldPhone:       "Phone",
	FieldBookingType: "Booking Type",
	FieldDate:        "Date",
	FieldTime:        "Time",
}

// BookingDetails carries the six collected fields into the store.
type BookingDetails struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingType string `json:"booking_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// DetailsFromPending builds BookingDetails from a session's pending field map.
func DetailsFromPending(pending map[string]string) BookingDetails {
	return BookingDetails{
		Name:        pending[FieldName],
		Email:       pending[FieldEmail],
		Phone:       pending[FieldPhone],
		BookingType: pending[FieldBookingType],
		Date:        pending[FieldDate],
		Time:        pending[FieldTime],
	}
}

// ExtractionResult is what the field extractor derives from a conversation
// window: the fields it found and the ones it judged still missing.
type ExtractionResult struct {
	Fields        map[string]string `json:"fields"`
	MissingFields []string          `json:"missing_fields"`
}

// Customer is a persisted customer row.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is a persisted booking row, owned by a customer.
type Booking struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	BookingType string `json:"bookingType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

// BookingStatusConfirmed is the status every booking is created with.
const BookingStatusConfirmed = "Confirmed"

// BookingRecord is the joined booking+customer row served to the admin view.
type BookingRecord struct {
	BookingID   int64  `json:"bookingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BookingType string `json:"bookingType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

// BookingFilter narrows the admin booking list.
type BookingFilter struct {
	Search string `form:"search"` // substring match on customer name or email
	Date   string `form:"date"`   // exact date match
}

// BookingMetrics is the summary row shown above the admin table.
type BookingMetrics struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}
