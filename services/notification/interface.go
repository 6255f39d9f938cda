// Package notification delivers booking confirmations to customers.
package notification

import "context"

// NotificationService sends a confirmation message to the customer's declared
// address. Delivery is best effort: implementations report success as a bool
// and never fail past this boundary, because the booking is already committed
// by the time a notification goes out.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, toAddress, name, detailsText string) bool
}
