package chat

import (
	"context"
	"testing"

	"scholaris/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetUnknownReturnsFreshSession(t *testing.T) {
	store := NewMemorySessionStore()

	session, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Equal(t, "nope", session.ID)
	assert.Equal(t, models.ModeIdle, session.Mode)
	assert.NotNil(t, session.Pending)
	assert.Empty(t, session.Messages)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()

	session := models.NewSession("s1")
	session.AppendUser("hello")
	session.Mode = models.ModeCollecting
	session.Pending[models.FieldName] = "Jane"
	require.NoError(t, store.Set(context.Background(), session))

	loaded, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session.Messages, loaded.Messages)
	assert.Equal(t, models.ModeCollecting, loaded.Mode)
	assert.Equal(t, "Jane", loaded.Pending[models.FieldName])
}

func TestMemoryStore_HandsOutCopies(t *testing.T) {
	store := NewMemorySessionStore()

	session := models.NewSession("s1")
	session.Pending[models.FieldName] = "Jane"
	require.NoError(t, store.Set(context.Background(), session))

	// Mutating either the original or a loaded copy must not leak into the store.
	session.Pending[models.FieldName] = "Mallory"
	loaded, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	loaded.AppendUser("tamper")

	fresh, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", fresh.Pending[models.FieldName])
	assert.Empty(t, fresh.Messages)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemorySessionStore()

	session := models.NewSession("s1")
	session.AppendUser("hello")
	require.NoError(t, store.Set(context.Background(), session))
	require.NoError(t, store.Clear(context.Background(), "s1"))

	loaded, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Messages)
}

func TestSessionResetBookingAdvancesCursor(t *testing.T) {
	session := models.NewSession("s1")
	session.AppendUser("book me")
	session.AppendAssistant("which service?")
	session.Mode = models.ModeCollecting
	session.Pending[models.FieldName] = "Jane"

	session.ResetBooking()

	assert.Equal(t, models.ModeIdle, session.Mode)
	assert.Empty(t, session.Pending)
	assert.Equal(t, 2, session.ResetCursor)
	assert.Empty(t, session.BookingWindow())

	session.AppendUser("new attempt")
	require.Len(t, session.BookingWindow(), 1)
	assert.Equal(t, "new attempt", session.BookingWindow()[0].Content)
}

func TestSessionMergePendingKeepsNonEmptyValues(t *testing.T) {
	session := models.NewSession("s1")
	session.MergePending(map[string]string{models.FieldName: "Jane", models.FieldEmail: ""})
	assert.Equal(t, "Jane", session.Pending[models.FieldName])
	_, ok := session.Pending[models.FieldEmail]
	assert.False(t, ok, "empty values are never merged")

	// Later extraction wins for non-empty values only.
	session.MergePending(map[string]string{models.FieldName: "Jane Doe"})
	session.MergePending(map[string]string{models.FieldName: ""})
	assert.Equal(t, "Jane Doe", session.Pending[models.FieldName])
}
