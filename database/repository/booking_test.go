package repository

import (
	"context"
	"testing"

	"scholaris/database"
	"scholaris/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func janeDetails() models.BookingDetails {
	return models.BookingDetails{
		Name:        "Jane",
		Email:       "jane@x.com",
		Phone:       "555-1234",
		BookingType: "Mock Interview",
		Date:        "2024-05-01",
		Time:        "10am",
	}
}

func TestBookingSave_AssignsSequentialIDs(t *testing.T) {
	repo := NewSQLiteBookingRepo(testDB(t))
	ctx := context.Background()

	id1, err := repo.Save(ctx, janeDetails())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)

	id2, err := repo.Save(ctx, janeDetails())
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)
}

func TestBookingSave_WritesCustomerAndBookingAtomically(t *testing.T) {
	db := testDB(t)
	repo := NewSQLiteBookingRepo(db)
	ctx := context.Background()

	id, err := repo.Save(ctx, janeDetails())
	require.NoError(t, err)

	var name, email, phone, status string
	err = db.SQL().QueryRow(`
		SELECT c.name, c.email, c.phone, b.status
		FROM bookings b JOIN customers c ON b.customer_id = c.id
		WHERE b.id = ?`, id,
	).Scan(&name, &email, &phone, &status)
	require.NoError(t, err)
	assert.Equal(t, "Jane", name)
	assert.Equal(t, "jane@x.com", email)
	assert.Equal(t, "555-1234", phone)
	assert.Equal(t, models.BookingStatusConfirmed, status)
}

func TestBookingSave_InsertsCustomerUnconditionally(t *testing.T) {
	// No dedup by email: each confirmation gets its own customer row.
	db := testDB(t)
	repo := NewSQLiteBookingRepo(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, janeDetails())
	require.NoError(t, err)
	_, err = repo.Save(ctx, janeDetails())
	require.NoError(t, err)

	var customers int
	require.NoError(t, db.SQL().QueryRow(
		`SELECT COUNT(*) FROM customers WHERE email = 'jane@x.com'`,
	).Scan(&customers))
	assert.Equal(t, 2, customers)
}

func TestBookingList_NewestFirstAndFiltered(t *testing.T) {
	repo := NewSQLiteBookingRepo(testDB(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, janeDetails())
	require.NoError(t, err)

	bob := models.BookingDetails{
		Name: "Bob", Email: "bob@y.org", Phone: "555-9999",
		BookingType: "Resume Review", Date: "2024-06-02", Time: "2pm",
	}
	_, err = repo.Save(ctx, bob)
	require.NoError(t, err)

	all, err := repo.List(ctx, models.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bob", all[0].Name, "newest booking comes first")
	assert.Equal(t, "Jane", all[1].Name)

	// Case-insensitive name/email search.
	found, err := repo.List(ctx, models.BookingFilter{Search: "JANE"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "jane@x.com", found[0].Email)

	found, err = repo.List(ctx, models.BookingFilter{Search: "y.org"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bob", found[0].Name)

	// Exact date filter.
	found, err = repo.List(ctx, models.BookingFilter{Date: "2024-06-02"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Resume Review", found[0].BookingType)

	// Combined filters narrow to nothing.
	found, err = repo.List(ctx, models.BookingFilter{Search: "Jane", Date: "2024-06-02"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestBookingMetrics_Counts(t *testing.T) {
	db := testDB(t)
	repo := NewSQLiteBookingRepo(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, janeDetails())
	require.NoError(t, err)
	_, err = repo.Save(ctx, janeDetails())
	require.NoError(t, err)

	// Status mutation is an administrative concern; simulate one directly.
	_, err = db.SQL().Exec(`UPDATE bookings SET status = 'Pending' WHERE id = 1`)
	require.NoError(t, err)

	metrics, err := repo.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookingMetrics{Total: 2, Confirmed: 1, Pending: 1}, metrics)
}
