// Package repository contains the SQLite-backed data access layer.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"scholaris/database"
	"scholaris/models"
)

// BookingRepository persists confirmed bookings and serves the admin view.
type BookingRepository interface {
	// Save writes the customer and booking rows in one transaction and
	// returns the new booking id.
	Save(ctx context.Context, details models.BookingDetails) (int64, error)
	// List returns joined booking+customer records, newest first.
	List(ctx context.Context, filter models.BookingFilter) ([]models.BookingRecord, error)
	// Metrics returns the summary counts for the admin view.
	Metrics(ctx context.Context) (models.BookingMetrics, error)
}

// SQLiteBookingRepo is the production BookingRepository.
type SQLiteBookingRepo struct {
	db *database.DB
}

// NewSQLiteBookingRepo creates a booking repository using the given database.
func NewSQLiteBookingRepo(db *database.DB) *SQLiteBookingRepo {
	return &SQLiteBookingRepo{db: db}
}

// Save inserts a fresh customer row and its booking atomically. A customer row
// is inserted unconditionally; no dedup by email is attempted.
func (r *SQLiteBookingRepo) Save(ctx context.Context, details models.BookingDetails) (int64, error) {
	tx, err := r.db.SQL().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO customers (name, email, phone) VALUES (?, ?, ?)`,
		details.Name, details.Email, details.Phone,
	)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	customerID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("customer id: %w", err)
	}

	res, err = tx.ExecContext(ctx,
		`INSERT INTO bookings (customer_id, booking_type, date, time, status) VALUES (?, ?, ?, ?, ?)`,
		customerID, details.BookingType, details.Date, details.Time, models.BookingStatusConfirmed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	bookingID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("booking id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit booking: %w", err)
	}
	return bookingID, nil
}

// List serves the admin table: bookings joined to their customers, optionally
// narrowed by a case-insensitive name/email search and an exact date.
func (r *SQLiteBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.BookingRecord, error) {
	query := `
		SELECT b.id, c.name, c.email, c.phone, b.booking_type, b.date, b.time, b.status
		FROM bookings b
		JOIN customers c ON b.customer_id = c.id`
	var args []any
	var where []string

	if filter.Search != "" {
		where = append(where, `(c.name LIKE '%' || ? || '%' COLLATE NOCASE OR c.email LIKE '%' || ? || '%' COLLATE NOCASE)`)
		args = append(args, filter.Search, filter.Search)
	}
	if filter.Date != "" {
		where = append(where, `b.date = ?`)
		args = append(args, filter.Date)
	}
	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY b.id DESC"

	rows, err := r.db.SQL().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Metrics returns total, confirmed and pending counts across all bookings.
func (r *SQLiteBookingRepo) Metrics(ctx context.Context) (models.BookingMetrics, error) {
	var m models.BookingMetrics
	err := r.db.SQL().QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN status = 'Confirmed' THEN 1 END),
			COUNT(CASE WHEN status = 'Pending' THEN 1 END)
		FROM bookings`,
	).Scan(&m.Total, &m.Confirmed, &m.Pending)
	if err != nil {
		return models.BookingMetrics{}, fmt.Errorf("booking metrics: %w", err)
	}
	return m, nil
}

func scanRecords(rows *sql.Rows) ([]models.BookingRecord, error) {
	var records []models.BookingRecord
	for rows.Next() {
		var rec models.BookingRecord
		if err := rows.Scan(
			&rec.BookingID, &rec.Name, &rec.Email, &rec.Phone,
			&rec.BookingType, &rec.Date, &rec.Time, &rec.Status,
		); err != nil {
			return nil, fmt.Errorf("scan booking record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
