package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) table() string {
	return "bookings"
}

// Create persists the durable trace of an order creation. Callers treat a
// failure as a warning: checkout must keep working when the store is down.
func (r BookingRepository) Create(rec models.BookingRecord) (int64, error) {
	db := r.db()
	table := r.table()
	if db == nil || !intdb.HasTable(db, table) {
		return 0, fmt.Errorf("bookings table not available")
	}

	res, err := db.Exec(`
		INSERT INTO `+table+`
			(order_id, package_id, full_name, email, phone, travelers,
			 travel_date, special_requests, amount_paise, currency, demo,
			 payment_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		rec.OrderID,
		rec.PackageID,
		rec.FullName,
		rec.Email,
		rec.Phone,
		rec.Travelers,
		rec.TravelDate,
		intdb.NullIfEmpty(rec.SpecialRequests),
		rec.AmountPaise,
		rec.Currency,
		rec.Demo,
		models.PaymentStatusPending,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// MarkPaid records a verified payment against its order. An unknown order_id
// is not an error here; demo orders verified from another session simply
// have no row.
func (r BookingRepository) MarkPaid(orderID, paymentID string) error {
	if orderID == "" {
		return domain.ValidationError{Field: "order_id", Msg: "order_id is required"}
	}
	db := r.db()
	table := r.table()
	if db == nil || !intdb.HasTable(db, table) {
		return fmt.Errorf("bookings table not available")
	}

	if intdb.HasColumn(db, table, "payment_id") {
		_, err := db.Exec(`
			UPDATE `+table+`
			SET payment_status = ?, payment_id = ?, updated_at = NOW()
			WHERE order_id = ?`,
			models.PaymentStatusPaid, paymentID, orderID,
		)
		return err
	}

	// older schema without payment_id: record the status transition only
	_, err := db.Exec(`
		UPDATE `+table+`
		SET payment_status = ?, updated_at = NOW()
		WHERE order_id = ?`,
		models.PaymentStatusPaid, orderID,
	)
	return err
}

const bookingColumns = `
		id,
		COALESCE(order_id,''),
		COALESCE(package_id,''),
		COALESCE(full_name,''),
		COALESCE(email,''),
		COALESCE(phone,''),
		COALESCE(travelers,0),
		COALESCE(travel_date,''),
		COALESCE(special_requests,''),
		COALESCE(amount_paise,0),
		COALESCE(currency,''),
		COALESCE(demo,0),
		COALESCE(payment_status,''),
		COALESCE(payment_id,''),
		created_at,
		updated_at`

// GetByID fetches one booking record by primary key.
func (r BookingRepository) GetByID(id int64) (models.BookingRecord, error) {
	if id <= 0 {
		return models.BookingRecord{}, domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	db := r.db()
	table := r.table()
	if db == nil || !intdb.HasTable(db, table) {
		return models.BookingRecord{}, fmt.Errorf("bookings table not available")
	}

	row := db.QueryRow(`SELECT`+bookingColumns+` FROM `+table+` WHERE id = ? LIMIT 1`, id)
	rec, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.BookingRecord{}, domain.NotFoundError{Resource: "booking"}
	}
	return rec, err
}

// List returns recent bookings, newest first.
func (r BookingRepository) List(limit int) ([]models.BookingRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	db := r.db()
	table := r.table()
	if db == nil || !intdb.HasTable(db, table) {
		return nil, fmt.Errorf("bookings table not available")
	}

	rows, err := db.Query(`SELECT`+bookingColumns+` FROM `+table+` ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookingRecord{}
	for rows.Next() {
		rec, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.BookingRecord, error) {
	var rec models.BookingRecord
	err := row.Scan(
		&rec.ID,
		&rec.OrderID,
		&rec.PackageID,
		&rec.FullName,
		&rec.Email,
		&rec.Phone,
		&rec.Travelers,
		&rec.TravelDate,
		&rec.SpecialRequests,
		&rec.AmountPaise,
		&rec.Currency,
		&rec.Demo,
		&rec.PaymentStatus,
		&rec.PaymentID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
