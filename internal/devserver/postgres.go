package devserver

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/mathangi54/travel-booking-client/internal/models"
)

// PostgresStore backs the dev server with Postgres, matching the schema the
// production backend uses.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects to the database at url and ensures the schema
// exists.
func NewPostgresStore(url string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresStoreWithDB wraps an existing connection; used by tests.
func NewPostgresStoreWithDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tours (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		duration_days INT NOT NULL DEFAULT 0,
		tour_type TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user'
	);
	CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id),
		tour_id INT NOT NULL REFERENCES tours(id),
		travel_date DATE NOT NULL,
		guests INT NOT NULL,
		total_price NUMERIC(10,2) NOT NULL,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		special_requests TEXT NOT NULL DEFAULT '',
		package_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping() error {
	return s.db.Ping()
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) ListTours() ([]models.Tour, error) {
	rows, err := s.db.Query(`SELECT id, name, description, price, duration_days, tour_type, image_url FROM tours ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	defer rows.Close()

	var tours []models.Tour
	for rows.Next() {
		var t models.Tour
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Price, &t.DurationDays, &t.TourType, &t.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan tour: %w", err)
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

func (s *PostgresStore) GetTour(id int) (*models.Tour, error) {
	var t models.Tour
	err := s.db.QueryRow(
		`SELECT id, name, description, price, duration_days, tour_type, image_url FROM tours WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Description, &t.Price, &t.DurationDays, &t.TourType, &t.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	return &t, nil
}

func (s *PostgresStore) ReplaceTours(tours []models.Tour) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM tours`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear tours: %w", err)
	}

	for _, t := range tours {
		_, err := tx.Exec(
			`INSERT INTO tours (name, description, price, duration_days, tour_type, image_url) VALUES ($1, $2, $3, $4, $5, $6)`,
			t.Name, t.Description, t.Price, t.DurationDays, t.TourType, t.ImageURL,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert tour: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateBooking(booking *models.Booking, userID *int) (int, error) {
	err := s.db.QueryRow(
		`INSERT INTO bookings
			(user_id, tour_id, travel_date, guests, total_price, customer_name,
			 customer_email, customer_phone, special_requests, package_type, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		userID, booking.TourID, booking.TravelDate, booking.Guests, booking.TotalPrice,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.SpecialRequests, booking.PackageType, "pending",
	).Scan(&booking.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert booking: %w", err)
	}

	booking.Status = "pending"
	if tour, err := s.GetTour(booking.TourID); err == nil {
		booking.TourName = tour.Name
	}
	return booking.ID, nil
}

func (s *PostgresStore) CreateUser(username, email, passwordHash string) (*models.User, error) {
	user := &models.User{Username: username, Email: email, Role: "user"}
	err := s.db.QueryRow(
		`INSERT INTO users (username, email, password_hash, role) VALUES ($1, $2, $3, 'user') RETURNING id`,
		username, email, passwordHash,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) GetUserByEmail(email string) (*models.User, string, error) {
	var user models.User
	var hash string
	err := s.db.QueryRow(
		`SELECT id, username, email, password_hash, role FROM users WHERE email = $1`, email,
	).Scan(&user.ID, &user.Username, &user.Email, &hash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	return &user, hash, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	// 23505 is unique_violation
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
