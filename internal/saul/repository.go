package saul

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is the persisted form of a device registration.
//
// The driver itself cannot be stored; DriverKind and DriverConfig describe
// how to rebuild it on startup (see the driver factory in cmd/senselink).
type Record struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     Category       `json:"category"`
	DriverKind   string         `json:"driver_kind"`
	DriverConfig map[string]any `json:"driver_config,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Repository defines the interface for device record persistence.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// List retrieves all device records in creation order.
	List(ctx context.Context) ([]Record, error)

	// Create inserts a new record. An empty ID is generated.
	// Returns ErrDeviceExists if the name is already taken.
	Create(ctx context.Context, rec *Record) error

	// DeleteByName removes the record with the given device name.
	// Returns ErrDeviceNotFound if no such record exists.
	DeleteByName(ctx context.Context, name string) error
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// List retrieves all device records ordered by creation time, which is the
// order they are re-registered in on startup.
func (r *SQLiteRepository) List(ctx context.Context) ([]Record, error) {
	query := `
		SELECT id, name, category, driver_kind, driver_config, created_at
		FROM devices
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying device records: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var records []Record
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating device records: %w", err)
	}
	return records, nil
}

// Create inserts a new record, generating an ID if none is set.
func (r *SQLiteRepository) Create(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	config, err := marshalConfig(rec.DriverConfig)
	if err != nil {
		return err
	}

	// Name uniqueness is enforced both here and by the schema; the explicit
	// check keeps the sentinel error independent of driver error strings.
	var exists int
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM devices WHERE name = ?`, rec.Name)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("checking device record: %w", err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %q", ErrDeviceExists, rec.Name)
	}

	query := `
		INSERT INTO devices (id, name, category, driver_kind, driver_config, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		int(rec.Category),
		rec.DriverKind,
		config,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting device record: %w", err)
	}
	return nil
}

// DeleteByName removes the record with the given device name.
func (r *SQLiteRepository) DeleteByName(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting device record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrDeviceNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord scans a device record row.
func scanRecord(s scanner) (*Record, error) {
	var (
		rec       Record
		category  int
		config    string
		createdAt string
	)

	if err := s.Scan(&rec.ID, &rec.Name, &category, &rec.DriverKind, &config, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("scanning device record: %w", err)
	}

	rec.Category = Category(category) //nolint:gosec // Category column is a single byte by schema

	if config != "" && config != "{}" {
		if err := json.Unmarshal([]byte(config), &rec.DriverConfig); err != nil {
			return nil, fmt.Errorf("parsing driver config for %q: %w", rec.Name, err)
		}
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at for %q: %w", rec.Name, err)
	}
	rec.CreatedAt = ts

	return &rec, nil
}

// marshalConfig serialises a driver config map to its JSON column form.
func marshalConfig(config map[string]any) (string, error) {
	if len(config) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("encoding driver config: %w", err)
	}
	return string(data), nil
}
