// Package db manages the sqlite outlets database.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/nchapman/convosage/internal/text2sql"
)

// Outlet is one row of the outlets table.
type Outlet struct {
	OutletID        string  `json:"outlet_id"`
	OutletName      string  `json:"outlet_name"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Postcode        string  `json:"postcode"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	OperatingHours  string  `json:"operating_hours,omitempty"`
	HasDriveThru    bool    `json:"has_drive_thru"`
	HasWifi         bool    `json:"has_wifi"`
	SeatingCapacity int     `json:"seating_capacity,omitempty"`
	OpeningDate     string  `json:"opening_date,omitempty"`
}

// DB wraps the sqlite connection.
type DB struct {
	sql *sql.DB
}

// Open opens (creating if needed) the sqlite database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{sql: conn}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// InitSchema creates the outlets table and indexes if they don't exist.
func (d *DB) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS outlets (
			outlet_id TEXT PRIMARY KEY,
			outlet_name TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			postcode TEXT NOT NULL,
			latitude REAL,
			longitude REAL,
			phone TEXT,
			operating_hours TEXT,
			has_drive_thru INTEGER DEFAULT 0,
			has_wifi INTEGER DEFAULT 0,
			seating_capacity INTEGER,
			opening_date TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outlets_city ON outlets(city)`,
		`CREATE INDEX IF NOT EXISTS idx_outlets_state ON outlets(state)`,
		`CREATE INDEX IF NOT EXISTS idx_outlets_drive_thru ON outlets(has_drive_thru)`,
	}

	for _, stmt := range statements {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Upsert inserts or replaces one outlet row.
func (d *DB) Upsert(ctx context.Context, o Outlet) error {
	_, err := d.sql.ExecContext(ctx, `
		INSERT INTO outlets (
			outlet_id, outlet_name, address, city, state, postcode,
			latitude, longitude, phone, operating_hours,
			has_drive_thru, has_wifi, seating_capacity, opening_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(outlet_id) DO UPDATE SET
			outlet_name = excluded.outlet_name,
			address = excluded.address,
			city = excluded.city,
			state = excluded.state,
			postcode = excluded.postcode,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			phone = excluded.phone,
			operating_hours = excluded.operating_hours,
			has_drive_thru = excluded.has_drive_thru,
			has_wifi = excluded.has_wifi,
			seating_capacity = excluded.seating_capacity,
			opening_date = excluded.opening_date,
			updated_at = CURRENT_TIMESTAMP`,
		o.OutletID, o.OutletName, o.Address, o.City, o.State, o.Postcode,
		o.Latitude, o.Longitude, o.Phone, o.OperatingHours,
		o.HasDriveThru, o.HasWifi, o.SeatingCapacity, o.OpeningDate)
	if err != nil {
		return fmt.Errorf("failed to upsert outlet %s: %w", o.OutletID, err)
	}
	return nil
}

// CountOutlets returns the total number of outlets.
func (d *DB) CountOutlets(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM outlets").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count outlets: %w", err)
	}
	return count, nil
}

// AllOutlets returns every outlet with its full column set.
func (d *DB) AllOutlets(ctx context.Context) ([]Outlet, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT outlet_id, outlet_name, address, city, state, postcode,
		       latitude, longitude, phone, operating_hours,
		       has_drive_thru, has_wifi, seating_capacity, opening_date
		FROM outlets
		ORDER BY state, city, outlet_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list outlets: %w", err)
	}
	defer rows.Close()

	var outlets []Outlet
	for rows.Next() {
		var o Outlet
		var lat, lng sql.NullFloat64
		var phone, hours, opened sql.NullString
		var seats sql.NullInt64
		if err := rows.Scan(&o.OutletID, &o.OutletName, &o.Address, &o.City, &o.State, &o.Postcode,
			&lat, &lng, &phone, &hours, &o.HasDriveThru, &o.HasWifi, &seats, &opened); err != nil {
			return nil, fmt.Errorf("failed to scan outlet row: %w", err)
		}
		o.Latitude = lat.Float64
		o.Longitude = lng.Float64
		o.Phone = phone.String
		o.OperatingHours = hours.String
		o.SeatingCapacity = int(seats.Int64)
		o.OpeningDate = opened.String
		outlets = append(outlets, o)
	}
	return outlets, rows.Err()
}

// RunQuery executes a generated text2sql query and returns outlet rows.
// Count-shaped queries must go through RunCountQuery instead.
func (d *DB) RunQuery(ctx context.Context, q text2sql.Query) ([]Outlet, error) {
	if q.Type == text2sql.QueryCount {
		return nil, fmt.Errorf("count query passed to RunQuery")
	}

	rows, err := d.sql.QueryContext(ctx, q.SQL, q.Params...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute outlet query: %w", err)
	}
	defer rows.Close()

	var outlets []Outlet
	for rows.Next() {
		var o Outlet
		if q.Type == text2sql.QueryOperatingHours {
			// Hours queries select a narrower column set.
			var hours sql.NullString
			if err := rows.Scan(&o.OutletID, &o.OutletName, &o.Address, &o.City, &hours); err != nil {
				return nil, fmt.Errorf("failed to scan outlet row: %w", err)
			}
			o.OperatingHours = hours.String
		} else {
			var phone, hours sql.NullString
			if err := rows.Scan(&o.OutletID, &o.OutletName, &o.Address, &o.City, &o.State,
				&phone, &hours, &o.HasDriveThru, &o.HasWifi); err != nil {
				return nil, fmt.Errorf("failed to scan outlet row: %w", err)
			}
			o.Phone = phone.String
			o.OperatingHours = hours.String
		}
		outlets = append(outlets, o)
	}
	return outlets, rows.Err()
}

// RunCountQuery executes a count-shaped text2sql query.
func (d *DB) RunCountQuery(ctx context.Context, q text2sql.Query) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, q.SQL, q.Params...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}
	return count, nil
}
