package db

import (
	"context"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed outlets.csv
var seedFS embed.FS

// IngestCSV reads outlet rows from r and upserts them. The first row
// must be a header; columns are matched by name so order is flexible.
func (d *DB) IngestCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"outlet_id", "outlet_name", "address", "city", "state"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("CSV missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read CSV row: %w", err)
		}

		o := Outlet{
			OutletID:       field(record, "outlet_id"),
			OutletName:     field(record, "outlet_name"),
			Address:        field(record, "address"),
			City:           field(record, "city"),
			State:          field(record, "state"),
			Postcode:       field(record, "postcode"),
			Phone:          field(record, "phone"),
			OperatingHours: field(record, "operating_hours"),
			OpeningDate:    field(record, "opening_date"),
		}
		o.Latitude, _ = strconv.ParseFloat(field(record, "latitude"), 64)
		o.Longitude, _ = strconv.ParseFloat(field(record, "longitude"), 64)
		o.SeatingCapacity, _ = strconv.Atoi(field(record, "seating_capacity"))
		o.HasDriveThru = parseBool(field(record, "has_drive_thru"))
		o.HasWifi = parseBool(field(record, "has_wifi"))

		if o.OutletID == "" {
			continue
		}
		if err := d.Upsert(ctx, o); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// IngestFile ingests outlets from a CSV file on disk.
func (d *DB) IngestFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()
	return d.IngestCSV(ctx, f)
}

// IngestSeed loads the bundled sample outlet data.
func (d *DB) IngestSeed(ctx context.Context) (int, error) {
	f, err := seedFS.Open("outlets.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to open seed data: %w", err)
	}
	defer f.Close()
	return d.IngestCSV(ctx, f)
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
