package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/logs"
	"github.com/nchapman/convosage/internal/text2sql"
)

const outletListLimit = 10

// OutletSearch answers location questions by translating natural language
// into SQL and formatting the matching outlets into a chat reply.
type OutletSearch struct {
	db *db.DB
}

func NewOutletSearch(database *db.DB) *OutletSearch {
	return &OutletSearch{db: database}
}

// Run converts the query to SQL, executes it, and returns a formatted
// response suitable for showing directly to the user.
func (o *OutletSearch) Run(ctx context.Context, query string) string {
	q := text2sql.Generate(query)

	if !q.Valid {
		return fmt.Sprintf("I couldn't find '%s' in our database. Please try cities like Kuala Lumpur, Petaling Jaya, Selangor, or Putrajaya.", q.Location)
	}

	if q.Type == text2sql.QueryCount {
		count, err := o.db.RunCountQuery(ctx, q)
		if err != nil {
			logs.Error("Outlet count query failed", "error", err)
			return fmt.Sprintf("I encountered an error while searching for outlets: %s", err)
		}
		return fmt.Sprintf("There are **%d outlets** in %s.", count, q.Location)
	}

	outlets, err := o.db.RunQuery(ctx, q)
	if err != nil {
		logs.Error("Outlet query failed", "error", err)
		return fmt.Sprintf("I encountered an error while searching for outlets: %s", err)
	}

	if len(outlets) == 0 {
		return noResults(q)
	}
	return formatOutlets(outlets, q)
}

func noResults(q text2sql.Query) string {
	switch q.Type {
	case text2sql.QueryLocation, text2sql.QueryLocationDriveThru, text2sql.QueryLocationWifi:
		return fmt.Sprintf("I couldn't find any outlets in %s. Try searching in Kuala Lumpur, Petaling Jaya, or Selangor.", q.Location)
	case text2sql.QueryDriveThru:
		return "I couldn't find any outlets with drive-through service."
	case text2sql.QueryWifi:
		return "I couldn't find any outlets with WiFi."
	case text2sql.QueryOperatingHours:
		return fmt.Sprintf("I couldn't find operating hours for '%s'. Try using the full outlet name or address.", q.OutletName)
	default:
		return "I couldn't find any outlets matching your query."
	}
}

func formatOutlets(outlets []db.Outlet, q text2sql.Query) string {
	if q.Type == text2sql.QueryOperatingHours {
		parts := []string{"Here are the operating hours:\n"}
		matches := outlets
		if len(matches) > 3 {
			matches = matches[:3]
		}
		for _, outlet := range matches {
			parts = append(parts,
				fmt.Sprintf("\n**%s** (%s)", outlet.OutletName, outlet.City),
				fmt.Sprintf("Hours: %s", outlet.OperatingHours))
		}
		return strings.Join(parts, "\n")
	}

	locationInfo := ""
	if q.Location != "" {
		locationInfo = " in " + q.Location
	}

	count := len(outlets)
	plural := "s"
	if count == 1 {
		plural = ""
	}
	parts := []string{fmt.Sprintf("I found **%d outlet%s**%s:\n", count, plural, locationInfo)}

	listed := outlets
	if len(listed) > outletListLimit {
		listed = listed[:outletListLimit]
	}
	for i, outlet := range listed {
		parts = append(parts,
			fmt.Sprintf("\n%d. **%s**", i+1, outlet.OutletName),
			fmt.Sprintf("   Address: %s, %s", outlet.Address, outlet.City))

		if outlet.Phone != "" {
			parts = append(parts, fmt.Sprintf("   Phone: %s", outlet.Phone))
		}
		if outlet.OperatingHours != "" {
			parts = append(parts, fmt.Sprintf("   Hours: %s", outlet.OperatingHours))
		}

		var features []string
		if outlet.HasDriveThru {
			features = append(features, "Drive-Through")
		}
		if outlet.HasWifi {
			features = append(features, "WiFi")
		}
		if len(features) > 0 {
			parts = append(parts, fmt.Sprintf("   Features: %s", strings.Join(features, ", ")))
		}
	}

	if count > outletListLimit {
		parts = append(parts, fmt.Sprintf("\n... and %d more outlets.", count-outletListLimit))
	}

	return strings.Join(parts, "\n")
}
