// Package text2sql converts natural-language outlet questions into
// parameterized SQL. It is deliberately pattern-based rather than
// model-based: every query shape is enumerated, locations are checked
// against a whitelist, and user text only ever reaches the database as a
// bound parameter.
package text2sql

import (
	"regexp"
	"strings"
)

// QueryType labels the shape of a generated query.
type QueryType string

const (
	QueryAll               QueryType = "all"
	QueryLocation          QueryType = "location"
	QueryDriveThru         QueryType = "drive_thru"
	QueryWifi              QueryType = "wifi"
	QueryLocationDriveThru QueryType = "location_drive_thru"
	QueryLocationWifi      QueryType = "location_wifi"
	QueryOperatingHours    QueryType = "operating_hours"
	QueryCount             QueryType = "count"
)

// Query is a generated SQL statement plus routing metadata.
type Query struct {
	SQL    string
	Params []any
	Type   QueryType

	// Location is the normalized location for location-shaped queries.
	Location string
	// OutletName is the search term for operating-hours queries.
	OutletName string
	// Valid is false when a requested location failed whitelist
	// validation; the SQL then matches no rows by construction.
	Valid bool
}

// allowedCities and allowedStates whitelist every location the generator
// will interpolate (as a bound parameter) into a query.
var allowedCities = map[string]bool{
	"kuala lumpur": true, "kl": true, "petaling jaya": true, "pj": true,
	"subang jaya": true, "shah alam": true, "putrajaya": true,
	"cyberjaya": true, "george town": true, "penang": true,
	"johor bahru": true, "jb": true,
}

var allowedStates = map[string]bool{
	"selangor": true, "kuala lumpur": true, "kl": true, "putrajaya": true,
	"penang": true, "johor": true,
}

var cityAliases = map[string]string{
	"kl": "Kuala Lumpur",
	"pj": "Petaling Jaya",
	"jb": "Johor Bahru",
}

const outletColumns = `outlet_id, outlet_name, address, city, state, phone,
       operating_hours, has_drive_thru, has_wifi`

type handler func(match []string) Query

type pattern struct {
	re      *regexp.Regexp
	handler handler
}

// patterns are tried in order; combined location+feature shapes must come
// before the bare location shapes or the location capture swallows the
// feature clause.
var patterns = []pattern{
	{regexp.MustCompile(`outlets?\s+in\s+([a-z0-9\s'\-;]+?)\s+with\s+drive[\s-]?thro?u?g?h?`), locationDriveThru},
	{regexp.MustCompile(`outlets?\s+in\s+([a-z0-9\s'\-;]+?)\s+(?:that\s+)?(?:have|has)\s+wifi`), locationWifi},

	{regexp.MustCompile(`outlets?\s+in\s+([a-z0-9\s'\-;]+?)\s*$`), byLocation},
	{regexp.MustCompile(`(?:find|show|list|get)\s+(?:me\s+)?(?:all\s+)?outlets?\s+in\s+([a-z0-9\s'\-;]+)`), byLocation},
	{regexp.MustCompile(`where\s+(?:are|is)\s+(?:the\s+)?outlets?\s+in\s+([a-z0-9\s'\-;]+)`), byLocation},

	{regexp.MustCompile(`(?:which|what)\s+outlets?\s+(?:have|has)\s+drive[\s-]?thro?u?g?h?`), withDriveThru},
	{regexp.MustCompile(`outlets?\s+with\s+drive[\s-]?thro?u?g?h?`), withDriveThru},
	{regexp.MustCompile(`drive[\s-]?thro?u?g?h?\s+outlets?`), withDriveThru},
	{regexp.MustCompile(`(?:which|what)\s+outlets?\s+(?:have|has)\s+wifi`), withWifi},
	{regexp.MustCompile(`outlets?\s+with\s+wifi`), withWifi},
	{regexp.MustCompile(`outlets?\s+(?:that\s+)?(?:have|has)\s+wifi`), withWifi},
	{regexp.MustCompile(`wifi\s+outlets?`), withWifi},

	{regexp.MustCompile(`(?:opening|operating)\s+hours?\s+(?:for|of)\s+(.+?)(?:\s+outlet)?$`), operatingHours},
	{regexp.MustCompile(`when\s+(?:does|is)\s+(.+?)\s+(?:outlet\s+)?open`), operatingHours},

	{regexp.MustCompile(`how\s+many\s+outlets?\s+(?:are\s+)?(?:there\s+)?in\s+([a-z\s]+)`), countByLocation},
	{regexp.MustCompile(`count\s+outlets?\s+in\s+([a-z\s]+)`), countByLocation},

	{regexp.MustCompile(`^(?:show|list|get)\s+(?:me\s+)?(?:all\s+)?outlets?$`), allOutlets},
	{regexp.MustCompile(`^all\s+outlets?$`), allOutlets},
}

// Generate converts a natural-language query into SQL. Unrecognized input
// falls through to the full outlet listing.
func Generate(natural string) Query {
	query := strings.ToLower(strings.TrimSpace(natural))

	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(query); m != nil {
			return p.handler(m)
		}
	}
	return allOutlets(nil)
}

// normalizeLocation cleans whitespace and expands city aliases.
func normalizeLocation(location string) string {
	location = strings.ToLower(strings.TrimSpace(location))
	if full, ok := cityAliases[location]; ok {
		return full
	}
	return titleCase(location)
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func validLocation(location string) bool {
	l := strings.ToLower(strings.TrimSpace(location))
	return allowedCities[l] || allowedStates[l]
}

func byLocation(match []string) Query {
	location := normalizeLocation(match[1])
	if !validLocation(location) {
		return Query{
			SQL:      "SELECT * FROM outlets WHERE 1=0",
			Type:     QueryLocation,
			Location: location,
		}
	}

	return Query{
		SQL: `SELECT ` + outletColumns + `
FROM outlets
WHERE LOWER(city) = LOWER(?) OR LOWER(state) = LOWER(?)
ORDER BY outlet_name`,
		Params:   []any{location, location},
		Type:     QueryLocation,
		Location: location,
		Valid:    true,
	}
}

func withDriveThru(match []string) Query {
	return Query{
		SQL: `SELECT ` + outletColumns + `
FROM outlets
WHERE has_drive_thru = 1
ORDER BY city, outlet_name`,
		Type:  QueryDriveThru,
		Valid: true,
	}
}

func withWifi(match []string) Query {
	return Query{
		SQL: `SELECT ` + outletColumns + `
FROM outlets
WHERE has_wifi = 1
ORDER BY city, outlet_name`,
		Type:  QueryWifi,
		Valid: true,
	}
}

func locationDriveThru(match []string) Query {
	location := normalizeLocation(match[1])
	if !validLocation(location) {
		return Query{
			SQL:      "SELECT * FROM outlets WHERE 1=0",
			Type:     QueryLocationDriveThru,
			Location: location,
		}
	}

	return Query{
		SQL: `SELECT ` + outletColumns + `
FROM outlets
WHERE (LOWER(city) = LOWER(?) OR LOWER(state) = LOWER(?))
  AND has_drive_thru = 1
ORDER BY outlet_name`,
		Params:   []any{location, location},
		Type:     QueryLocationDriveThru,
		Location: location,
		Valid:    true,
	}
}

func locationWifi(match []string) Query {
	location := normalizeLocation(match[1])
	if !validLocation(location) {
		return Query{
			SQL:      "SELECT * FROM outlets WHERE 1=0",
			Type:     QueryLocationWifi,
			Location: location,
		}
	}

	return Query{
		SQL: `SELECT ` + outletColumns + `
FROM outlets
WHERE (LOWER(city) = LOWER(?) OR LOWER(state) = LOWER(?))
  AND has_wifi = 1
ORDER BY outlet_name`,
		Params:   []any{location, location},
		Type:     QueryLocationWifi,
		Location: location,
		Valid:    true,
	}
}

func operatingHours(match []string) Query {
	outletName := strings.TrimSpace(match[1])
	like := "%" + outletName + "%"

	return Query{
		SQL: `SELECT outlet_id, outlet_name, address, city, operating_hours
FROM outlets
WHERE LOWER(outlet_name) LIKE LOWER(?)
   OR LOWER(address) LIKE LOWER(?)
ORDER BY outlet_name
LIMIT 5`,
		Params:     []any{like, like},
		Type:       QueryOperatingHours,
		OutletName: outletName,
		Valid:      true,
	}
}

func countByLocation(match []string) Query {
	location := normalizeLocation(match[1])
	if !validLocation(location) {
		return Query{
			SQL:      "SELECT 0 AS count",
			Type:     QueryCount,
			Location: location,
		}
	}

	return Query{
		SQL: `SELECT COUNT(*) AS count
FROM outlets
WHERE LOWER(city) = LOWER(?) OR LOWER(state) = LOWER(?)`,
		Params:   []any{location, location},
		Type:     QueryCount,
		Location: location,
		Valid:    true,
	}
}

func allOutlets(match []string) Query {
	return Query{
		SQL: `SELECT ` + outletColumns + `
FROM outlets
ORDER BY state, city, outlet_name`,
		Type:  QueryAll,
		Valid: true,
	}
}
