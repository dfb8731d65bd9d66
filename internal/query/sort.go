package query

import (
	"fmt"
	"regexp"
	"strings"
)

var sortPattern = regexp.MustCompile(`^[A-Za-z,\s]+$`)

// SortField orders a listing by one column. Column is the database column.
type SortField struct {
	Column string
	Desc   bool
}

// Columns maps lower-cased API field names to database columns.
type Columns map[string]string

// DefaultSort is applied when the client gives no sort.
var DefaultSort = []SortField{{Column: "created_at", Desc: true}}

// ParseSort reads a sort string such as "name asc, createdAt desc".
// The direction defaults to ascending.
func ParseSort(raw string, columns Columns) ([]SortField, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSort, nil
	}
	if !sortPattern.MatchString(raw) {
		return nil, fmt.Errorf(`Sort must be a comma separated string of space separated column and order direction e.g. "name asc, createdAt desc"`)
	}

	var fields []SortField
	for _, element := range strings.Split(raw, ",") {
		parts := strings.Fields(strings.ToLower(element))
		if len(parts) == 0 {
			continue
		}
		if len(parts) > 2 {
			return nil, fmt.Errorf("Invalid sort element '%s'", strings.TrimSpace(element))
		}
		column, ok := columns[parts[0]]
		if !ok {
			return nil, fmt.Errorf("Invalid sort column '%s'", parts[0])
		}
		field := SortField{Column: column}
		if len(parts) == 2 {
			switch parts[1] {
			case "asc":
			case "desc":
				field.Desc = true
			default:
				return nil, fmt.Errorf("Invalid sort direction '%s' for column %s. Enter 'asc' or 'desc'", parts[1], parts[0])
			}
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return DefaultSort, nil
	}
	return fields, nil
}

// OrderClause renders fields for an ORDER BY.
func OrderClause(fields []SortField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		dir := "asc"
		if f.Desc {
			dir = "desc"
		}
		parts = append(parts, f.Column+" "+dir)
	}
	return strings.Join(parts, ", ")
}
