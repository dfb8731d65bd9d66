package query

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Errors maps a query parameter to the reason it was rejected.
type Errors map[string]string

// Raw holds the common list query parameters as sent by the client.
type Raw struct {
	Sort  string
	Page  string
	Limit string
	From  string
	To    string
}

// Params are the validated common list parameters.
type Params struct {
	From *time.Time
	To   *time.Time
	Sort []SortField
	// Page is nil when every row is requested.
	Page *Page
}

// Parse validates raw against the sortable columns of one entity and
// collects every rejected parameter.
func Parse(raw Raw, columns Columns) (Params, Errors) {
	errs := Errors{}
	params := Params{}

	if from, err := parseDate(raw.From, false); err != nil {
		errs["from"] = "Date from must be a valid date"
	} else {
		params.From = from
	}
	if to, err := parseDate(raw.To, true); err != nil {
		errs["to"] = "Date to must be a valid date"
	} else {
		params.To = to
	}
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		errs["to"] = "Date to cannot be before date from"
	}

	sort, err := ParseSort(raw.Sort, columns)
	if err != nil {
		errs["sort"] = err.Error()
	}
	params.Sort = sort

	page, pageErrs := ParsePage(raw.Page, raw.Limit)
	for k, v := range pageErrs {
		errs[k] = v
	}
	params.Page = page

	if len(errs) > 0 {
		return params, errs
	}
	return params, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates. A plain date used
// as an upper bound covers the whole day. Bounds are returned in UTC to
// match the stored timestamps.
func parseDate(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
