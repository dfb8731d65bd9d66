package query_test

import (
	"testing"
	"time"

	"inventory/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = query.Columns{
	"name":      "name",
	"createdat": "created_at",
}

func TestParsePage_Defaults(t *testing.T) {
	page, errs := query.ParsePage("", "")
	require.Nil(t, errs)
	require.NotNil(t, page)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 0, page.Offset())
}

func TestParsePage_ClampsLimit(t *testing.T) {
	page, errs := query.ParsePage("3", "1000")
	require.Nil(t, errs)
	assert.Equal(t, 500, page.Limit)
	assert.Equal(t, 1000, page.Offset())

	page, errs = query.ParsePage("2", "2")
	require.Nil(t, errs)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 5, page.Offset())
}

func TestParsePage_All(t *testing.T) {
	page, errs := query.ParsePage("4", "ALL")
	assert.Nil(t, errs)
	assert.Nil(t, page)

	p := query.NewPagination(page, 42)
	assert.Equal(t, int64(42), p.Count)
	assert.Nil(t, p.Offset)
	assert.Zero(t, p.Limit)
}

func TestParsePage_Invalid(t *testing.T) {
	_, errs := query.ParsePage("0", "many")
	assert.Equal(t, "Page number must be greater than 0", errs["page"])
	assert.Equal(t, "Invalid limit. Provide number 5-500 or 'all'", errs["limit"])
}

func TestParseSort(t *testing.T) {
	fields, err := query.ParseSort("", columns)
	require.NoError(t, err)
	assert.Equal(t, query.DefaultSort, fields)

	fields, err = query.ParseSort("name, createdAt desc", columns)
	require.NoError(t, err)
	assert.Equal(t, []query.SortField{{Column: "name"}, {Column: "created_at", Desc: true}}, fields)
	assert.Equal(t, "name asc, created_at desc", query.OrderClause(fields))

	_, err = query.ParseSort("name sideways", columns)
	assert.ErrorContains(t, err, "Invalid sort direction 'sideways'")

	_, err = query.ParseSort("password asc", columns)
	assert.ErrorContains(t, err, "Invalid sort column")

	_, err = query.ParseSort("name; drop table products", columns)
	assert.Error(t, err)
}

func TestParse_DateRange(t *testing.T) {
	params, errs := query.Parse(query.Raw{From: "2024-01-01", To: "2024-01-31"}, columns)
	require.Nil(t, errs)
	require.NotNil(t, params.From)
	require.NotNil(t, params.To)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *params.From)
	assert.Equal(t, 31, params.To.Day())
	assert.Equal(t, 23, params.To.Hour())

	_, errs = query.Parse(query.Raw{From: "2024-02-01", To: "2024-01-01"}, columns)
	assert.Equal(t, "Date to cannot be before date from", errs["to"])

	_, errs = query.Parse(query.Raw{From: "yesterday", Limit: "x"}, columns)
	assert.Equal(t, "Date from must be a valid date", errs["from"])
	assert.Contains(t, errs, "limit")
}

func TestParse_DateRangeWithOffsets(t *testing.T) {
	params, errs := query.Parse(query.Raw{From: "2024-01-01T03:00:00+03:00", To: "2024-01-01T10:00:00-05:00"}, columns)
	require.Nil(t, errs)
	require.NotNil(t, params.From)
	require.NotNil(t, params.To)
	assert.Equal(t, time.UTC, params.From.Location())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *params.From)
	assert.Equal(t, time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC), *params.To)
}
