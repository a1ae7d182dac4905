package crawler

import (
	"net/url"
	"strconv"
)

// Params holds the listing query parameters. Page is the only field
// mutated across iterations.
type Params struct {
	FromMonth int
	FromDay   int
	FromYear  int
	ToMonth   int
	ToDay     int
	ToYear    int
	Category  string
	Category1 string
	Page      int
}

// DefaultParams covers the full calendar years from fromYear through
// toYear with both category filters open.
func DefaultParams(fromYear, toYear int) Params {
	return Params{
		FromMonth: 1,
		FromDay:   1,
		FromYear:  fromYear,
		ToMonth:   12,
		ToDay:     31,
		ToYear:    toYear,
		Category:  "All",
		Category1: "All",
	}
}

// Encode renders the parameters as a URL query string using the listing's
// Drupal date-filter parameter names.
func (p Params) Encode() string {
	v := url.Values{}
	v.Set("date_filter[value][month]", strconv.Itoa(p.FromMonth))
	v.Set("date_filter[value][day]", strconv.Itoa(p.FromDay))
	v.Set("date_filter[value][year]", strconv.Itoa(p.FromYear))
	v.Set("date_filter_1[value][month]", strconv.Itoa(p.ToMonth))
	v.Set("date_filter_1[value][day]", strconv.Itoa(p.ToDay))
	v.Set("date_filter_1[value][year]", strconv.Itoa(p.ToYear))
	v.Set("field_microsite_tid", p.Category)
	v.Set("field_microsite_tid_1", p.Category1)
	v.Set("page", strconv.Itoa(p.Page))
	return v.Encode()
}
