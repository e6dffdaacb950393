package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend expects JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// Date formats accepted from the backend for calendar fields.
const (
	DateLayout = "2006-01-02"
)

// ParseDate accepts either a plain calendar date or a full RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
