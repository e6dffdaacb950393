package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"hotelops-dashboard/internal/models"
)

// Violations maps a form field to the rule it failed.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) add(field, code string) {
	if _, seen := v[field]; !seen {
		v[field] = code
	}
}

const (
	CodeRequired      = "required"
	CodePositive      = "must_be_positive"
	CodeNonNegative   = "must_not_be_negative"
	CodeOutOfRange    = "out_of_range"
	CodeInvalidChoice = "invalid_choice"
	CodeInvalidPhone  = "invalid_phone"
	CodeInvalidDate   = "invalid_date"
	CodeMustBeAfter   = "must_be_after"
	CodeUnknownItem   = "unknown_item"
	CodeNotCheckedIn  = "not_checked_in"
)

// Single builds a violation set for one field, for rules checked outside
// the form validators.
func Single(field, code string) Violations {
	return Violations{field: code}
}

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.add(field, CodeRequired)
	}
}

func PositiveDecimal(field string, val decimal.Decimal, v Violations) {
	if !val.IsPositive() {
		v.add(field, CodePositive)
	}
}

func NonNegativeDecimal(field string, val decimal.Decimal, v Violations) {
	if val.IsNegative() {
		v.add(field, CodeNonNegative)
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v.add(field, CodePositive)
	}
}

func RangeDecimal(field string, val, minVal, maxVal decimal.Decimal, v Violations) {
	if val.LessThan(minVal) || val.GreaterThan(maxVal) {
		v.add(field, CodeOutOfRange)
	}
}

// OneOf checks membership; an empty value is left to Required.
func OneOf(field, value string, allowed func(string) bool, v Violations) {
	if value != "" && !allowed(value) {
		v.add(field, CodeInvalidChoice)
	}
}

var validate = validator.New()

// Phone accepts international numbers with optional spaces, dashes and
// parentheses. The leading + may be omitted.
func Phone(field, value string, v Violations) {
	if value == "" {
		return
	}
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(value)
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	if err := validate.Var(cleaned, "e164"); err != nil {
		v.add(field, CodeInvalidPhone)
	}
}

func Date(field, value string, v Violations) {
	if value == "" {
		return
	}
	if _, err := models.ParseDate(value); err != nil {
		v.add(field, CodeInvalidDate)
	}
}

// DateAfter requires end to be strictly later than start. Unparseable
// dates are reported by Date instead.
func DateAfter(field, start, end string, v Violations) {
	s, err := models.ParseDate(start)
	if err != nil {
		return
	}
	e, err := models.ParseDate(end)
	if err != nil {
		return
	}
	if !e.After(s) {
		v.add(field, CodeMustBeAfter)
	}
}
