package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)

var CategoryStatuses = []string{CategoryActive, CategoryInactive}

func IsCategoryStatus(s string) bool { return contains(CategoryStatuses, s) }

type Category struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// CategoryRef is the category of a menu item. The backend sends it either as
// a bare id or as an embedded category object.
type CategoryRef struct {
	ID   string
	Name string
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = CategoryRef{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = CategoryRef{ID: id}
		return nil
	case len(data) > 0 && data[0] == '{':
		var embedded struct {
			ID    string `json:"_id"`
			AltID string `json:"id"`
			Name  string `json:"name"`
		}
		if err := json.Unmarshal(data, &embedded); err != nil {
			return err
		}
		r.ID = embedded.ID
		if r.ID == "" {
			r.ID = embedded.AltID
		}
		r.Name = embedded.Name
		return nil
	}
	return fmt.Errorf("category: unsupported value %s", data)
}

// MarshalJSON always writes the id form, which is what the backend accepts on writes.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

type MenuItem struct {
	ID          string          `json:"_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    CategoryRef     `json:"category"`
	Discount    decimal.Decimal `json:"discount"`
	Status      string          `json:"status,omitempty"`
	InStock     bool            `json:"inStock"`
}

// CategoryName is the embedded category name when the backend populated it.
func (m MenuItem) CategoryName() string { return m.Category.Name }
