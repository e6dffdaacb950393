// Package listing filters and pages lists that were fetched from the backend
// in full.
package listing

import "strings"

func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Matches reports whether query occurs in any of fields, ignoring case.
// An empty query matches everything.
func Matches(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Equal is an optional equality filter: an empty want matches everything.
func Equal(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

type Meta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// Paginate slices items for a 1-based page. A non-positive page size returns
// everything.
func Paginate[T any](items []T, page, pageSize int) ([]T, Meta) {
	meta := Meta{Page: page, PageSize: pageSize, Total: len(items)}
	if pageSize <= 0 {
		meta.Page = 1
		meta.PageSize = len(items)
		return items, meta
	}
	if page < 1 {
		page = 1
		meta.Page = 1
	}
	if page-1 > len(items)/pageSize {
		return []T{}, meta
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}
