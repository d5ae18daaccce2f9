// Package query implements the shared filter -> sort -> paginate
// pipeline used by every list operation. It replaces the per-screen
// list shaping the dashboard used to repeat for each entity.
package query

import (
	"sort"
	"strings"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the single active sort of a list view.
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Toggle returns the sort resulting from selecting field while s is
// active: re-selecting the same field flips the direction, selecting a
// new field resets to ascending.
func (s Sort) Toggle(field string) Sort {
	if s.Field == field {
		if s.Direction == Asc {
			return Sort{Field: field, Direction: Desc}
		}
		return Sort{Field: field, Direction: Asc}
	}
	return Sort{Field: field, Direction: Asc}
}

// Filter is one field predicate. Exact filters compare equal (enum,
// status and id fields); others match case-insensitive substrings.
// Filters with an empty value are skipped.
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Exact bool   `json:"exact"`
}

// Options parameterizes one list call.
type Options struct {
	Filters  []Filter `json:"filters,omitempty"`
	Sort     *Sort    `json:"sort,omitempty"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

// Result is a page of records plus the filtered set size.
type Result[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
}

// FieldFunc resolves a named field of a record to its string form.
// The second return reports whether the field is present; absent
// values compare as empty strings.
type FieldFunc[T any] func(rec T, field string) (string, bool)

// FilterRecords keeps the records matching every supplied predicate.
func FilterRecords[T any](records []T, filters []Filter, value FieldFunc[T]) []T {
	active := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if f.Value != "" {
			active = append(active, f)
		}
	}
	if len(active) == 0 {
		return records
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matches(rec, active, value) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](rec T, filters []Filter, value FieldFunc[T]) bool {
	for _, f := range filters {
		v, ok := value(rec, f.Field)
		if !ok {
			v = ""
		}
		if f.Exact {
			if v != f.Value {
				return false
			}
			continue
		}
		if !strings.Contains(strings.ToLower(v), strings.ToLower(f.Value)) {
			return false
		}
	}
	return true
}

// SortRecords orders records by the active sort, in place. Comparisons
// are case-insensitive and stable; absent values sort as empty
// strings.
func SortRecords[T any](records []T, s *Sort, value FieldFunc[T]) {
	if s == nil || s.Field == "" {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		vi, ok := value(records[i], s.Field)
		if !ok {
			vi = ""
		}
		vj, ok := value(records[j], s.Field)
		if !ok {
			vj = ""
		}
		cmp := strings.Compare(strings.ToLower(vi), strings.ToLower(vj))
		if s.Direction == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// Paginate slices out the 1-indexed page. A page past the end yields
// an empty page; TotalCount always reflects the full input size. A
// non-positive page size disables pagination.
func Paginate[T any](records []T, page, pageSize int) Result[T] {
	total := len(records)
	if pageSize <= 0 {
		return Result[T]{Items: records, TotalCount: total}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= total {
		return Result[T]{Items: []T{}, TotalCount: total}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Result[T]{Items: records[start:end], TotalCount: total}
}

// Apply runs the full filter -> sort -> paginate pipeline.
func Apply[T any](records []T, opts Options, value FieldFunc[T]) Result[T] {
	filtered := FilterRecords(records, opts.Filters, value)
	SortRecords(filtered, opts.Sort, value)
	return Paginate(filtered, opts.Page, opts.PageSize)
}
