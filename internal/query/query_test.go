package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Name   string
	Status string
	Notes  string
}

func recordField(r record, field string) (string, bool) {
	switch field {
	case "name":
		return r.Name, true
	case "status":
		return r.Status, true
	case "notes":
		if r.Notes == "" {
			return "", false
		}
		return r.Notes, true
	default:
		return "", false
	}
}

func makeRecords(n int) []record {
	out := make([]record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, record{Name: fmt.Sprintf("rec-%02d", i), Status: "active"})
	}
	return out
}

func TestFilterRecords_SubstringIsCaseInsensitive(t *testing.T) {
	records := []record{
		{Name: "Yorkdale Shopping Centre", Status: "active"},
		{Name: "Scarborough Town Centre", Status: "active"},
		{Name: "High Park", Status: "inactive"},
	}

	out := FilterRecords(records, []Filter{{Field: "name", Value: "CENTRE"}}, recordField)

	assert.Len(t, out, 2)
}

func TestFilterRecords_ExactRequiresEquality(t *testing.T) {
	records := []record{
		{Name: "a", Status: "active"},
		{Name: "b", Status: "inactive"},
	}

	out := FilterRecords(records, []Filter{{Field: "status", Value: "active", Exact: true}}, recordField)

	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Name)
}

func TestFilterRecords_MultipleFiltersAreConjunctive(t *testing.T) {
	records := []record{
		{Name: "Yorkdale", Status: "active"},
		{Name: "Yorkville", Status: "inactive"},
		{Name: "Riverdale", Status: "active"},
	}

	out := FilterRecords(records, []Filter{
		{Field: "name", Value: "york"},
		{Field: "status", Value: "active", Exact: true},
	}, recordField)

	assert.Len(t, out, 1)
	assert.Equal(t, "Yorkdale", out[0].Name)
}

func TestFilterRecords_EmptyValueIsSkipped(t *testing.T) {
	records := makeRecords(5)

	out := FilterRecords(records, []Filter{{Field: "name", Value: ""}}, recordField)

	assert.Len(t, out, 5)
}

func TestFilterRecords_AbsentFieldMatchesAsEmpty(t *testing.T) {
	records := []record{
		{Name: "a", Notes: "monitored"},
		{Name: "b"},
	}

	out := FilterRecords(records, []Filter{{Field: "notes", Value: "monitored"}}, recordField)

	assert.Len(t, out, 1)
	assert.Equal(t, "a", out[0].Name)
}

func TestSortRecords_DescendingAndCaseInsensitive(t *testing.T) {
	records := []record{
		{Name: "banana"},
		{Name: "Apple"},
		{Name: "cherry"},
	}

	SortRecords(records, &Sort{Field: "name", Direction: Desc}, recordField)

	assert.Equal(t, "cherry", records[0].Name)
	assert.Equal(t, "banana", records[1].Name)
	assert.Equal(t, "Apple", records[2].Name)
}

func TestSortRecords_AbsentValuesSortAsEmpty(t *testing.T) {
	records := []record{
		{Name: "a", Notes: "zebra"},
		{Name: "b"},
		{Name: "c", Notes: "alpha"},
	}

	SortRecords(records, &Sort{Field: "notes", Direction: Asc}, recordField)

	assert.Equal(t, "b", records[0].Name)
	assert.Equal(t, "c", records[1].Name)
	assert.Equal(t, "a", records[2].Name)
}

func TestSortRecords_NilSortLeavesOrder(t *testing.T) {
	records := []record{{Name: "z"}, {Name: "a"}}

	SortRecords(records, nil, recordField)

	assert.Equal(t, "z", records[0].Name)
}

func TestSortToggle(t *testing.T) {
	s := Sort{Field: "name", Direction: Asc}

	flipped := s.Toggle("name")
	assert.Equal(t, Desc, flipped.Direction)

	reset := flipped.Toggle("status")
	assert.Equal(t, "status", reset.Field)
	assert.Equal(t, Asc, reset.Direction)
}

func TestPaginate_PagesOf23Records(t *testing.T) {
	records := makeRecords(23)

	first := Paginate(records, 1, 10)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, 23, first.TotalCount)
	assert.Equal(t, "rec-00", first.Items[0].Name)

	last := Paginate(records, 3, 10)
	assert.Len(t, last.Items, 3)
	assert.Equal(t, "rec-22", last.Items[2].Name)

	past := Paginate(records, 4, 10)
	assert.Empty(t, past.Items)
	assert.Equal(t, 23, past.TotalCount)
}

func TestPaginate_NonPositivePageSizeDisablesPagination(t *testing.T) {
	records := makeRecords(23)

	all := Paginate(records, 1, 0)
	assert.Len(t, all.Items, 23)
}

func TestPaginate_PageBelowOneClampsToFirst(t *testing.T) {
	records := makeRecords(5)

	out := Paginate(records, 0, 2)
	assert.Equal(t, "rec-00", out.Items[0].Name)
}

func TestApply_FullPipeline(t *testing.T) {
	records := []record{
		{Name: "delta", Status: "active"},
		{Name: "alpha", Status: "active"},
		{Name: "charlie", Status: "inactive"},
		{Name: "bravo", Status: "active"},
	}

	result := Apply(records, Options{
		Filters:  []Filter{{Field: "status", Value: "active", Exact: true}},
		Sort:     &Sort{Field: "name", Direction: Asc},
		Page:     1,
		PageSize: 2,
	}, recordField)

	assert.Equal(t, 3, result.TotalCount)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "alpha", result.Items[0].Name)
	assert.Equal(t, "bravo", result.Items[1].Name)
}
