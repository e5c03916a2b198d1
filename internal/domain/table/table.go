// Package table is a column-driven sort and pagination engine reused by the
// room browser, the admin tables and the user filter panel. It works over any
// homogeneous record slice; callers describe their columns once and feed the
// full filtered set through Sort before slicing pages.
package table

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Direction string

const (
	Unsorted   Direction = ""
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Column describes one sortable axis of a record type. Value extracts the
// cell used by the default comparator; Compare, when set, overrides it.
type Column[T any] struct {
	Key      string
	Sortable bool
	Value    func(record T) any
	Compare  func(a, b T) int
}

// SortState is the single (column, direction) pair a table carries.
type SortState struct {
	Column    string
	Direction Direction
}

// Toggle advances the sort state for a column click. Repeated clicks on the
// same column cycle unsorted -> ascending -> descending -> unsorted; a click
// on a different column starts ascending on that column.
func (s SortState) Toggle(columnKey string) SortState {
	if s.Column != columnKey {
		return SortState{Column: columnKey, Direction: Ascending}
	}
	switch s.Direction {
	case Unsorted:
		return SortState{Column: columnKey, Direction: Ascending}
	case Ascending:
		return SortState{Column: columnKey, Direction: Descending}
	default:
		return SortState{}
	}
}

// Sort returns a stably sorted copy of records according to the sort state.
// An unsorted state, an unknown column or a non-sortable column all return
// the records in their original order. The input slice is never mutated.
func Sort[T any](records []T, columns []Column[T], state SortState) []T {
	out := make([]T, len(records))
	copy(out, records)

	if state.Direction == Unsorted || state.Column == "" {
		return out
	}

	var column *Column[T]
	for i := range columns {
		if columns[i].Key == state.Column {
			column = &columns[i]
			break
		}
	}
	if column == nil || !column.Sortable {
		return out
	}

	compare := column.Compare
	if compare == nil {
		value := column.Value
		compare = func(a, b T) int {
			return compareValues(value(a), value(b))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if state.Direction == Descending {
			return compare(out[j], out[i]) < 0
		}
		return compare(out[i], out[j]) < 0
	})

	return out
}

// Page slices the 1-indexed page window out of records. A page beyond the
// end of the set yields an empty slice; the engine does not clamp, callers
// that keep a current page across shrinking result sets should run it
// through ClampPage first.
func Page[T any](records []T, pageSize, currentPage int) []T {
	if pageSize < 1 || currentPage < 1 {
		return []T{}
	}
	start := (currentPage - 1) * pageSize
	if start >= len(records) {
		return []T{}
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	out := make([]T, end-start)
	copy(out, records[start:end])
	return out
}

func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPage pulls an out-of-range current page back to the last valid page
// (or page 1 when the set is empty).
func ClampPage(currentPage, pageSize, total int) int {
	if currentPage < 1 {
		return 1
	}
	last := TotalPages(total, pageSize)
	if last < 1 {
		return 1
	}
	if currentPage > last {
		return last
	}
	return currentPage
}

func compareValues(a, b any) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
