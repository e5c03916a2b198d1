package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goddivor/room-reservation-sub001/internal/domain/table"
)

type record struct {
	Name  string
	Rate  float64
	Rank  int
	Tag   string
	Index int
}

func testColumns() []table.Column[record] {
	return []table.Column[record]{
		{Key: "name", Sortable: true, Value: func(r record) any { return r.Name }},
		{Key: "rate", Sortable: true, Value: func(r record) any { return r.Rate }},
		{Key: "rank", Sortable: true, Value: func(r record) any { return r.Rank }},
		{Key: "tag", Sortable: false, Value: func(r record) any { return r.Tag }},
	}
}

func testRecords() []record {
	return []record{
		{Name: "delta", Rate: 150, Rank: 2, Tag: "x", Index: 0},
		{Name: "alpha", Rate: 100, Rank: 1, Tag: "y", Index: 1},
		{Name: "charlie", Rate: 150, Rank: 3, Tag: "x", Index: 2},
		{Name: "bravo", Rate: 50, Rank: 2, Tag: "y", Index: 3},
	}
}

func TestSortState_ToggleCyclesOnSameColumn(t *testing.T) {
	state := table.SortState{}

	state = state.Toggle("rate")
	assert.Equal(t, table.SortState{Column: "rate", Direction: table.Ascending}, state)

	state = state.Toggle("rate")
	assert.Equal(t, table.SortState{Column: "rate", Direction: table.Descending}, state)

	state = state.Toggle("rate")
	assert.Equal(t, table.SortState{}, state)
}

func TestSortState_ToggleNewColumnResetsToAscending(t *testing.T) {
	state := table.SortState{Column: "rate", Direction: table.Descending}

	state = state.Toggle("name")

	assert.Equal(t, table.SortState{Column: "name", Direction: table.Ascending}, state)
}

func TestSort_NumericAscendingAndDescending(t *testing.T) {
	records := testRecords()

	ascending := table.Sort(records, testColumns(), table.SortState{Column: "rate", Direction: table.Ascending})
	rates := make([]float64, len(ascending))
	for i, r := range ascending {
		rates[i] = r.Rate
	}
	assert.Equal(t, []float64{50, 100, 150, 150}, rates)

	descending := table.Sort(records, testColumns(), table.SortState{Column: "rate", Direction: table.Descending})
	assert.Equal(t, 150.0, descending[0].Rate)
	assert.Equal(t, 50.0, descending[len(descending)-1].Rate)
}

func TestSort_StringLexicographic(t *testing.T) {
	sorted := table.Sort(testRecords(), testColumns(), table.SortState{Column: "name", Direction: table.Ascending})

	names := make([]string, len(sorted))
	for i, r := range sorted {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, names)
}

func TestSort_IsStable(t *testing.T) {
	records := testRecords()
	state := table.SortState{Column: "rate", Direction: table.Ascending}

	once := table.Sort(records, testColumns(), state)
	twice := table.Sort(once, testColumns(), state)

	require.Equal(t, once, twice)

	// Equal rates keep their original relative order.
	assert.Equal(t, 0, once[2].Index)
	assert.Equal(t, 2, once[3].Index)
}

func TestSort_UnsortedAndUnknownColumnsKeepOriginalOrder(t *testing.T) {
	records := testRecords()

	for _, state := range []table.SortState{
		{},
		{Column: "missing", Direction: table.Ascending},
		{Column: "tag", Direction: table.Ascending}, // not sortable
	} {
		got := table.Sort(records, testColumns(), state)
		require.Equal(t, records, got)
	}
}

func TestSort_CustomComparatorWins(t *testing.T) {
	columns := testColumns()
	columns = append(columns, table.Column[record]{
		Key:      "reverseName",
		Sortable: true,
		Value:    func(r record) any { return r.Name },
		Compare: func(a, b record) int {
			switch {
			case a.Name > b.Name:
				return -1
			case a.Name < b.Name:
				return 1
			default:
				return 0
			}
		},
	})

	sorted := table.Sort(testRecords(), columns, table.SortState{Column: "reverseName", Direction: table.Ascending})
	assert.Equal(t, "delta", sorted[0].Name)
	assert.Equal(t, "alpha", sorted[len(sorted)-1].Name)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := testRecords()
	original := testRecords()

	_ = table.Sort(records, testColumns(), table.SortState{Column: "name", Direction: table.Ascending})

	assert.Equal(t, original, records)
}

func TestPage_WindowsAreOneIndexed(t *testing.T) {
	records := testRecords()

	page := table.Page(records, 2, 1)
	require.Len(t, page, 2)
	assert.Equal(t, "delta", page[0].Name)

	page = table.Page(records, 2, 2)
	require.Len(t, page, 2)
	assert.Equal(t, "charlie", page[0].Name)

	page = table.Page(records, 3, 2)
	require.Len(t, page, 1)
	assert.Equal(t, "bravo", page[0].Name)
}

func TestPage_OutOfRangeIsEmptyNotClamped(t *testing.T) {
	records := testRecords()

	assert.Empty(t, table.Page(records, 2, 3))
	assert.Empty(t, table.Page(records, 10, 2))
	assert.Empty(t, table.Page(records, 2, 0))
	assert.Empty(t, table.Page(records, 0, 1))
	assert.Empty(t, table.Page([]record{}, 2, 1))
}

func TestPage_RoundTripReconstructsSortedSet(t *testing.T) {
	sorted := table.Sort(testRecords(), testColumns(), table.SortState{Column: "rate", Direction: table.Ascending})

	for pageSize := 1; pageSize <= len(sorted)+1; pageSize++ {
		var rebuilt []record
		for page := 1; page <= table.TotalPages(len(sorted), pageSize); page++ {
			rebuilt = append(rebuilt, table.Page(sorted, pageSize, page)...)
		}
		require.Equal(t, sorted, rebuilt, "pageSize=%d", pageSize)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, table.TotalPages(0, 10))
	assert.Equal(t, 1, table.TotalPages(10, 10))
	assert.Equal(t, 2, table.TotalPages(11, 10))
	assert.Equal(t, 0, table.TotalPages(5, 0))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, table.ClampPage(0, 10, 25))
	assert.Equal(t, 2, table.ClampPage(2, 10, 25))
	assert.Equal(t, 3, table.ClampPage(9, 10, 25))
	assert.Equal(t, 1, table.ClampPage(4, 10, 0))
}
