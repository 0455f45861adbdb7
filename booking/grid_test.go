package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct {
	values []float64
	next   int
}

func (f *fixedSource) Float64() float64 {
	if len(f.values) == 0 {
		return 0.99
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// bookedAt returns a source that pre-books exactly the seats at the given
// row-major indexes when used with DefaultOccupancy.
func bookedAt(indexes ...int) *fixedSource {
	values := make([]float64, Capacity)
	for i := range values {
		values[i] = 0.9
	}
	for _, i := range indexes {
		values[i] = 0.1
	}
	return &fixedSource{values: values}
}

func TestGenerate_Shape(t *testing.T) {
	grid := NewGenerator(nil, DefaultOccupancy).Generate()

	seats := grid.Seats()
	require.Len(t, seats, 96)

	seen := map[string]bool{}
	for i, seat := range seats {
		wantRow := string(RowLabels[i/SeatsPerRow])
		wantNumber := i%SeatsPerRow + 1
		assert.Equal(t, wantRow, seat.Row)
		assert.Equal(t, wantNumber, seat.Number)
		assert.Equal(t, SeatID(wantRow, wantNumber), seat.Id)
		assert.False(t, seat.IsSelected)
		assert.False(t, seen[seat.Id], "duplicate seat id %s", seat.Id)
		seen[seat.Id] = true
	}
	assert.Equal(t, "A1", seats[0].Id)
	assert.Equal(t, "H12", seats[95].Id)
	assert.Empty(t, grid.Selected())
}

func TestGenerate_OccupancyFromSource(t *testing.T) {
	grid := NewGenerator(bookedAt(0, 13, 95), DefaultOccupancy).Generate()

	for _, seat := range grid.Seats() {
		want := seat.Id == "A1" || seat.Id == "B2" || seat.Id == "H12"
		assert.Equal(t, want, seat.IsBooked, "seat %s", seat.Id)
	}
	assert.Equal(t, Counts{Available: 93, Booked: 3, Total: 96}, grid.Counts())
}

func TestGenerate_OccupancyBounds(t *testing.T) {
	none := NewGenerator(SeededSource(1), 0).Generate()
	assert.Equal(t, 0, none.Counts().Booked)

	all := NewGenerator(SeededSource(1), 1).Generate()
	assert.Equal(t, 96, all.Counts().Booked)

	clamped := NewGenerator(nil, 4)
	assert.Equal(t, 1.0, clamped.Occupancy())
	assert.Equal(t, 0.0, NewGenerator(nil, -1).Occupancy())
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := NewGenerator(SeededSource(42), DefaultOccupancy).Generate()
	b := NewGenerator(SeededSource(42), DefaultOccupancy).Generate()
	assert.Equal(t, a.Seats(), b.Seats())
}

func TestGrid_ToggleKeepsFlagAndSelectionInSync(t *testing.T) {
	grid := NewGenerator(bookedAt(), DefaultOccupancy).Generate()

	require.True(t, grid.Toggle("C7"))
	require.True(t, grid.Toggle("A1"))
	assert.Equal(t, []string{"C7", "A1"}, grid.Selected())

	for _, seat := range grid.Seats() {
		inSet := seat.Id == "C7" || seat.Id == "A1"
		assert.Equal(t, inSet, seat.IsSelected, "seat %s", seat.Id)
	}

	assert.Equal(t, Counts{Available: 94, Selected: 2, Total: 96}, grid.Counts())

	require.True(t, grid.Toggle("C7"))
	assert.Equal(t, []string{"A1"}, grid.Selected())
	seat, ok := grid.Seat("C7")
	require.True(t, ok)
	assert.False(t, seat.IsSelected)
	assert.True(t, seat.Available())
}

func TestGrid_ToggleBookedOrUnknownIsNoop(t *testing.T) {
	grid := NewGenerator(bookedAt(0), DefaultOccupancy).Generate()
	before := grid.Seats()

	assert.False(t, grid.Toggle("A1"))
	assert.False(t, grid.Toggle("Z99"))
	assert.Equal(t, before, grid.Seats())
	assert.Empty(t, grid.Selected())
}

func TestGrid_BookSelected(t *testing.T) {
	grid := NewGenerator(bookedAt(), DefaultOccupancy).Generate()
	grid.Toggle("A1")
	grid.Toggle("A2")

	booked := grid.BookSelected()

	assert.Equal(t, []string{"A1", "A2"}, booked)
	assert.Empty(t, grid.Selected())
	for _, id := range booked {
		seat, _ := grid.Seat(id)
		assert.True(t, seat.IsBooked)
		assert.False(t, seat.IsSelected)
	}
	assert.False(t, grid.Toggle("A1"))
}

func TestGrid_At(t *testing.T) {
	grid := NewGenerator(bookedAt(), DefaultOccupancy).Generate()

	seat, ok := grid.At(2, 6)
	require.True(t, ok)
	assert.Equal(t, "C7", seat.Id)

	_, ok = grid.At(8, 0)
	assert.False(t, ok)
	_, ok = grid.At(0, 12)
	assert.False(t, ok)
}
