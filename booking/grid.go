package booking

import (
	"fmt"
	"math/rand/v2"

	"cinemax-cli/model"
)

const (
	RowLabels        = "ABCDEFGH"
	RowCount         = len(RowLabels)
	SeatsPerRow      = 12
	Capacity         = RowCount * SeatsPerRow
	DefaultOccupancy = 0.3
)

// Source yields values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// SeededSource returns a deterministic source for reproducible occupancy.
func SeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator builds seat grids, pre-booking each seat independently with the
// configured probability.
type Generator struct {
	src       Source
	occupancy float64
}

// NewGenerator returns a generator. A nil source uses the process-wide random
// source; occupancy is clamped to [0, 1].
func NewGenerator(src Source, occupancy float64) *Generator {
	if src == nil {
		src = globalSource{}
	}
	occupancy = max(0, min(1, occupancy))
	return &Generator{src: src, occupancy: occupancy}
}

func (g *Generator) Occupancy() float64 {
	return g.occupancy
}

// Generate returns a fresh grid in row-major order, nothing selected.
func (g *Generator) Generate() *Grid {
	grid := &Grid{
		seats: make([]model.Seat, 0, Capacity),
		index: make(map[string]int, Capacity),
	}
	for r := 0; r < RowCount; r++ {
		row := RowLabels[r : r+1]
		for number := 1; number <= SeatsPerRow; number++ {
			id := SeatID(row, number)
			grid.index[id] = len(grid.seats)
			grid.seats = append(grid.seats, model.Seat{
				Id:       id,
				Row:      row,
				Number:   number,
				IsBooked: g.src.Float64() < g.occupancy,
			})
		}
	}
	return grid
}

func SeatID(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}

// Grid owns the seat flags together with the ordered selection, so a seat's
// IsSelected flag and its membership in Selected always agree.
type Grid struct {
	seats    []model.Seat
	index    map[string]int
	selected []string
}

type Counts struct {
	Available int
	Selected  int
	Booked    int
	Total     int
}

func (g *Grid) Seats() []model.Seat {
	return append([]model.Seat(nil), g.seats...)
}

func (g *Grid) Seat(id string) (model.Seat, bool) {
	idx, ok := g.index[id]
	if !ok {
		return model.Seat{}, false
	}
	return g.seats[idx], true
}

// At returns the seat at a zero-based row and column.
func (g *Grid) At(row, col int) (model.Seat, bool) {
	if row < 0 || row >= RowCount || col < 0 || col >= SeatsPerRow {
		return model.Seat{}, false
	}
	idx := row*SeatsPerRow + col
	if idx >= len(g.seats) {
		return model.Seat{}, false
	}
	return g.seats[idx], true
}

// Toggle flips the selection of an unbooked seat. Unknown and booked seats are
// left untouched and report false.
func (g *Grid) Toggle(id string) bool {
	idx, ok := g.index[id]
	if !ok {
		return false
	}
	seat := &g.seats[idx]
	if seat.IsBooked {
		return false
	}
	if seat.IsSelected {
		seat.IsSelected = false
		g.selected = removeID(g.selected, id)
	} else {
		seat.IsSelected = true
		g.selected = append(g.selected, id)
	}
	return true
}

// Selected returns the selected seat ids in the order they were picked.
func (g *Grid) Selected() []string {
	return append([]string(nil), g.selected...)
}

// BookSelected books every selected seat, empties the selection and returns
// the ids it booked.
func (g *Grid) BookSelected() []string {
	booked := g.selected
	for _, id := range booked {
		seat := &g.seats[g.index[id]]
		seat.IsBooked = true
		seat.IsSelected = false
	}
	g.selected = nil
	return booked
}

// ClearSelection deselects everything without booking.
func (g *Grid) ClearSelection() {
	for _, id := range g.selected {
		g.seats[g.index[id]].IsSelected = false
	}
	g.selected = nil
}

func (g *Grid) Counts() Counts {
	var c Counts
	for _, seat := range g.seats {
		c.Total++
		switch {
		case seat.IsBooked:
			c.Booked++
		case seat.Available():
			c.Available++
		default:
			c.Selected++
		}
	}
	return c
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
