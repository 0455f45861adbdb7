package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinemax-cli/booking"
	"cinemax-cli/model"
)

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	seatStyleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	seatStyleBooked    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleCursor    = lipgloss.NewStyle().Reverse(true)

	screenStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("213"))
	screenBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const screenLabel = "SCREEN"

func (m appModel) renderSeatMap() string {
	seats := m.session.Seats()
	if len(seats) == 0 {
		return "No seat map data."
	}

	cellWidth := 2
	if m.showSeatNumbers {
		for _, seat := range seats {
			cellWidth = max(cellWidth, len(seat.Id))
		}
	}
	rowWidth := 1
	gridWidth := booking.SeatsPerRow*(cellWidth+1) - 1

	var b strings.Builder
	b.WriteString(screenBar(rowWidth+1, gridWidth))
	b.WriteString("\n\n")

	cursorActive := m.focus == focusSeats
	for r := 0; r < booking.RowCount; r++ {
		label := booking.RowLabels[r : r+1]
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < booking.SeatsPerRow; c++ {
			seat, ok := m.session.SeatAt(r, c)
			if !ok {
				b.WriteString(strings.Repeat(" ", cellWidth))
			} else {
				text := seatToken(seat)
				if m.showSeatNumbers {
					text = seat.Id
				}
				rendered := seatStyle(seat).Render(padCell(text, cellWidth))
				if cursorActive && r == m.seatRow && c == m.seatCol {
					rendered = seatStyleCursor.Render(padCell(text, cellWidth))
				}
				b.WriteString(rendered)
			}
			if c < booking.SeatsPerRow-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	counts := m.session.Counts()
	legend := "Legend: [] available • <> selected • XX booked"
	if m.showSeatNumbers {
		legend = "Legend: grey available • purple selected • red booked"
	}
	percent := float64(counts.Available) / float64(max(1, counts.Total)) * 100
	summary := fmt.Sprintf("Available: %d • Selected: %d • Booked: %d • Total: %d • %.0f%% available", counts.Available, counts.Selected, counts.Booked, counts.Total, percent)
	b.WriteString("\n")
	return b.String() + hint(legend) + "\n" + hint(summary)
}

func seatToken(seat model.Seat) string {
	switch {
	case seat.Available():
		return "[]"
	case seat.IsBooked:
		return "XX"
	default:
		return "<>"
	}
}

func seatStyle(seat model.Seat) lipgloss.Style {
	switch {
	case seat.IsBooked:
		return seatStyleBooked
	case seat.IsSelected:
		return seatStyleSelected
	default:
		return seatStyleAvailable
	}
}

// padCell centres text in a cell of width columns, cutting it from the right
// when it does not fit.
func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width]
	}
	gap := width - len(runes)
	return strings.Repeat(" ", gap/2) + string(runes) + strings.Repeat(" ", gap-gap/2)
}

// screenBar draws the boxed SCREEN banner above the seat grid.
func screenBar(indent, width int) string {
	label := " " + screenLabel + " "
	width = max(width, len(label)+2)
	inner := width - 2
	left := (inner - len(label)) / 2
	edge := strings.Repeat("─", inner)
	pad := strings.Repeat(" ", indent)

	return strings.Join([]string{
		pad + screenBorderStyle.Render("╭"+edge+"╮"),
		pad + screenStyle.Render("│"+strings.Repeat(" ", left)+label+strings.Repeat(" ", inner-len(label)-left)+"│"),
		pad + screenBorderStyle.Render("╰"+edge+"╯"),
	}, "\n")
}
