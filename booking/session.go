// Package booking holds the single-user booking session: the seat grid, the
// selection, the view state and the derived price.
//
// All transitions are synchronous and run to completion; the session is owned
// by one caller and is not safe for concurrent use.
package booking

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cinemax-cli/model"
)

type View int

const (
	ViewMovies View = iota
	ViewBooking
)

func (v View) String() string {
	switch v {
	case ViewBooking:
		return "booking"
	default:
		return "movies"
	}
}

// Confirmation is the display-only result of a confirmed booking. No receipt
// or identifier is produced.
type Confirmation struct {
	Count      int
	MovieTitle string
	Showtime   string
	Seats      []string
	Total      int
}

type Option func(*Session)

func WithGenerator(gen *Generator) Option {
	return func(s *Session) {
		if gen != nil {
			s.gen = gen
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type Session struct {
	id       string
	identity *model.Identity
	view     View
	movie    *model.Movie
	showtime string
	grid     *Grid

	gen    *Generator
	logger *zap.Logger
}

// NewSession returns an idle session with no identity. Call Start once the
// identity gate has produced one.
func NewSession(opts ...Option) *Session {
	s := &Session{
		gen:    NewGenerator(nil, DefaultOccupancy),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a session for the identity with a freshly generated grid.
func (s *Session) Start(identity model.Identity) {
	s.id = uuid.NewString()
	s.identity = &identity
	s.view = ViewMovies
	s.movie = nil
	s.showtime = ""
	s.grid = s.gen.Generate()

	counts := s.grid.Counts()
	s.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.String("email", identity.Email),
		zap.Int("prebooked", counts.Booked),
	)
}

// Reset is the logout transition: identity, view, movie, showtime and
// selection are cleared and the grid is regenerated.
func (s *Session) Reset() {
	if s.id != "" {
		s.logger.Info("session reset", zap.String("session_id", s.id))
	}
	s.id = ""
	s.identity = nil
	s.view = ViewMovies
	s.movie = nil
	s.showtime = ""
	s.grid = s.gen.Generate()
}

func (s *Session) Logout() {
	s.Reset()
}

// Teardown drops all session state without regenerating anything.
func (s *Session) Teardown() {
	if s.id != "" {
		s.logger.Info("session closed", zap.String("session_id", s.id))
	}
	s.id = ""
	s.identity = nil
	s.view = ViewMovies
	s.movie = nil
	s.showtime = ""
	s.grid = nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Identity() (model.Identity, bool) {
	if s.identity == nil {
		return model.Identity{}, false
	}
	return *s.identity, true
}

func (s *Session) Active() bool {
	return s.identity != nil && !s.identity.IsZero()
}

func (s *Session) View() View {
	return s.view
}

func (s *Session) Movie() (model.Movie, bool) {
	if s.movie == nil {
		return model.Movie{}, false
	}
	return *s.movie, true
}

func (s *Session) Showtime() string {
	return s.showtime
}

func (s *Session) Seats() []model.Seat {
	if s.grid == nil {
		return nil
	}
	return s.grid.Seats()
}

func (s *Session) Seat(id string) (model.Seat, bool) {
	if s.grid == nil {
		return model.Seat{}, false
	}
	return s.grid.Seat(id)
}

func (s *Session) SeatAt(row, col int) (model.Seat, bool) {
	if s.grid == nil {
		return model.Seat{}, false
	}
	return s.grid.At(row, col)
}

func (s *Session) SelectedSeats() []string {
	if s.grid == nil {
		return nil
	}
	return s.grid.Selected()
}

func (s *Session) Counts() Counts {
	if s.grid == nil {
		return Counts{}
	}
	return s.grid.Counts()
}

// SelectMovie moves to the booking view. Picking a different movie clears the
// showtime and any unconfirmed selection; returning to the same movie keeps
// both.
func (s *Session) SelectMovie(movie model.Movie) {
	if s.grid == nil {
		s.grid = s.gen.Generate()
	}
	if s.movie == nil || s.movie.Id != movie.Id {
		s.showtime = ""
		s.grid.ClearSelection()
	}
	movie.Showtimes = append([]string(nil), movie.Showtimes...)
	s.movie = &movie
	s.view = ViewBooking

	s.logger.Debug("movie selected",
		zap.String("session_id", s.id),
		zap.Stringer("view", s.view),
		zap.Int("movie_id", movie.Id),
		zap.String("title", movie.Title),
	)
}

// SelectShowtime sets the showtime when it belongs to the selected movie.
func (s *Session) SelectShowtime(showtime string) bool {
	if s.movie == nil || !s.movie.HasShowtime(showtime) {
		return false
	}
	s.showtime = showtime
	return true
}

// Back returns to the movie list. Only the view changes.
func (s *Session) Back() {
	s.view = ViewMovies
	s.logger.Debug("back to movies", zap.String("session_id", s.id), zap.Stringer("view", s.view))
}

// ToggleSeat flips the selection of an unbooked seat. Booked and unknown
// seats are a no-op and report false.
func (s *Session) ToggleSeat(id string) bool {
	if s.grid == nil {
		return false
	}
	return s.grid.Toggle(id)
}

// TotalPrice is derived on every call: selected seats times the movie price.
func (s *Session) TotalPrice() int {
	if s.movie == nil || s.grid == nil {
		return 0
	}
	return len(s.grid.selected) * s.movie.Price
}

// ConfirmBooking books every selected seat and clears the selection. With
// nothing selected it changes nothing and reports false.
func (s *Session) ConfirmBooking() (Confirmation, bool) {
	if s.grid == nil || len(s.grid.selected) == 0 {
		return Confirmation{}, false
	}
	total := s.TotalPrice()
	seats := s.grid.BookSelected()

	confirmation := Confirmation{
		Count:    len(seats),
		Showtime: s.showtime,
		Seats:    seats,
		Total:    total,
	}
	if s.movie != nil {
		confirmation.MovieTitle = s.movie.Title
	}

	s.logger.Info("booking confirmed",
		zap.String("session_id", s.id),
		zap.String("title", confirmation.MovieTitle),
		zap.String("showtime", confirmation.Showtime),
		zap.Strings("seats", seats),
		zap.Int("total", total),
	)
	return confirmation, true
}
