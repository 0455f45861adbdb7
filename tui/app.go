package tui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"cinemax-cli/auth"
	"cinemax-cli/booking"
	"cinemax-cli/model"
	"cinemax-cli/service"
)

type appState int

const (
	stateLogin appState = iota
	stateMovies
	stateBooking
)

type bookingFocus int

const (
	focusShowtimes bookingFocus = iota
	focusSeats
)

type Options struct {
	Session         *booking.Session
	Catalog         *service.Catalog
	Logger          *zap.Logger
	ShowSeatNumbers bool
}

type appModel struct {
	session *booking.Session
	catalog *service.Catalog
	logger  *zap.Logger
	gate    *auth.Gate

	state appState
	err   error

	width  int
	height int

	inputs       map[auth.Field]textinput.Model
	focusIndex   int
	showPassword bool

	movieList list.Model

	focus           bookingFocus
	showtimeCursor  int
	seatRow         int
	seatCol         int
	showSeatNumbers bool

	notice string
}

type errMsg struct {
	err error
}

func New(opts Options) tea.Model {
	if opts.Session == nil {
		opts.Session = booking.NewSession()
	}
	if opts.Catalog == nil {
		opts.Catalog = service.NewCatalog()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	m := appModel{
		session:         opts.Session,
		catalog:         opts.Catalog,
		logger:          opts.Logger,
		gate:            auth.NewGate(),
		state:           stateLogin,
		showSeatNumbers: opts.ShowSeatNumbers,
	}
	m.movieList = newList("Now Showing")
	m.movieList.SetItems(buildMovieItems(m.catalog.Movies()))
	m.resetInputs()

	if identity, ok := m.session.Identity(); ok {
		m.logger.Debug("resuming active session", zap.String("email", identity.Email))
		m.state = stateMovies
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.state == stateLogin {
		return textinput.Blink
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		if m.state == stateMovies && m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateLogin:
		cmd = m.updateFocusedInput(msg)
	case stateMovies:
		m.movieList, cmd = m.movieList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	var body string
	switch m.state {
	case stateLogin:
		body = m.loginView()
	case stateMovies:
		body = m.movieList.View()
	case stateBooking:
		body = m.bookingView()
	}
	out := header + "\n\n" + body
	if m.notice != "" {
		out += "\n\n" + noticeStyle.Render(m.notice)
	}
	if m.err != nil {
		out += "\n\n" + errorStyle.Render(m.err.Error())
	}
	return out
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (m appModel) headerView() string {
	title := titleStyle.Render("CineMax")
	sub := []string{}
	if identity, ok := m.session.Identity(); ok {
		sub = append(sub, fmt.Sprintf("Welcome, %s!", identity.Name), identity.Email)
	}
	if m.state == stateBooking {
		if movie, ok := m.session.Movie(); ok {
			sub = append(sub, fmt.Sprintf("Movie: %s", movie.Title))
		}
		if showtime := m.session.Showtime(); showtime != "" {
			sub = append(sub, fmt.Sprintf("Showtime: %s", showtime))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit"
	switch m.state {
	case stateLogin:
		hints = "ctrl+c quit • tab next field • enter submit • ctrl+s switch sign in/up • ctrl+r show password"
	case stateMovies:
		hints = "ctrl+c quit • type to filter • enter select • ctrl+o open poster • ctrl+x logout"
	case stateBooking:
		if m.focus == focusSeats {
			hints = "ctrl+c quit • esc back • arrows move • space toggle seat • c confirm • t showtimes • n toggle labels • ctrl+x logout"
		} else {
			hints = "ctrl+c quit • esc back • ←/→ choose showtime • enter select • ctrl+x logout"
		}
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	switch m.state {
	case stateLogin:
		return m.handleLoginKey(msg)
	case stateMovies:
		return m.handleMoviesKey(msg)
	case stateBooking:
		return m.handleBookingKey(msg)
	}
	return m, nil, false
}

func (m appModel) handleMoviesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "esc":
		if m.movieList.SettingFilter() || m.movieList.IsFiltered() || m.movieList.FilterValue() != "" {
			m.movieList.ResetFilter()
		}
		return m, nil, true
	case "ctrl+x":
		m.logout()
		return m, textinput.Blink, true
	case "ctrl+o":
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok || item.movie.Image == "" {
			return m, nil, true
		}
		return m, openURLCmd(item.movie.Image), true
	case "enter":
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return m, nil, true
		}
		m.openMovie(item.movie)
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleBookingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	m.notice = ""
	switch msg.String() {
	case "esc":
		m.session.Back()
		m.state = stateMovies
		return m, nil, true
	case "ctrl+x":
		m.logout()
		return m, textinput.Blink, true
	case "q":
		return m, tea.Quit, true
	case "c":
		m.confirmBooking()
		return m, nil, true
	}

	if m.focus == focusShowtimes {
		return m.handleShowtimeKey(msg)
	}
	return m.handleSeatKey(msg)
}

func (m appModel) handleShowtimeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	movie, ok := m.session.Movie()
	if !ok || len(movie.Showtimes) == 0 {
		return m, nil, true
	}
	switch msg.String() {
	case "left", "h", "shift+tab":
		m.showtimeCursor = (m.showtimeCursor - 1 + len(movie.Showtimes)) % len(movie.Showtimes)
	case "right", "l", "tab":
		m.showtimeCursor = (m.showtimeCursor + 1) % len(movie.Showtimes)
	case "down", "j":
		if m.session.Showtime() != "" {
			m.focus = focusSeats
		}
	case "enter", " ", "space":
		showtime := movie.Showtimes[clampIndex(m.showtimeCursor, len(movie.Showtimes))]
		if m.session.SelectShowtime(showtime) {
			m.focus = focusSeats
		}
	}
	return m, nil, true
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "up", "k":
		if m.seatRow == 0 {
			m.focus = focusShowtimes
		} else {
			m.seatRow--
		}
	case "down", "j":
		m.seatRow = min(m.seatRow+1, booking.RowCount-1)
	case "left", "h":
		m.seatCol = max(m.seatCol-1, 0)
	case "right", "l":
		m.seatCol = min(m.seatCol+1, booking.SeatsPerRow-1)
	case "t":
		m.focus = focusShowtimes
	case "n":
		m.showSeatNumbers = !m.showSeatNumbers
	case " ", "space", "enter":
		if seat, ok := m.session.SeatAt(m.seatRow, m.seatCol); ok {
			m.session.ToggleSeat(seat.Id)
		}
	}
	return m, nil, true
}

func (m *appModel) openMovie(movie model.Movie) {
	previous, hadMovie := m.session.Movie()
	m.session.SelectMovie(movie)
	m.state = stateBooking
	m.notice = ""

	if showtime := m.session.Showtime(); showtime != "" {
		m.focus = focusSeats
		for i, t := range movie.Showtimes {
			if t == showtime {
				m.showtimeCursor = i
			}
		}
		return
	}
	m.focus = focusShowtimes
	m.showtimeCursor = 0
	if !hadMovie || previous.Id != movie.Id {
		m.seatRow, m.seatCol = 0, 0
	}
}

func (m *appModel) confirmBooking() {
	confirmation, ok := m.session.ConfirmBooking()
	if !ok {
		return
	}
	m.notice = fmt.Sprintf("Booking confirmed! %d seats booked for %s", confirmation.Count, confirmation.MovieTitle)
}

func (m *appModel) logout() {
	m.session.Logout()
	m.gate = auth.NewGate()
	m.showPassword = false
	m.resetInputs()
	m.movieList.ResetFilter()
	m.movieList.Select(0)
	m.focus = focusShowtimes
	m.showtimeCursor = 0
	m.seatRow, m.seatCol = 0, 0
	m.notice = ""
	m.state = stateLogin
	m.logger.Debug("logged out")
}

func (m appModel) bookingView() string {
	movie, ok := m.session.Movie()
	if !ok {
		return "No movie selected."
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(movie.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Render(movie.Genre))
	b.WriteString("\n")
	b.WriteString(hint(fmt.Sprintf("%s • ★ %.1f • %s", movie.Duration, movie.Rating, formatPrice(movie.Price))))
	b.WriteString("\n\n")
	description := lipgloss.NewStyle()
	if m.width > 20 {
		description = description.Width(min(m.width-2, 84))
	}
	b.WriteString(description.Render(movie.Description))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Select Showtime"))
	b.WriteString("\n")
	b.WriteString(m.renderShowtimes(movie))

	if m.session.Showtime() == "" {
		b.WriteString("\n\n")
		b.WriteString(hint("Pick a showtime to see available seats."))
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Select Your Seats"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSeatMap())
	if summary := m.summaryView(movie); summary != "" {
		b.WriteString("\n")
		b.WriteString(summary)
	}
	return b.String()
}

func (m appModel) renderShowtimes(movie model.Movie) string {
	chip := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	chosen := chip.BorderForeground(lipgloss.Color("141")).Background(lipgloss.Color("141")).Foreground(lipgloss.Color("0")).Bold(true)
	cursor := chip.BorderForeground(lipgloss.Color("213"))

	chips := make([]string, 0, len(movie.Showtimes))
	for i, showtime := range movie.Showtimes {
		style := chip
		if showtime == m.session.Showtime() {
			style = chosen
		} else if m.focus == focusShowtimes && i == m.showtimeCursor {
			style = cursor
		}
		chips = append(chips, style.Render(showtime))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m appModel) summaryView(movie model.Movie) string {
	selected := m.session.SelectedSeats()
	if len(selected) == 0 {
		return ""
	}
	name := ""
	if identity, ok := m.session.Identity(); ok {
		name = identity.Name
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Booking for %s:", name)),
		lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Render(strings.Join(selected, ", ")),
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		fmt.Sprintf("Total: %d seats", len(selected)),
		lipgloss.NewStyle().Bold(true).Render(formatPrice(m.session.TotalPrice())),
	)
	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right),
		"",
		hint(fmt.Sprintf("Press c to confirm booking for %s at %s", movie.Title, m.session.Showtime())),
	)
	return lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(content)
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	l := m.activeList()
	if l == nil || !l.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return false
		}
		setFilter(l, l.FilterValue()+string(msg.Runes))
		return true
	case tea.KeySpace:
		setFilter(l, l.FilterValue()+" ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		value := l.FilterValue()
		if value == "" {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(value)
		setFilter(l, value[:len(value)-size])
		return true
	}
	return false
}

// setFilter applies value as the list filter; an empty value clears it.
func setFilter(l *list.Model, value string) {
	if value == "" {
		l.ResetFilter()
		return
	}
	l.SetFilterText(value)
}

func (m *appModel) activeList() *list.Model {
	if m.state == stateMovies {
		return &m.movieList
	}
	return nil
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	for field, input := range m.inputs {
		input.Width = min(40, max(10, m.width-8))
		m.inputs[field] = input
	}
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}

type movieItem struct {
	movie model.Movie
}

func (m movieItem) Title() string {
	return m.movie.Title
}

func (m movieItem) Description() string {
	return fmt.Sprintf("%s • %s • ★ %.1f • %s", m.movie.Genre, m.movie.Duration, m.movie.Rating, formatPrice(m.movie.Price))
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.Genre}, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func formatPrice(price int) string {
	return fmt.Sprintf("$%d", price)
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return max(0, min(i, n-1))
}
