package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/weather-popup/internal/backend"
	"github.com/atomicstack/weather-popup/internal/geo"
	"github.com/atomicstack/weather-popup/internal/logging"
	"github.com/atomicstack/weather-popup/internal/logging/events"
	"github.com/atomicstack/weather-popup/internal/prefs"
	"github.com/atomicstack/weather-popup/internal/theme"
	"github.com/atomicstack/weather-popup/internal/ui/command"
	uistate "github.com/atomicstack/weather-popup/internal/ui/state"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

// Focus names the region that receives printable keys.
type Focus int

const (
	FocusDashboard Focus = iota
	FocusSearch
)

func (f Focus) String() string {
	if f == FocusSearch {
		return "search"
	}
	return "dashboard"
}

type msgHandler func(tea.Msg) tea.Cmd

// WeatherService is the part of the weather client the model depends on.
type WeatherService interface {
	SearchLocations(ctx context.Context, text string) ([]weatherapi.Location, error)
	Forecast(ctx context.Context, req weatherapi.ForecastRequest) (*weatherapi.Forecast, error)
}

// Options configures a Model.
type Options struct {
	Service WeatherService
	Prefs   prefs.Store
	Locator *backend.Locator

	// Location overrides the persisted location at start-up.
	Location    string
	Days        int
	AirQuality  bool
	Alerts      bool
	QuietPeriod time.Duration
	ExportDir   string

	Width                int
	Height               int
	ShowFooter           bool
	ShortcutsWhileTyping bool

	Context context.Context
	Now     func() time.Time
}

// Model implements the Bubble Tea model for the weather dashboard.
type Model struct {
	focus       Focus
	suggestions *uistate.Suggestions
	debouncer   *uistate.Debouncer
	session     *uistate.Session
	pending     *uistate.FetchTicket

	dark        bool
	fahrenheit  bool
	hourly      bool
	selectedDay int

	coords       *geo.Coordinates
	geoErr       error
	geoRequested bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	styles      *theme.Styles
	spin        spinner.Model
	spinning    bool
	queryCursor cursor.Model

	handlers map[reflect.Type]msgHandler

	bus     *command.Bus
	service WeatherService
	prefs   prefs.Store
	locator *backend.Locator
	opts    Options
	now     func() time.Time
	quit    bool
}

// NewModel builds the dashboard from persisted preferences. The first
// forecast fetch is issued by Init.
func NewModel(opts Options) *Model {
	if opts.Prefs == nil {
		opts.Prefs = prefs.NewMemoryStore()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Days <= 0 {
		opts.Days = 5
	}
	location := opts.Location
	if location == "" {
		stored, err := prefs.Location(opts.Prefs)
		if err != nil {
			logging.Error(err)
		}
		location = stored
	}
	dark, err := prefs.DarkMode(opts.Prefs)
	if err != nil {
		logging.Error(err)
	}

	m := &Model{
		focus:       FocusDashboard,
		suggestions: uistate.NewSuggestions(),
		debouncer:   uistate.NewDebouncer(opts.QuietPeriod),
		session:     uistate.NewSession(""),
		dark:        dark,
		showFooter:  opts.ShowFooter,
		styles:      theme.For(dark),
		bus:         command.New(opts.Context),
		service:     opts.Service,
		prefs:       opts.Prefs,
		locator:     opts.Locator,
		opts:        opts,
		now:         opts.Now,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if opts.Location != "" {
		m.persistLocation(location)
	}
	ticket := m.session.SetLocation(location)
	m.pending = &ticket

	s := spinner.New()
	s.Spinner = spinner.Dot
	m.spin = s

	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	c.Focus()
	m.queryCursor = c
	m.applyTheme()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.pending != nil {
		cmds = append(cmds, m.fetchForecast(*m.pending))
		m.pending = nil
	}
	if m.locator != nil {
		cmds = append(cmds, waitForBackendEvent(m.locator))
	}
	cmds = append(cmds, m.startSpinner())
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(debounceMsg{}):       m.handleDebounceMsg,
		reflect.TypeOf(searchResultMsg{}):   m.handleSearchResultMsg,
		reflect.TypeOf(forecastLoadedMsg{}): m.handleForecastLoadedMsg,
		reflect.TypeOf(exportResultMsg{}):   m.handleExportResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.quit {
		return tea.Quit
	}
	if m.busy() && !m.spinning {
		cmds = append(cmds, m.startSpinner())
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) busy() bool {
	return m.session.Loading || m.suggestions.Loading
}

func (m *Model) startSpinner() tea.Cmd {
	if !m.busy() {
		return nil
	}
	m.spinning = true
	return m.spin.Tick
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if !m.busy() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(tick)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) applyTheme() {
	m.styles = theme.For(m.dark)
	if m.styles.Cursor != nil {
		m.queryCursor.Style = m.styles.Cursor.Copy()
	}
	if m.styles.Input != nil {
		m.queryCursor.TextStyle = m.styles.Input.Copy()
	}
	if m.styles.Loading != nil {
		m.spin.Style = m.styles.Loading.Copy()
	}
}

func (m *Model) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	m.focus = f
	if f == FocusSearch {
		m.suggestions.Reveal()
	} else {
		m.cancelSearch()
		m.suggestions.Visible = false
		m.suggestions.Loading = false
		m.suggestions.Unhighlight()
	}
	events.Input.Focus(f.String())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// Session exposes the active weather session.
func (m *Model) Session() *uistate.Session {
	return m.session
}

// Suggestions exposes the search dropdown state.
func (m *Model) Suggestions() *uistate.Suggestions {
	return m.suggestions
}

// Focus reports which region receives printable keys.
func (m *Model) Focus() Focus {
	return m.focus
}
