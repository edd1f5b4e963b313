package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/atomicstack/weather-popup/internal/backend"
	"github.com/atomicstack/weather-popup/internal/geo"
	"github.com/atomicstack/weather-popup/internal/logging"
	"github.com/atomicstack/weather-popup/internal/prefs"
	"github.com/atomicstack/weather-popup/internal/ui"
	"github.com/atomicstack/weather-popup/internal/weather"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

// Geolocation modes.
const (
	GeoIP     = "ip"
	GeoOff    = "off"
	GeoStatic = "static"
)

const (
	geoTimeout  = 10 * time.Second
	dbFileName  = "prefs.db"
	appDirName  = "weather-popup"
	onceTimeout = 15 * time.Second
)

// Config describes user-provided application options.
type Config struct {
	APIKey      string
	BaseURL     string
	Days        int
	AirQuality  bool
	Alerts      bool
	QuietPeriod time.Duration

	DBPath    string
	NoPersist bool
	ExportDir string

	GeoMode string
	GeoURL  string
	Lat     float64
	Lng     float64

	Location string
	Once     bool

	Width                int
	Height               int
	ShowFooter           bool
	ShortcutsWhileTyping bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := weatherapi.NewClient(weatherapi.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey})

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logging.Error(fmt.Errorf("close preferences: %w", cerr))
		}
	}()

	if cfg.Once {
		ctx, cancel := context.WithTimeout(context.Background(), onceTimeout)
		defer cancel()
		return PrintSummary(ctx, os.Stdout, client, store, cfg)
	}

	var locator *backend.Locator
	if provider := geoProvider(cfg); provider != nil {
		locator = backend.NewLocator(geo.NewOnce(provider), geoTimeout)
		defer locator.Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	model := ui.NewModel(ui.Options{
		Service:              client,
		Prefs:                store,
		Locator:              locator,
		Location:             cfg.Location,
		Days:                 cfg.Days,
		AirQuality:           cfg.AirQuality,
		Alerts:               cfg.Alerts,
		QuietPeriod:          cfg.QuietPeriod,
		ExportDir:            cfg.ExportDir,
		Width:                cfg.Width,
		Height:               cfg.Height,
		ShowFooter:           cfg.ShowFooter,
		ShortcutsWhileTyping: cfg.ShortcutsWhileTyping,
		Context:              ctx,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func openStore(cfg Config) (prefs.Store, error) {
	if cfg.NoPersist {
		return prefs.NewMemoryStore(), nil
	}
	path := cfg.DBPath
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, appDirName, dbFileName)
	}
	store, err := prefs.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	logging.Info("preferences opened", zap.String("path", path))
	return store, nil
}

func geoProvider(cfg Config) geo.Provider {
	switch cfg.GeoMode {
	case GeoStatic:
		return geo.Static{Coordinates: geo.Coordinates{Lat: cfg.Lat, Lng: cfg.Lng}}
	case GeoIP:
		return geo.NewIPProvider(cfg.GeoURL)
	}
	return nil
}

// CurrentService is the part of the weather client used by one-shot mode.
type CurrentService interface {
	Current(ctx context.Context, query string, airQuality bool) (*weatherapi.CurrentWeather, error)
}

// PrintSummary writes the current conditions for the configured or saved
// location.
func PrintSummary(ctx context.Context, w io.Writer, svc CurrentService, store prefs.Store, cfg Config) error {
	location := cfg.Location
	if location == "" {
		saved, err := prefs.Location(store)
		if err != nil {
			logging.Error(err)
		}
		location = saved
	}
	cur, err := svc.Current(ctx, location, cfg.AirQuality)
	if err != nil {
		return fmt.Errorf("fetch current conditions for %q: %w", location, err)
	}
	_, err = io.WriteString(w, Summary(cur))
	return err
}

// Summary renders current conditions as a few plain-text lines.
func Summary(cur *weatherapi.CurrentWeather) string {
	if cur == nil {
		return ""
	}
	c := cur.Current
	var b strings.Builder
	b.WriteString(weather.FormatLocationName(cur.Location.Name, cur.Location.Region, cur.Location.Country))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s (feels like %s)\n",
		weather.FormatTemp(c.TempC, false), c.Condition.Text, weather.FormatTemp(c.FeelsLikeC, false))
	wind := strconv.FormatFloat(c.WindKPH, 'f', -1, 64) + " km/h"
	if c.WindDir != "" {
		wind += " " + c.WindDir
	}
	fmt.Fprintf(&b, "Humidity %d%% · Wind %s · UV %s (%s)\n",
		c.Humidity, wind, strconv.FormatFloat(c.UV, 'f', -1, 64), weather.UVLevel(c.UV).Name)
	if c.AirQuality != nil {
		fmt.Fprintf(&b, "PM2.5 %s (%s)\n",
			strconv.FormatFloat(c.AirQuality.PM25, 'f', 1, 64), weather.AQILevel(c.AirQuality.PM25).Name)
	}
	return b.String()
}
