package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/atomicstack/weather-popup/internal/app"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envAPIKey       = "WEATHER_POPUP_API_KEY"
	envAPIKeyLegacy = "WEATHER_API_KEY"
	envBaseURL      = "WEATHER_POPUP_BASE_URL"
	envDays         = "WEATHER_POPUP_DAYS"
	envAirQuality   = "WEATHER_POPUP_AQI"
	envAlerts       = "WEATHER_POPUP_ALERTS"
	envQuietPeriod  = "WEATHER_POPUP_QUIET_PERIOD"
	envDBPath       = "WEATHER_POPUP_DB"
	envNoPersist    = "WEATHER_POPUP_NO_PERSIST"
	envExportDir    = "WEATHER_POPUP_EXPORT_DIR"
	envGeo          = "WEATHER_POPUP_GEO"
	envGeoURL       = "WEATHER_POPUP_GEO_URL"
	envLat          = "WEATHER_POPUP_LAT"
	envLng          = "WEATHER_POPUP_LNG"
	envLocation     = "WEATHER_POPUP_LOCATION"
	envWidth        = "WEATHER_POPUP_WIDTH"
	envHeight       = "WEATHER_POPUP_HEIGHT"
	envShowFooter   = "WEATHER_POPUP_FOOTER"
	envShortcuts    = "WEATHER_POPUP_SHORTCUTS_WHILE_TYPING"
	envTrace        = "WEATHER_POPUP_TRACE"
	envLogFile      = "WEATHER_POPUP_LOG_FILE"

	dotEnvFile = ".env"
)

// Load parses configuration from CLI arguments, the process environment and
// a .env file in the working directory.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], WithDotEnv(os.Environ(), dotEnvFile))
}

// WithDotEnv appends entries from the given .env files that the environment
// does not already define. Missing files are skipped.
func WithDotEnv(environ []string, paths ...string) []string {
	env := parseEnv(environ)
	merged := append([]string(nil), environ...)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			continue
		}
		for key, value := range values {
			if _, ok := env[key]; ok {
				continue
			}
			env[key] = value
			merged = append(merged, key+"="+value)
		}
	}
	return merged
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("weather-popup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	apiKey := fs.String("api-key", envOrDefault(env, envAPIKey, envOrDefault(env, envAPIKeyLegacy, "")), "WeatherAPI.com key")
	baseURL := fs.String("base-url", envOrDefault(env, envBaseURL, weatherapi.DefaultBaseURL), "weather provider base URL")
	days := fs.Int("days", envOrInt(env, envDays, 5), "forecast days to request (1-14)")
	aqi := fs.Bool("aqi", envOrBool(env, envAirQuality, true), "request air quality data")
	alerts := fs.Bool("alerts", envOrBool(env, envAlerts, true), "request weather alerts")
	quiet := fs.Duration("quiet-period", envOrDuration(env, envQuietPeriod, 300*time.Millisecond), "search debounce quiet period")
	dbPath := fs.String("db", envOrDefault(env, envDBPath, ""), "path to the preferences database")
	noPersist := fs.Bool("no-persist", envOrBool(env, envNoPersist, false), "keep preferences in memory only")
	exportDir := fs.String("export-dir", envOrDefault(env, envExportDir, "."), "directory for CSV exports")
	geoMode := fs.String("geo", envOrDefault(env, envGeo, app.GeoOff), "geolocation mode: ip, off or static")
	geoURL := fs.String("geo-url", envOrDefault(env, envGeoURL, ""), "IP geolocation endpoint")
	lat := fs.Float64("lat", envOrFloat(env, envLat, 0), "latitude for --geo=static")
	lng := fs.Float64("lng", envOrFloat(env, envLng, 0), "longitude for --geo=static")
	location := fs.String("location", envOrDefault(env, envLocation, ""), "location to show instead of the saved one")
	once := fs.Bool("once", false, "print current conditions and exit")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the shortcut footer")
	shortcuts := fs.Bool("shortcuts-while-typing", envOrBool(env, envShortcuts, false), "let space, t and h act as shortcuts inside the search field")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *quiet < 0 {
		return Config{}, fmt.Errorf("quiet-period must be >= 0 (got %s)", *quiet)
	}

	cfg := Config{
		App: app.Config{
			APIKey:               strings.TrimSpace(*apiKey),
			BaseURL:              *baseURL,
			Days:                 weatherapi.ClampDays(*days),
			AirQuality:           *aqi,
			Alerts:               *alerts,
			QuietPeriod:          *quiet,
			DBPath:               *dbPath,
			NoPersist:            *noPersist,
			ExportDir:            *exportDir,
			GeoMode:              strings.ToLower(strings.TrimSpace(*geoMode)),
			GeoURL:               *geoURL,
			Lat:                  *lat,
			Lng:                  *lng,
			Location:             strings.TrimSpace(*location),
			Once:                 *once,
			Width:                *width,
			Height:               *height,
			ShowFooter:           *footer,
			ShortcutsWhileTyping: *shortcuts,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"baseURL":              *baseURL,
			"days":                 strconv.Itoa(*days),
			"aqi":                  strconv.FormatBool(*aqi),
			"alerts":               strconv.FormatBool(*alerts),
			"quietPeriod":          quiet.String(),
			"db":                   *dbPath,
			"noPersist":            strconv.FormatBool(*noPersist),
			"exportDir":            *exportDir,
			"geo":                  *geoMode,
			"location":             *location,
			"once":                 strconv.FormatBool(*once),
			"width":                strconv.Itoa(*width),
			"height":               strconv.Itoa(*height),
			"footer":               strconv.FormatBool(*footer),
			"shortcutsWhileTyping": strconv.FormatBool(*shortcuts),
			"trace":                strconv.FormatBool(*trace),
			"logFile":              *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.APIKey == "" {
		return errors.New("missing API key (set " + envAPIKey + " or pass --api-key)")
	}
	switch cfg.App.GeoMode {
	case app.GeoIP, app.GeoOff:
	case app.GeoStatic:
		if cfg.App.Lat < -90 || cfg.App.Lat > 90 {
			return fmt.Errorf("lat must be within [-90, 90] (got %v)", cfg.App.Lat)
		}
		if cfg.App.Lng < -180 || cfg.App.Lng > 180 {
			return fmt.Errorf("lng must be within [-180, 180] (got %v)", cfg.App.Lng)
		}
	default:
		return fmt.Errorf("unknown geolocation mode %q (want ip, off or static)", cfg.App.GeoMode)
	}
	return nil
}
