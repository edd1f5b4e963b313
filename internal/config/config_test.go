package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/weather-popup/internal/app"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envAPIKey + "=abc"})
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.App.APIKey)
	assert.Equal(t, weatherapi.DefaultBaseURL, cfg.App.BaseURL)
	assert.Equal(t, 5, cfg.App.Days)
	assert.True(t, cfg.App.AirQuality)
	assert.True(t, cfg.App.Alerts)
	assert.Equal(t, 300*time.Millisecond, cfg.App.QuietPeriod)
	assert.Equal(t, app.GeoOff, cfg.App.GeoMode)
	assert.Equal(t, ".", cfg.App.ExportDir)
	assert.True(t, cfg.App.ShowFooter)
	assert.False(t, cfg.App.ShortcutsWhileTyping)
	assert.False(t, cfg.Logging.Trace)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		envAPIKey + "=from-env",
		envDays + "=3",
		envGeo + "=off",
		envQuietPeriod + "=150ms",
	}
	args := []string{"--api-key", "from-flag", "--days", "30", "--geo", "Static", "--lat", "19.07", "--lng", "72.88", "--trace", "--location", " Paris "}

	cfg, err := LoadArgs(args, env)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.App.APIKey)
	assert.Equal(t, weatherapi.MaxForecastDays, cfg.App.Days)
	assert.Equal(t, app.GeoStatic, cfg.App.GeoMode)
	assert.Equal(t, 150*time.Millisecond, cfg.App.QuietPeriod)
	assert.Equal(t, "Paris", cfg.App.Location)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "30", cfg.Flags["days"])
	assert.Equal(t, args, cfg.Args)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsLegacyKeyAndBadValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envAPIKeyLegacy + "=legacy", envDays + "=many", envQuietPeriod + "=soon"})
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.App.APIKey)
	assert.Equal(t, 5, cfg.App.Days)
	assert.Equal(t, 300*time.Millisecond, cfg.App.QuietPeriod)
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	_, err := LoadArgs([]string{"--width", "-1"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"--height", "-4"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"--unknown"}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, []string{envAPIKey + "=abc"})
	require.NoError(t, err)

	missing := base
	missing.App.APIKey = ""
	assert.ErrorContains(t, Validate(missing), "missing API key")

	badMode := base
	badMode.App.GeoMode = "gps"
	assert.ErrorContains(t, Validate(badMode), "unknown geolocation mode")

	badLat := base
	badLat.App.GeoMode = app.GeoStatic
	badLat.App.Lat = 91
	assert.ErrorContains(t, Validate(badLat), "lat")

	badLng := base
	badLng.App.GeoMode = app.GeoStatic
	badLng.App.Lng = -181
	assert.ErrorContains(t, Validate(badLng), "lng")
}

func TestWithDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WEATHER_POPUP_API_KEY=dotenv\nWEATHER_POPUP_DAYS=7\n"), 0o644))

	environ := WithDotEnv([]string{envAPIKey + "=real"}, path, filepath.Join(t.TempDir(), "missing.env"))
	cfg, err := LoadArgs(nil, environ)
	require.NoError(t, err)

	assert.Equal(t, "real", cfg.App.APIKey)
	assert.Equal(t, 7, cfg.App.Days)
}
