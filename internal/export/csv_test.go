package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

func samplePayload(days int) *weatherapi.Forecast {
	data := &weatherapi.Forecast{
		Location: weatherapi.Place{Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"},
		Current: weatherapi.Current{
			TempC:      12.5,
			Condition:  weatherapi.Condition{Text: "Light rain, mist"},
			Humidity:   82,
			WindKPH:    14.4,
			PressureMB: 1012,
		},
	}
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		data.Forecast.Days = append(data.Forecast.Days, weatherapi.ForecastDay{
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
			Day: weatherapi.Day{
				MaxTempC:    15,
				MinTempC:    8.2,
				AvgHumidity: 70,
				MaxWindKPH:  20.1,
				Condition:   weatherapi.Condition{Text: "Cloudy"},
			},
		})
	}
	return data
}

func TestExportHasHeaderNowAndOneRowPerDay(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	raw, err := Bytes(samplePayload(5), now)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(raw))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)

	assert.Equal(t, "Date,Location,Temperature (°C),Condition,Humidity (%),Wind (km/h),Pressure (mb)", strings.Join(records[0], ","))
	assert.Equal(t, []string{"5/1/2024", "London, United Kingdom", "12.5", "Light rain, mist", "82", "14.4", "1012"}, records[1])
	assert.Equal(t, []string{"May 1", "London, United Kingdom", "15/8.2", "Cloudy", "70", "20.1", "-"}, records[2])
	assert.Equal(t, "May 5", records[6][0])
	for _, row := range records[2:] {
		assert.Equal(t, "-", row[6])
	}
}

func TestExportQuotesCellsWithCommas(t *testing.T) {
	raw, err := Bytes(samplePayload(1), time.Now())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"London, United Kingdom"`)
	assert.Contains(t, string(raw), `"Light rain, mist"`)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "weather-data-London-2024-12-31.csv", FileName("London", now))
	assert.Equal(t, "weather-data-a-b-2024-12-31.csv", FileName("a/b", now))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	path, err := WriteFile(dir, samplePayload(2), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "weather-data-London-2024-05-01.csv"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(raw), "\n"))
}

func TestWriteWithoutDataFails(t *testing.T) {
	_, err := WriteFile(t.TempDir(), nil, time.Now())
	assert.Error(t, err)
}
