// Package export writes the current forecast payload as CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/weather-popup/internal/weather"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

// Header is the fixed first row of every export.
var Header = []string{"Date", "Location", "Temperature (°C)", "Condition", "Humidity (%)", "Wind (km/h)", "Pressure (mb)"}

// Rows builds the header, one "now" row and one row per forecast day.
func Rows(data *weatherapi.Forecast, now time.Time) [][]string {
	if data == nil {
		return nil
	}
	place := data.Location.Name + ", " + data.Location.Country
	rows := make([][]string, 0, len(data.Forecast.Days)+2)
	rows = append(rows, append([]string(nil), Header...))
	rows = append(rows, []string{
		now.Format("1/2/2006"),
		place,
		number(data.Current.TempC),
		data.Current.Condition.Text,
		strconv.Itoa(data.Current.Humidity),
		number(data.Current.WindKPH),
		number(data.Current.PressureMB),
	})
	for _, day := range data.Forecast.Days {
		rows = append(rows, []string{
			weather.FormatDay(day.Date),
			place,
			number(day.Day.MaxTempC) + "/" + number(day.Day.MinTempC),
			day.Day.Condition.Text,
			number(day.Day.AvgHumidity),
			number(day.Day.MaxWindKPH),
			"-",
		})
	}
	return rows
}

// Write encodes the export to w.
func Write(w io.Writer, data *weatherapi.Forecast, now time.Time) error {
	rows := Rows(data, now)
	if rows == nil {
		return fmt.Errorf("no forecast data to export")
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// Bytes returns the encoded export.
func Bytes(data *weatherapi.Forecast, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, data, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName is weather-data-<location>-<YYYY-MM-DD>.csv.
func FileName(locationName string, now time.Time) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '-'
		}
		return r
	}, locationName)
	return fmt.Sprintf("weather-data-%s-%s.csv", name, now.UTC().Format("2006-01-02"))
}

// WriteFile stores the export in dir and returns the written path.
func WriteFile(dir string, data *weatherapi.Forecast, now time.Time) (string, error) {
	if data == nil {
		return "", fmt.Errorf("no forecast data to export")
	}
	payload, err := Bytes(data, now)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(data.Location.Name, now))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
