package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/weather-popup/internal/format/table"
	"github.com/atomicstack/weather-popup/internal/theme"
	"github.com/atomicstack/weather-popup/internal/weather"
	"github.com/atomicstack/weather-popup/internal/weatherapi"
)

const (
	loadingText = "Fetching weather data..."
	errorTitle  = "Oops! Something went wrong"
	retryHint   = "Press space to try again"
	attribution = "Data provided by WeatherAPI.com"
)

// dashboardLines renders the loading, error and data blocks. Data stays
// hidden while a fetch is running and stays visible under an error.
func (m *Model) dashboardLines() []styledLine {
	st := m.styles
	sess := m.session
	lines := make([]styledLine, 0, 48)
	if sess.Loading {
		lines = append(lines, styledLine{text: m.spin.View() + " " + st.Loading.Render(loadingText), raw: true})
	}
	if sess.Err != nil && !sess.Loading {
		lines = append(lines,
			styledLine{text: errorTitle, style: st.Error},
			styledLine{text: sess.ErrorMessage(), style: st.Info},
			styledLine{text: retryHint, style: st.Muted},
			styledLine{},
		)
	}
	if sess.Data == nil || sess.Loading {
		return lines
	}
	data := sess.Data
	lines = append(lines, m.locationLines(data)...)
	lines = append(lines, m.alertLines(data)...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.currentLines(data)...)
	if aq := data.Current.AirQuality; aq != nil {
		lines = append(lines, styledLine{})
		lines = append(lines, m.airQualityLines(aq)...)
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.forecastTabs(len(data.Forecast.Days)), raw: true})
	if m.hourly {
		lines = append(lines, m.hourlyLines(data)...)
	} else {
		lines = append(lines, m.dailyLines(data)...)
	}
	lines = append(lines, styledLine{})
	updated := attribution
	if last := data.Current.LastUpdated; last != "" {
		updated += " • Last updated: " + weather.FormatClock(last)
	}
	lines = append(lines, styledLine{text: updated, style: st.Muted})
	return lines
}

func (m *Model) locationLines(data *weatherapi.Forecast) []styledLine {
	st := m.styles
	name := data.Location.Name
	if data.Location.Region != "" {
		name += ", " + data.Location.Region
	}
	lines := []styledLine{
		{text: "📍 " + name, style: st.Title},
		{text: data.Location.Country, style: st.Subtitle},
	}
	if data.Location.LocalTime != "" {
		lines = append(lines, styledLine{text: weather.FormatLocalTime(data.Location.LocalTime), style: st.Muted})
	}
	return lines
}

func (m *Model) alertLines(data *weatherapi.Forecast) []styledLine {
	alerts := data.Alerts.Alert
	if len(alerts) == 0 {
		return nil
	}
	st := m.styles
	lines := []styledLine{{}, {text: "⚠ Weather Alerts", style: st.Alert}}
	for _, alert := range alerts {
		lines = append(lines, styledLine{text: alert.Headline, style: st.Value})
		if desc := strings.TrimSpace(alert.Desc); desc != "" {
			lines = append(lines, styledLine{text: strings.Join(strings.Fields(desc), " "), style: st.AlertBody})
		}
	}
	return lines
}

func (m *Model) currentLines(data *weatherapi.Forecast) []styledLine {
	st := m.styles
	cur := data.Current
	glyph := weather.ConditionGlyph(cur.Condition.Code, cur.IsDay == 1)
	headline := theme.Colored(glyph.Color, glyph.Symbol) + "  " +
		st.BigTemp.Render(m.temp(cur.TempC)) + "  " +
		st.Value.Render(cur.Condition.Text) + "  " +
		st.Muted.Render("Feels like "+m.temp(cur.FeelsLikeC))

	uv := weather.UVLevel(cur.UV)
	wind := number(cur.WindKPH) + " km/h"
	if cur.WindDir != "" {
		wind += " " + cur.WindDir
	} else if cur.WindDegree != 0 {
		wind += " " + weather.WindDirection(cur.WindDegree)
	}
	cells := [][2]string{
		{"Real Feel", m.temp(cur.FeelsLikeC)},
		{"Humidity", strconv.Itoa(cur.Humidity) + "%"},
		{"Wind", wind},
		{"Visibility", number(cur.VisKM) + " km"},
		{"Pressure", number(cur.PressureMB) + " mb"},
		{"UV Index", number(cur.UV) + " - " + theme.Colored(uv.Color, uv.Name)},
	}
	rows := make([][]string, 0, 2)
	for i := 0; i < len(cells); i += 3 {
		row := make([]string, 0, 6)
		for _, cell := range cells[i : i+3] {
			row = append(row, st.Label.Render(cell[0]), st.Value.Render(cell[1]))
		}
		rows = append(rows, row)
	}
	lines := []styledLine{{text: headline, raw: true}}
	for _, line := range table.Format(rows, nil) {
		lines = append(lines, styledLine{text: line, raw: true})
	}
	return lines
}

func (m *Model) airQualityLines(aq *weatherapi.AirQuality) []styledLine {
	st := m.styles
	index := weather.Round(aq.PM25)
	level := weather.AQILevel(float64(index))
	head := st.Section.Render("Air Quality") + "  " +
		theme.Colored(level.Color, fmt.Sprintf("%d AQI", index)) + "  " +
		st.Label.Render(level.Name)
	pollutants := []struct {
		name  string
		value float64
	}{
		{"CO", aq.CO},
		{"NO2", aq.NO2},
		{"O3", aq.O3},
		{"PM10", aq.PM10},
	}
	parts := make([]string, 0, len(pollutants))
	for _, p := range pollutants {
		parts = append(parts, st.Label.Render(p.name)+" "+st.Value.Render(fmt.Sprintf("%.1f μg/m³", p.value)))
	}
	return []styledLine{
		{text: head, raw: true},
		{text: strings.Join(parts, "  "), raw: true},
	}
}

func (m *Model) forecastTabs(days int) string {
	st := m.styles
	daily, hourly := st.TabActive, st.TabInactive
	if m.hourly {
		daily, hourly = st.TabInactive, st.TabActive
	}
	return daily.Render(fmt.Sprintf(" %d-Day Forecast ", days)) + " " + hourly.Render(" Hourly Forecast ")
}

func (m *Model) dailyLines(data *weatherapi.Forecast) []styledLine {
	st := m.styles
	days := data.Forecast.Days
	if len(days) == 0 {
		return []styledLine{{text: "No forecast available", style: st.Info}}
	}
	rows := make([][]string, 0, len(days))
	for i, day := range days {
		marker := " "
		label := st.Label.Render(weather.DayLabel(i, day.Date))
		if i == m.selectedDay {
			marker = st.Section.Render("›")
			label = st.Value.Render(weather.DayLabel(i, day.Date))
		}
		glyph := weather.ConditionGlyph(day.Day.Condition.Code, true)
		rows = append(rows, []string{
			marker,
			label,
			st.Muted.Render(weather.FormatDay(day.Date)),
			theme.Colored(glyph.Color, glyph.Symbol),
			day.Day.Condition.Text,
			st.Value.Render(m.degrees(day.Day.MaxTempC)) + "/" + st.Muted.Render(m.degrees(day.Day.MinTempC)),
			"💧 " + number(day.Day.AvgHumidity) + "%",
			"💨 " + strconv.Itoa(weather.Round(day.Day.MaxWindKPH)) + "km/h",
			"☀ " + weather.FormatClock(day.Astro.Sunrise),
			"☾ " + weather.FormatClock(day.Astro.Sunset),
		})
	}
	lines := []styledLine{{text: fmt.Sprintf("%d-Day Forecast", len(days)), style: st.Section}}
	for _, line := range table.Format(rows, nil) {
		lines = append(lines, styledLine{text: line, raw: true})
	}
	return lines
}

func (m *Model) hourlyLines(data *weatherapi.Forecast) []styledLine {
	st := m.styles
	days := data.Forecast.Days
	if len(days) == 0 {
		return []styledLine{{text: "No forecast available", style: st.Info}}
	}
	idx := m.selectedDay
	if idx >= len(days) {
		idx = 0
	}
	day := days[idx]
	title := "24-Hour Forecast · " + weather.DayLabel(idx, day.Date)
	lines := []styledLine{{text: title, style: st.Section}}
	rows := make([][]string, 0, len(day.Hour))
	for _, hour := range day.Hour {
		glyph := weather.ConditionGlyph(hour.Condition.Code, hour.IsDay == 1)
		rows = append(rows, []string{
			st.Label.Render(weather.FormatClock(hour.Time)),
			theme.Colored(glyph.Color, glyph.Symbol),
			st.Value.Render(m.degrees(hour.TempC)),
			hour.Condition.Text,
			"💧 " + strconv.Itoa(hour.Humidity) + "%",
			"💨 " + number(hour.WindKPH) + "km/h",
		})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight}) {
		lines = append(lines, styledLine{text: line, raw: true})
	}
	return lines
}

func (m *Model) temp(celsius float64) string {
	return weather.FormatTemp(celsius, m.fahrenheit)
}

func (m *Model) degrees(celsius float64) string {
	if m.fahrenheit {
		celsius = weather.CelsiusToFahrenheit(celsius)
	}
	return strconv.Itoa(weather.Round(celsius)) + "°"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
