// Package weather holds presentation helpers shared by the dashboard and the
// CSV export: unit conversion, date/time labels, index bands and glyphs.
package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// FormatTemp renders a rounded temperature in the requested unit.
func FormatTemp(celsius float64, fahrenheit bool) string {
	if fahrenheit {
		return fmt.Sprintf("%d°F", Round(CelsiusToFahrenheit(celsius)))
	}
	return fmt.Sprintf("%d°C", Round(celsius))
}

// Round rounds half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// FormatClock turns "14:05" (or "2024-05-01 14:05") into "2:05 PM".
// Values that already carry AM/PM pass through untouched.
func FormatClock(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.LastIndex(value, " "); idx >= 0 {
		suffix := strings.ToUpper(value[idx+1:])
		if suffix == "AM" || suffix == "PM" {
			return value
		}
		value = value[idx+1:]
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return value
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return value
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], suffix)
}

// FormatDay turns "2024-01-02" into "Jan 2".
func FormatDay(date string) string {
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// DayLabel names a forecast day by position: Today, Tomorrow, then weekday.
func DayLabel(index int, date string) string {
	switch index {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return t.Format("Mon")
}

// FormatLocalTime renders the provider's "2006-01-02 15:04" local time.
func FormatLocalTime(value string) string {
	t, err := time.Parse("2006-01-02 15:04", strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return t.Format("Monday, 2 January 2006, 03:04 PM")
}

// FormatLocationName joins name, region and country, dropping a region that
// repeats the name.
func FormatLocationName(name, region, country string) string {
	parts := []string{name}
	if region != "" && region != name {
		parts = append(parts, region)
	}
	if country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}

var compass = [...]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// WindDirection maps degrees to a 16-point compass label.
func WindDirection(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % len(compass)
	if idx < 0 {
		idx += len(compass)
	}
	return compass[idx]
}
