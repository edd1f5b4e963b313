package weatherapi

// Location is a single candidate returned by the search endpoint.
type Location struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

// Condition describes the provider's weather condition for a reading.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// Place is the resolved location attached to current and forecast payloads.
type Place struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	TimeZone  string  `json:"tz_id"`
	LocalTime string  `json:"localtime"`
}

// AirQuality holds pollutant concentrations in μg/m³.
type AirQuality struct {
	CO      float64 `json:"co"`
	NO2     float64 `json:"no2"`
	O3      float64 `json:"o3"`
	SO2     float64 `json:"so2"`
	PM25    float64 `json:"pm2_5"`
	PM10    float64 `json:"pm10"`
	USEPA   int     `json:"us-epa-index"`
	GBDefra int     `json:"gb-defra-index"`
}

// Current is the "now" reading.
type Current struct {
	LastUpdated string      `json:"last_updated"`
	TempC       float64     `json:"temp_c"`
	TempF       float64     `json:"temp_f"`
	IsDay       int         `json:"is_day"`
	Condition   Condition   `json:"condition"`
	WindKPH     float64     `json:"wind_kph"`
	WindDegree  float64     `json:"wind_degree"`
	WindDir     string      `json:"wind_dir"`
	PressureMB  float64     `json:"pressure_mb"`
	PrecipMM    float64     `json:"precip_mm"`
	Humidity    int         `json:"humidity"`
	Cloud       int         `json:"cloud"`
	FeelsLikeC  float64     `json:"feelslike_c"`
	VisKM       float64     `json:"vis_km"`
	UV          float64     `json:"uv"`
	AirQuality  *AirQuality `json:"air_quality,omitempty"`
}

// Day aggregates a forecast day.
type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	MaxWindKPH        float64   `json:"maxwind_kph"`
	TotalPrecipMM     float64   `json:"totalprecip_mm"`
	AvgHumidity       float64   `json:"avghumidity"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	Condition         Condition `json:"condition"`
	UV                float64   `json:"uv"`
}

// Astro carries sunrise and sunset times as "06:12 AM" strings.
type Astro struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Hour is a single hourly forecast slot.
type Hour struct {
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	IsDay        int       `json:"is_day"`
	Condition    Condition `json:"condition"`
	WindKPH      float64   `json:"wind_kph"`
	Humidity     int       `json:"humidity"`
	ChanceOfRain int       `json:"chance_of_rain"`
}

// ForecastDay is one entry of forecast.forecastday.
type ForecastDay struct {
	Date  string `json:"date"`
	Day   Day    `json:"day"`
	Astro Astro  `json:"astro"`
	Hour  []Hour `json:"hour"`
}

// Alert is a provider weather alert.
type Alert struct {
	Headline  string `json:"headline"`
	Severity  string `json:"severity"`
	Event     string `json:"event"`
	Desc      string `json:"desc"`
	Effective string `json:"effective"`
	Expires   string `json:"expires"`
}

// Forecast is the payload of forecast.json.
type Forecast struct {
	Location Place   `json:"location"`
	Current  Current `json:"current"`
	Forecast struct {
		Days []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
	Alerts struct {
		Alert []Alert `json:"alert"`
	} `json:"alerts"`
}

// CurrentWeather is the payload of current.json.
type CurrentWeather struct {
	Location Place   `json:"location"`
	Current  Current `json:"current"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
