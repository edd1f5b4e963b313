package weather

// Level is a named band with its display colour.
type Level struct {
	Name  string
	Color string
}

// UVLevel classifies a UV index.
func UVLevel(uv float64) Level {
	switch {
	case uv <= 2:
		return Level{Name: "Low", Color: "#10B981"}
	case uv <= 5:
		return Level{Name: "Moderate", Color: "#F59E0B"}
	case uv <= 7:
		return Level{Name: "High", Color: "#F97316"}
	case uv <= 10:
		return Level{Name: "Very High", Color: "#EF4444"}
	default:
		return Level{Name: "Extreme", Color: "#8B5CF6"}
	}
}

// AQILevel classifies a PM2.5 concentration.
func AQILevel(pm25 float64) Level {
	switch {
	case pm25 <= 12:
		return Level{Name: "Good", Color: "#10B981"}
	case pm25 <= 35:
		return Level{Name: "Moderate", Color: "#F59E0B"}
	case pm25 <= 55:
		return Level{Name: "Unhealthy for Sensitive", Color: "#F97316"}
	case pm25 <= 150:
		return Level{Name: "Unhealthy", Color: "#EF4444"}
	case pm25 <= 250:
		return Level{Name: "Very Unhealthy", Color: "#8B5CF6"}
	default:
		return Level{Name: "Hazardous", Color: "#7C2D12"}
	}
}

// Glyph is a terminal stand-in for a condition icon.
type Glyph struct {
	Symbol string
	Color  string
}

var (
	glyphSun     = Glyph{Symbol: "☀", Color: "#FFD700"}
	glyphMoon    = Glyph{Symbol: "☾", Color: "#E2E8F0"}
	glyphPartly  = Glyph{Symbol: "⛅", Color: "#94A3B8"}
	glyphCloud   = Glyph{Symbol: "☁", Color: "#64748B"}
	glyphFog     = Glyph{Symbol: "≡", Color: "#9CA3AF"}
	glyphDrizzle = Glyph{Symbol: "⛆", Color: "#60A5FA"}
	glyphRain    = Glyph{Symbol: "☂", Color: "#3B82F6"}
	glyphSnow    = Glyph{Symbol: "❄", Color: "#E0E7FF"}
	glyphThunder = Glyph{Symbol: "⚡", Color: "#8B5CF6"}
)

var conditionGlyphs = buildConditionGlyphs()

func buildConditionGlyphs() map[int]Glyph {
	groups := []struct {
		glyph Glyph
		codes []int
	}{
		{glyphPartly, []int{1003}},
		{glyphCloud, []int{1006, 1009}},
		{glyphFog, []int{1135, 1147}},
		{glyphDrizzle, []int{1063, 1150, 1153, 1168, 1171}},
		{glyphRain, []int{1180, 1183, 1186, 1189, 1192, 1195, 1198, 1201}},
		{glyphSnow, []int{1066, 1210, 1213, 1216, 1219, 1222, 1225, 1237, 1249, 1252, 1255, 1258, 1261, 1264}},
		{glyphThunder, []int{1087, 1273, 1276, 1279, 1282}},
	}
	out := make(map[int]Glyph)
	for _, g := range groups {
		for _, code := range g.codes {
			out[code] = g.glyph
		}
	}
	return out
}

// ConditionGlyph picks the glyph for a provider condition code. Clear skies and
// unknown codes fall back to sun or moon.
func ConditionGlyph(code int, isDay bool) Glyph {
	if g, ok := conditionGlyphs[code]; ok {
		return g
	}
	if isDay {
		return glyphSun
	}
	return glyphMoon
}
