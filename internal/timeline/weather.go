package timeline

// WeatherKind is the synthetic sky condition for a day.
type WeatherKind string

const (
	Sunny  WeatherKind = "sunny"
	Cloudy WeatherKind = "cloudy"
	Rainy  WeatherKind = "rainy"
	Snowy  WeatherKind = "snowy"
	Windy  WeatherKind = "windy"
)

// Weather is one day's forecast.
type Weather struct {
	Kind  WeatherKind `json:"kind"`
	TempC int         `json:"temp_c"`
}

type climate struct {
	cycle  []WeatherKind
	lo, hi int
}

var defaultClimate = climate{cycle: []WeatherKind{Sunny}, lo: 20, hi: 30}

var climates = map[string]climate{
	"USA":       {cycle: []WeatherKind{Sunny, Cloudy, Sunny}, lo: 22, hi: 32},
	"France":    {cycle: []WeatherKind{Cloudy, Sunny, Rainy}, lo: 15, hi: 25},
	"Japan":     {cycle: []WeatherKind{Sunny, Cloudy, Rainy}, lo: 18, hi: 28},
	"Germany":   {cycle: []WeatherKind{Cloudy, Rainy, Sunny}, lo: 12, hi: 22},
	"Australia": {cycle: []WeatherKind{Sunny, Sunny, Windy}, lo: 24, hi: 35},
	"UAE":       {cycle: []WeatherKind{Sunny, Sunny, Sunny}, lo: 30, hi: 42},
	"Spain":     {cycle: []WeatherKind{Sunny, Sunny, Cloudy}, lo: 20, hi: 32},
	"Singapore": {cycle: []WeatherKind{Rainy, Cloudy, Sunny}, lo: 26, hi: 33},
	"UK":        {cycle: []WeatherKind{Rainy, Cloudy, Cloudy}, lo: 10, hi: 18},
	"Peru":      {cycle: []WeatherKind{Sunny, Cloudy, Sunny}, lo: 14, hi: 22},
	"China":     {cycle: []WeatherKind{Cloudy, Sunny, Rainy}, lo: 16, hi: 26},
	"Greece":    {cycle: []WeatherKind{Sunny, Sunny, Sunny}, lo: 22, hi: 34},
	"Egypt":     {cycle: []WeatherKind{Sunny, Sunny, Sunny}, lo: 28, hi: 40},
}

// TempHash maps a day offset onto 0..99. It is the only source of variation
// in the synthetic temperature: (offset * 37) mod 100.
func TempHash(offset int) int {
	h := (offset * 37) % 100
	if h < 0 {
		h += 100
	}
	return h
}

// WeatherFor returns the forecast for the zero-based dayOffset of a stay in
// country. The result depends only on its arguments, never on the calendar.
func WeatherFor(country string, dayOffset int) Weather {
	c, ok := climates[country]
	if !ok {
		c = defaultClimate
	}
	idx := dayOffset % len(c.cycle)
	if idx < 0 {
		idx += len(c.cycle)
	}
	// Integer form of round((hi-lo) * hash / 100) for non-negative values.
	span := c.hi - c.lo
	temp := c.lo + (span*TempHash(dayOffset)*2+100)/200
	return Weather{Kind: c.cycle[idx], TempC: temp}
}
