package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperature(t *testing.T) {
	tests := []struct {
		name   string
		period ForecastPeriod
		want   string
	}{
		{"structured day", ForecastPeriod{IsDaytime: true, Temperature: intPtr(50)}, "H:50°"},
		{"structured night", ForecastPeriod{IsDaytime: false, Temperature: intPtr(-4)}, "L:-4°"},
		{"narrative high", ForecastPeriod{IsDaytime: true, DetailedForecast: "Sunny, with a high near 55."}, "H:55°"},
		{"narrative low", ForecastPeriod{IsDaytime: false, DetailedForecast: "Clear, with a low around 33."}, "L:33°"},
		{"narrative of", ForecastPeriod{IsDaytime: true, DetailedForecast: "Highs with a high of 72."}, "H:72°"},
		{"night with only high", ForecastPeriod{IsDaytime: false, DetailedForecast: "Temperatures rising to a high near 40 by morning."}, "H:40°"},
		{"absent", ForecastPeriod{IsDaytime: true, DetailedForecast: "Sunny."}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Temperature(tt.period))
		})
	}
}

func TestWind(t *testing.T) {
	tests := []struct {
		name   string
		period ForecastPeriod
		want   string
	}{
		{"structured range", ForecastPeriod{WindSpeed: "10 to 15 mph", WindDirection: "NW"}, "NW10-15mph"},
		{"structured gust", ForecastPeriod{WindSpeed: "20 mph", WindDirection: "S", WindGust: "35 mph"}, "S20mph (G:35mph)"},
		{"structured variable", ForecastPeriod{WindSpeed: "5 mph", WindDirection: "Variable"}, "VAR5mph"},
		{"missing direction", ForecastPeriod{WindSpeed: "5 mph"}, ""},
		{"narrative around", ForecastPeriod{DetailedForecast: "Southeast wind around 10 mph."}, "SE10mph"},
		{"narrative range with gusts", ForecastPeriod{DetailedForecast: "North northwest wind 15 to 20 mph, with gusts as high as 30 mph."}, "NNW15-20mph (G:30mph)"},
		{"narrative from the", ForecastPeriod{DetailedForecast: "Wind 5 mph from the west."}, "W5mph"},
		{"narrative becoming", ForecastPeriod{DetailedForecast: "Calm wind becoming east 5 to 10 mph."}, "E5-10mph"},
		{"narrative absent", ForecastPeriod{DetailedForecast: "Calm wind."}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wind(tt.period))
		})
	}
}

func TestAbbreviateDirection(t *testing.T) {
	tests := map[string]string{
		"north":           "N",
		"North Northeast": "NNE",
		"south-southwest": "SSW",
		"variable":        "VAR",
		"NNW":             "NNW",
		"ene":             "ENE",
		"northerly":       "NO",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, AbbreviateDirection(in), in)
	}
}

func TestStripDetails(t *testing.T) {
	text := "A chance of showers. Mostly cloudy, with a high near 50. Southeast wind around 10 mph. Chance of precipitation is 40%."
	stripped := StripDetails(text)
	assert.Equal(t, "A chance of showers. Mostly cloudy", stripped)
	assert.Equal(t, "A chance of showers", FirstSentence(stripped))

	assert.Equal(t, "Clear", FirstSentence(StripDetails("Clear, with a low around 33. West wind 5 to 10 mph, with gusts as high as 20 mph.")))
	assert.Equal(t, "no period here", FirstSentence("no period here"))
}
