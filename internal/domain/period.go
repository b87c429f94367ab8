package domain

// ForecastPeriod is one named time window of a forecast ("Today", "Monday Night").
// Optional structured fields are left empty (or nil) when the source did not
// supply them; extractors then fall back to the narrative.
type ForecastPeriod struct {
	Name             string `json:"name"`
	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
	IsDaytime        bool   `json:"is_daytime"`
	DetailedForecast string `json:"detailed_forecast"`
	ShortForecast    string `json:"short_forecast,omitempty"`

	Temperature     *int   `json:"temperature,omitempty"`
	TemperatureUnit string `json:"temperature_unit,omitempty"`
	WindSpeed       string `json:"wind_speed,omitempty"`
	WindDirection   string `json:"wind_direction,omitempty"`
	WindGust        string `json:"wind_gust,omitempty"`

	// ProbabilityOfPrecipitation overrides any inferred rain probability.
	ProbabilityOfPrecipitation *int `json:"probability_of_precipitation,omitempty"`
}

// EventType is a member of the closed weather-event vocabulary.
type EventType string

const (
	EventRain               EventType = "rain"
	EventSnow               EventType = "snow"
	EventSleet              EventType = "sleet"
	EventFreezingRain       EventType = "freezing rain"
	EventWind               EventType = "wind"
	EventHail               EventType = "hail"
	EventThunderstorm       EventType = "thunderstorm"
	EventSmoke              EventType = "smoke"
	EventFog                EventType = "fog"
	EventDenseFog           EventType = "dense fog"
	EventPatchyFog          EventType = "patchy fog"
	EventTornado            EventType = "tornado"
	EventHurricane          EventType = "hurricane"
	EventBlizzard           EventType = "blizzard"
	EventIceStorm           EventType = "ice storm"
	EventSevereThunderstorm EventType = "severe thunderstorm"
	EventHighWindWarning    EventType = "high wind warning"
	EventFloodWarning       EventType = "flood warning"
)

// Severity is the tier derived from an event's type and probability.
type Severity string

const (
	SeverityLow     Severity = "low"
	SeverityMedium  Severity = "medium"
	SeverityHigh    Severity = "high"
	SeverityExtreme Severity = "extreme"
)

// WeatherEvent is one condition detected within a period.
type WeatherEvent struct {
	Type        EventType `json:"type"`
	Probability int       `json:"probability"`
	Severity    Severity  `json:"severity"`
	Keyword     string    `json:"keyword"`
}

// Alert reports whether the event is rendered with the warning glyph.
// Smoke is included regardless of probability.
func (e WeatherEvent) Alert() bool {
	switch e.Type {
	case EventBlizzard, EventIceStorm, EventTornado, EventHurricane,
		EventSevereThunderstorm, EventHighWindWarning, EventFloodWarning,
		EventDenseFog, EventSmoke:
		return true
	}
	return false
}

// ClassifySeverity maps a type and probability onto a severity tier.
func ClassifySeverity(t EventType, probability int) Severity {
	switch {
	case probability >= 90:
		return SeverityExtreme
	case t == EventTornado, t == EventHurricane, t == EventBlizzard, t == EventIceStorm:
		return SeverityExtreme
	case probability >= 70:
		return SeverityHigh
	case t == EventSevereThunderstorm, t == EventHighWindWarning, t == EventFloodWarning:
		return SeverityHigh
	case probability >= 40:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
