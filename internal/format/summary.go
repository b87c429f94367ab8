package format

import (
	"fmt"
	"slices"
	"strings"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
)

// NoSignificantWeather is the summary rendered when nothing was detected.
const NoSignificantWeather = "No significant weather expected."

const alertGlyph = "🚨"

var eventAbbr = map[domain.EventType]string{
	domain.EventRain:               "Rn",
	domain.EventSnow:               "Snw",
	domain.EventSleet:              "Slt",
	domain.EventFreezingRain:       "FzRn",
	domain.EventWind:               "Wnd",
	domain.EventHail:               "Hl",
	domain.EventThunderstorm:       "ThSt",
	domain.EventSmoke:              "Smk",
	domain.EventFog:                "Fg",
	domain.EventDenseFog:           "DFg",
	domain.EventPatchyFog:          "PFg",
	domain.EventTornado:            "TOR",
	domain.EventHurricane:          "HUR",
	domain.EventBlizzard:           "BLZ",
	domain.EventIceStorm:           "ISt",
	domain.EventSevereThunderstorm: "SThSt",
	domain.EventHighWindWarning:    "HiWW",
	domain.EventFloodWarning:       "FldWng",
}

var shortLabels = map[string]string{
	"This Afternoon": "Aft",
	"Today":          "Tdy",
	"Tonight":        "Tngt",
	"Overnight":      "ON",
	"Monday":         "Mon",
	"Tuesday":        "Tue",
	"Wednesday":      "Wed",
	"Thursday":       "Thu",
	"Friday":         "Fri",
	"Saturday":       "Sat",
	"Sunday":         "Sun",
}

// DayName maps a period name onto the calendar day it belongs to.
func DayName(period string) string {
	switch period {
	case "Today", "Tonight", "This Afternoon", "Overnight":
		return "Today"
	}
	return strings.TrimSuffix(period, " Night")
}

// ShortLabel abbreviates a period or day name.
func ShortLabel(name string) string {
	if s, ok := shortLabels[name]; ok {
		return s
	}
	r := []rune(name)
	if len(r) > 3 {
		return string(r[:3])
	}
	return name
}

// Summary renders one line per calendar day, "<Day>:<events>,<temps>,<wind>".
// When both halves of a day report the same event, the higher probability wins.
func Summary(periods []domain.ForecastPeriod) string {
	var lines []string
	for _, day := range domain.GroupByDay(periods) {
		if line := summarizeDay(day); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return NoSignificantWeather
	}
	return strings.Join(lines, "\n")
}

func summarizeDay(day []domain.ForecastPeriod) string {
	var (
		events []domain.WeatherEvent
		temps  []string
		wind   string
	)
	for _, p := range day {
		for _, ev := range domain.DetectEvents(p) {
			events = mergeEvent(events, ev)
		}
		if t := domain.Temperature(p); t != "" && !slices.Contains(temps, t) {
			temps = append(temps, t)
		}
		if wind == "" {
			wind = domain.Wind(p)
		}
	}

	parts := make([]string, 0, len(events)+len(temps)+1)
	for _, ev := range events {
		parts = append(parts, summaryEvent(ev))
	}
	parts = append(parts, temps...)
	if wind != "" {
		parts = append(parts, wind)
	}
	if len(parts) == 0 {
		return ""
	}
	return ShortLabel(DayName(day[0].Name)) + ":" + strings.Join(parts, ",")
}

// mergeEvent adds ev, or raises the probability of an existing event of
// the same type.
func mergeEvent(events []domain.WeatherEvent, ev domain.WeatherEvent) []domain.WeatherEvent {
	for i := range events {
		if events[i].Type == ev.Type {
			if ev.Probability > events[i].Probability {
				events[i] = ev
			}
			return events
		}
	}
	return append(events, ev)
}

func summaryEvent(ev domain.WeatherEvent) string {
	name, ok := eventAbbr[ev.Type]
	if !ok {
		name = string(ev.Type)
	}
	if ev.Alert() {
		name = alertGlyph + name
	}
	return fmt.Sprintf("%s(%d%%)", name, ev.Probability)
}
