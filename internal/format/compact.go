package format

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CompactLimit caps the joined compact output.
const CompactLimit = 1500

// Compact renders one line per period:
//
//	<Period>: <events> (<details>) - <first sentence>
//
// Periods without events render "<Period>: <first sentence> (<details>)".
// A period mentioning smoke lists only its smoke events and the narrative
// "Smoke".
func Compact(periods []domain.ForecastPeriod) string {
	lines := make([]string, 0, len(periods))
	for _, p := range periods {
		lines = append(lines, compactLine(p))
	}
	return truncateRunes(strings.Join(lines, "\n"), CompactLimit)
}

func compactLine(p domain.ForecastPeriod) string {
	name := strings.TrimSpace(p.Name)
	details := compactDetails(p)
	sentence := domain.FirstSentence(domain.StripDetails(p.DetailedForecast))

	events := domain.DetectEvents(p)
	if len(events) == 0 {
		if sentence == "" {
			return name + ":" + details
		}
		return name + ": " + sentence + details
	}

	var smoke []string
	labels := make([]string, 0, len(events))
	for _, ev := range events {
		label := compactEvent(ev)
		if ev.Type == domain.EventSmoke && ev.Alert() {
			smoke = append(smoke, label)
		}
		labels = append(labels, label)
	}
	if len(smoke) > 0 {
		return name + ": " + strings.Join(smoke, ", ") + details + " - Smoke"
	}

	line := name + ": " + strings.Join(labels, ", ") + details
	if sentence != "" {
		line += " - " + sentence
	}
	return line
}

func compactDetails(p domain.ForecastPeriod) string {
	var details []string
	if t := domain.Temperature(p); t != "" {
		details = append(details, strings.TrimSuffix(t, "°"))
	}
	if w := domain.Wind(p); w != "" {
		details = append(details, w)
	}
	if len(details) == 0 {
		return ""
	}
	return " (" + strings.Join(details, ", ") + ")"
}

func compactEvent(ev domain.WeatherEvent) string {
	// a Caser carries state, so one is built per call
	name := cases.Title(language.English).String(string(ev.Type))
	if ev.Alert() {
		name = alertGlyph + name
	}
	return fmt.Sprintf("%s(%d%%)", name, ev.Probability)
}
