package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// eventRule binds an event type to the phrases that trigger it.
type eventRule struct {
	event    EventType
	keywords []string
	patterns []*regexp.Regexp
}

func newEventRule(event EventType, keywords ...string) eventRule {
	r := eventRule{event: event, keywords: keywords}
	for _, kw := range keywords {
		r.patterns = append(r.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)))
	}
	return r
}

// eventRules is evaluated in order; detected events come out in this order.
var eventRules = []eventRule{
	newEventRule(EventRain, "rain", "showers", "precipitation", "drizzle", "sprinkles"),
	newEventRule(EventSnow, "snow", "blizzard", "flurries", "snowfall"),
	newEventRule(EventSleet, "sleet"),
	newEventRule(EventFreezingRain, "freezing rain", "ice", "icy"),
	newEventRule(EventWind, "windy", "gusts", "high wind", "breezy"),
	newEventRule(EventHail, "hail"),
	newEventRule(EventThunderstorm, "thunderstorm", "thunderstorms", "t-storm", "tstorms"),
	newEventRule(EventSmoke, "smoke", "smoky", "wildfire smoke", "fire smoke", "smoke from fires",
		"smoke conditions", "smoke warning", "areas of smoke", "widespread haze"),
	newEventRule(EventFog, "fog", "foggy", "mist"),
	newEventRule(EventDenseFog, "dense fog", "thick fog", "heavy fog"),
	newEventRule(EventPatchyFog, "patchy fog"),
	newEventRule(EventTornado, "tornado"),
	newEventRule(EventHurricane, "hurricane", "tropical storm"),
	newEventRule(EventBlizzard, "blizzard"),
	newEventRule(EventIceStorm, "ice storm"),
	newEventRule(EventSevereThunderstorm, "severe thunderstorm", "severe t-storm", "severe tstorm"),
	newEventRule(EventHighWindWarning, "high wind warning"),
	newEventRule(EventFloodWarning, "flood warning", "flash flood warning"),
}

const (
	// WindThresholdMPH is the lowest speed reported as a wind event.
	WindThresholdMPH = 15

	percentWindow = 100
)

var (
	percentPattern = regexp.MustCompile(`(\d+)\s*(?:%|percent)`)
	numberPattern  = regexp.MustCompile(`\d+`)

	narrativeWindPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+) to (\d+) mph`),
		regexp.MustCompile(`(\d+) mph`),
		regexp.MustCompile(`gusts (?:up to|as high as|to) (\d+) mph`),
	}
)

// DetectEvents scans a period's narrative for weather events and assigns
// each a probability and severity. Events with a zero probability are
// dropped.
func DetectEvents(p ForecastPeriod) []WeatherEvent {
	text := strings.ToLower(p.DetailedForecast)

	var events []WeatherEvent
	for _, rule := range eventRules {
		keyword, ok := rule.match(text)
		if !ok {
			continue
		}
		if rule.event == EventWind && !HasSignificantWind(p) {
			continue
		}
		prob := inferProbability(rule, p, text)
		if prob <= 0 {
			continue
		}
		events = append(events, WeatherEvent{
			Type:        rule.event,
			Probability: prob,
			Severity:    ClassifySeverity(rule.event, prob),
			Keyword:     keyword,
		})
	}
	return events
}

func (r eventRule) match(text string) (string, bool) {
	for i, re := range r.patterns {
		if re.MatchString(text) {
			return r.keywords[i], true
		}
	}
	return "", false
}

// HasSignificantWind reports whether the structured wind fields or the
// narrative mention a speed at or above WindThresholdMPH.
func HasSignificantWind(p ForecastPeriod) bool {
	for _, field := range []string{p.WindSpeed, p.WindGust} {
		for _, n := range numberPattern.FindAllString(field, -1) {
			if v, err := strconv.Atoi(n); err == nil && v >= WindThresholdMPH {
				return true
			}
		}
	}

	text := strings.ToLower(p.DetailedForecast)
	for _, re := range narrativeWindPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, n := range m[1:] {
				if v, err := strconv.Atoi(n); err == nil && v >= WindThresholdMPH {
					return true
				}
			}
		}
	}
	return false
}

func inferProbability(rule eventRule, p ForecastPeriod, text string) int {
	if rule.event == EventRain && p.ProbabilityOfPrecipitation != nil {
		return *p.ProbabilityOfPrecipitation
	}
	if v, ok := nearestPercentage(rule, text); ok {
		return v
	}
	return heuristicProbability(rule.event, text)
}

// nearestPercentage binds an explicit percentage to the event by proximity:
// among all percentages whose surrounding window mentions one of the event's
// keywords, the one closest to such a keyword wins.
func nearestPercentage(rule eventRule, text string) (int, bool) {
	best, bestDist := 0, -1
	for _, m := range percentPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		value, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || value > 100 {
			continue
		}

		lo := max(start-percentWindow, 0)
		hi := min(end+percentWindow, len(text))
		window := text[lo:hi]
		if rule.event != EventRain && strings.Contains(window, "precipitation") {
			continue
		}

		for _, re := range rule.patterns {
			for _, kw := range re.FindAllStringIndex(window, -1) {
				d := gap(lo+kw[0], lo+kw[1], start, end)
				if bestDist < 0 || d < bestDist {
					best, bestDist = value, d
				}
			}
		}
	}
	return best, bestDist >= 0
}

// gap is the number of bytes between two half-open ranges, zero if they overlap.
func gap(aStart, aEnd, bStart, bEnd int) int {
	switch {
	case aEnd <= bStart:
		return bStart - aEnd
	case bEnd <= aStart:
		return aStart - bEnd
	default:
		return 0
	}
}

func containsAny(text string, phrases ...string) bool {
	for _, s := range phrases {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// heuristicProbability maps forecaster wording onto a probability when the
// narrative states none.
func heuristicProbability(event EventType, text string) int {
	switch event {
	case EventRain:
		switch {
		case strings.Contains(text, "likely"):
			return 70
		case strings.Contains(text, "scattered"):
			return 40
		case strings.Contains(text, "isolated"):
			return 20
		case strings.Contains(text, "chance"):
			return 30
		case containsAny(text, "drizzle", "sprinkles"):
			return 25
		}
		return 50
	case EventSnow:
		switch {
		case strings.Contains(text, "blizzard"):
			return 90
		case containsAny(text, "likely", "heavy snow"):
			return 70
		case strings.Contains(text, "flurries"):
			return 30
		case strings.Contains(text, "chance"):
			return 30
		}
		return 50
	case EventSleet, EventFreezingRain, EventHail:
		switch {
		case strings.Contains(text, "likely"):
			return 60
		case strings.Contains(text, "chance"):
			return 30
		}
		return 40
	case EventWind:
		switch {
		case containsAny(text, "high wind", "gusts"):
			return 80
		case strings.Contains(text, "windy"):
			return 60
		case strings.Contains(text, "breezy"):
			return 40
		}
		return 30
	case EventThunderstorm:
		switch {
		case strings.Contains(text, "severe"):
			return 80
		case strings.Contains(text, "likely"):
			return 60
		case strings.Contains(text, "chance"):
			return 30
		}
		return 50
	case EventFog:
		switch {
		case containsAny(text, "dense fog", "thick fog", "heavy fog"):
			return 90
		case strings.Contains(text, "patchy fog"):
			return 60
		case containsAny(text, "fog", "foggy"):
			return 70
		case strings.Contains(text, "mist"):
			return 30
		}
		return 50
	case EventSmoke:
		switch {
		case containsAny(text, "heavy smoke", "thick smoke", "dense smoke"):
			return 90
		case containsAny(text, "wildfire smoke", "fire smoke"):
			return 75
		case containsAny(text, "smoke", "smoky"):
			return 65
		}
		return 50
	case EventPatchyFog:
		return 60
	case EventDenseFog, EventTornado, EventHurricane, EventBlizzard, EventIceStorm,
		EventSevereThunderstorm, EventHighWindWarning, EventFloodWarning:
		return 90
	}
	return 50
}
