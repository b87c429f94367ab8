// Package domain models weather forecasts destined for satellite messengers.
//
// # Periods
//
// A forecast is an ordered sequence of [ForecastPeriod] values, each a named
// window such as "Today", "Tonight", "Monday" or "Monday Night". Periods come
// from two sources:
//
//	Text:  "<PeriodName>: <narrative>" lines, see [ParseForecastText].
//	       Holiday labels ("Thanksgiving Day") are accepted as opaque names.
//	NWS:   the api.weather.gov gridpoint forecast document, see [ParseNWSForecast].
//	       Structured temperature, wind and precipitation fields are kept.
//
// Both sources feed the same detector and extractors, so equivalent period
// data renders identically regardless of origin.
//
// # Calendar days
//
// Days are found structurally: a daytime period that follows a nighttime
// period starts a new day. Names are never consulted, which lets irregular
// labels pair with the night that follows them. See [FilterPeriodsByDays].
//
// # Events
//
// [DetectEvents] scans the lower-cased narrative against a fixed keyword
// table of 18 event types. Probability is resolved in order:
//
//  1. rain with a structured probability of precipitation uses it verbatim
//  2. an explicit "NN%" / "NN percent" closest to one of the event's keywords
//     within a ±100 character window; windows mentioning "precipitation" are
//     ignored for non-rain events
//  3. a per-event wording heuristic ("likely" → 70 for rain, "patchy fog" → 60)
//
// Wind events additionally require a speed of at least 15 mph.
//
// Severity tiers:
//
//	extreme: probability ≥ 90, or tornado, hurricane, blizzard, ice storm
//	high:    probability ≥ 70, or severe thunderstorm, high wind warning, flood warning
//	medium:  probability ≥ 40
//	low:     otherwise
package domain
