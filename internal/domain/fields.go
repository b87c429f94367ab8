package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var directionAbbr = map[string]string{
	"north":           "N",
	"north northeast": "NNE",
	"northeast":       "NE",
	"east northeast":  "ENE",
	"east":            "E",
	"east southeast":  "ESE",
	"southeast":       "SE",
	"south southeast": "SSE",
	"south":           "S",
	"south southwest": "SSW",
	"southwest":       "SW",
	"west southwest":  "WSW",
	"west":            "W",
	"west northwest":  "WNW",
	"northwest":       "NW",
	"north northwest": "NNW",
	"variable":        "VAR",
}

// Longest alternatives first so "north northwest" is not read as "north".
const directionAlternation = `north northeast|east northeast|east southeast|south southeast|` +
	`south southwest|west southwest|west northwest|north northwest|` +
	`northeast|southeast|southwest|northwest|north|south|east|west`

const speedAlternation = `\d+ to \d+|\d+`

var (
	highPattern = regexp.MustCompile(`(?i)\bhigh (?:near|around|of) (-?\d+)`)
	lowPattern  = regexp.MustCompile(`(?i)\blow (?:around|near|of) (-?\d+)`)

	windDirFirst  = regexp.MustCompile(`(?i)\b(` + directionAlternation + `) wind (` + speedAlternation + `) mph(?:, with gusts as high as (\d+) mph)?`)
	windAround    = regexp.MustCompile(`(?i)\b(` + directionAlternation + `) wind around (\d+) mph`)
	windFromThe   = regexp.MustCompile(`(?i)\bwind (` + speedAlternation + `) mph from the (` + directionAlternation + `)\b`)
	windBecoming  = regexp.MustCompile(`(?i)\bbecoming (` + directionAlternation + `) (` + speedAlternation + `) mph`)
	gustPattern   = regexp.MustCompile(`(?i)gusts (?:up to|as high as|to) (\d+) mph`)
	mphSuffix     = regexp.MustCompile(`(?i)\s*mph\s*$`)
	hyphenOrSpace = regexp.MustCompile(`[\s-]+`)
)

// AbbreviateDirection maps a compass direction (word or abbreviation) onto
// its short form. Unknown values fall back to their first two letters.
func AbbreviateDirection(dir string) string {
	key := strings.ToLower(strings.TrimSpace(hyphenOrSpace.ReplaceAllString(dir, " ")))
	if key == "" {
		return ""
	}
	if abbr, ok := directionAbbr[key]; ok {
		return abbr
	}
	upper := strings.ToUpper(key)
	for _, abbr := range directionAbbr {
		if upper == abbr {
			return abbr
		}
	}
	if len(upper) > 2 {
		return upper[:2]
	}
	return upper
}

// Temperature renders "H:<n>°" for daytime periods and "L:<n>°" for night
// periods. The narrative is consulted when the structured value is absent.
// An empty string means no temperature could be found.
func Temperature(p ForecastPeriod) string {
	if p.Temperature != nil {
		if p.IsDaytime {
			return fmt.Sprintf("H:%d°", *p.Temperature)
		}
		return fmt.Sprintf("L:%d°", *p.Temperature)
	}

	first, second := highPattern, lowPattern
	firstTag, secondTag := "H", "L"
	if !p.IsDaytime {
		first, second = second, first
		firstTag, secondTag = secondTag, firstTag
	}
	if m := first.FindStringSubmatch(p.DetailedForecast); m != nil {
		return firstTag + ":" + m[1] + "°"
	}
	if m := second.FindStringSubmatch(p.DetailedForecast); m != nil {
		return secondTag + ":" + m[1] + "°"
	}
	return ""
}

// Wind renders "<dir><speed>mph" with an optional " (G:<gust>mph)" suffix.
// It needs both a speed and a direction, from the structured fields or the
// narrative, and returns an empty string otherwise.
func Wind(p ForecastPeriod) string {
	if p.WindSpeed != "" && p.WindDirection != "" {
		return formatWind(p.WindDirection, p.WindSpeed, p.WindGust)
	}

	text := p.DetailedForecast
	gust := ""
	if m := gustPattern.FindStringSubmatch(text); m != nil {
		gust = m[1]
	}
	if m := windDirFirst.FindStringSubmatch(text); m != nil {
		if m[3] != "" {
			gust = m[3]
		}
		return formatWind(m[1], m[2], gust)
	}
	if m := windAround.FindStringSubmatch(text); m != nil {
		return formatWind(m[1], m[2], gust)
	}
	if m := windFromThe.FindStringSubmatch(text); m != nil {
		return formatWind(m[2], m[1], gust)
	}
	if m := windBecoming.FindStringSubmatch(text); m != nil {
		return formatWind(m[1], m[2], gust)
	}
	return ""
}

func formatWind(dir, speed, gust string) string {
	abbr := AbbreviateDirection(dir)
	speed = compactSpeed(speed)
	if abbr == "" || speed == "" {
		return ""
	}
	s := abbr + speed + "mph"
	if g := compactSpeed(gust); g != "" {
		s += " (G:" + g + "mph)"
	}
	return s
}

// compactSpeed turns "10 to 15 mph" into "10-15".
func compactSpeed(speed string) string {
	speed = mphSuffix.ReplaceAllString(strings.TrimSpace(speed), "")
	return strings.ReplaceAll(speed, " to ", "-")
}
