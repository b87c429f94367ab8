package domain

import (
	"regexp"
	"strings"
)

var detailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)with a high (?:near|around) -?\d+`),
	regexp.MustCompile(`(?i)with a low (?:around|near) -?\d+`),
	regexp.MustCompile(`(?i)a high (?:near|around) -?\d+`),
	regexp.MustCompile(`(?i)a low (?:around|near) -?\d+`),
	regexp.MustCompile(`(?i)high (?:near|around) -?\d+`),
	regexp.MustCompile(`(?i)low (?:around|near) -?\d+`),
	windDirFirst,
	windFromThe,
	windAround,
	windBecoming,
	regexp.MustCompile(`(?i),? ?with gusts as high as \d+ mph`),
	regexp.MustCompile(`(?i)Chance of precipitation is \d+%`),
}

var whitespace = regexp.MustCompile(`\s+`)

// StripDetails removes the temperature, wind and precipitation-chance
// phrases that the extractors already report, leaving the descriptive part
// of a narrative.
func StripDetails(text string) string {
	for _, re := range detailPatterns {
		text = re.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
	text = strings.ReplaceAll(text, " ,", ",")
	text = strings.ReplaceAll(text, " .", ".")
	return strings.Trim(text, " ,.")
}

// FirstSentence returns the text up to its first period.
func FirstSentence(text string) string {
	if i := strings.Index(text, "."); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}
