package format

import (
	"regexp"
	"strings"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
)

const (
	// FullLimit is the window a long full rendering is cut back into.
	FullLimit = 2000
	// fullBoundarySlack is how far before FullLimit a sentence or line
	// boundary may sit and still be used as the cut point.
	fullBoundarySlack = 200
)

var (
	spaceRun    = regexp.MustCompile(` +`)
	sentenceGap = regexp.MustCompile(`\. +`)
)

// Full renders one line per period with the whole narrative, spacing
// normalized.
func Full(periods []domain.ForecastPeriod) string {
	lines := make([]string, 0, len(periods))
	for _, p := range periods {
		lines = append(lines, strings.TrimSpace(p.Name)+": "+normalizeSpacing(p.DetailedForecast))
	}
	return truncateFull(strings.Join(lines, "\n"))
}

func normalizeSpacing(text string) string {
	text = spaceRun.ReplaceAllString(text, " ")
	text = sentenceGap.ReplaceAllString(text, ". ")
	return strings.TrimSpace(text)
}

// truncateFull cuts text longer than FullLimit at the last sentence or line
// boundary in the final fullBoundarySlack runes of the window, or hard-cuts
// and appends "..." when there is none.
func truncateFull(text string) string {
	r := []rune(text)
	if len(r) <= FullLimit {
		return text
	}
	window := r[:FullLimit]
	bp := -1
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == '.' || window[i] == '\n' {
			bp = i
			break
		}
	}
	if bp > FullLimit-fullBoundarySlack {
		return strings.TrimSpace(string(window[:bp+1]))
	}
	return string(window) + "..."
}
