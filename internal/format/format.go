// Package format renders forecast periods into the summary, compact and
// full text representations sent to satellite messengers.
//
// Lengths are measured in runes, matching how messenger devices count
// characters.
package format

import (
	"strings"

	"github.com/couchcryptid/satcom-forecast/internal/domain"
)

// Mode selects a formatter.
type Mode string

const (
	ModeSummary Mode = "summary"
	ModeCompact Mode = "compact"
	ModeFull    Mode = "full"
)

// DefaultMode is used when a request names no mode or an unknown one.
const DefaultMode = ModeSummary

// ParseMode resolves a mode name. The boolean is false when the name is not
// recognized, in which case DefaultMode is returned.
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSummary, ModeCompact, ModeFull:
		return m, true
	case "":
		return DefaultMode, true
	}
	return DefaultMode, false
}

// Format filters periods to the first days+1 calendar days and renders them
// in the given mode.
func Format(periods []domain.ForecastPeriod, mode Mode, days *int) string {
	periods = domain.FilterPeriodsByDays(periods, days)
	switch mode {
	case ModeCompact:
		return Compact(periods)
	case ModeFull:
		return Full(periods)
	default:
		return Summary(periods)
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
