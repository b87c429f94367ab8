// Package split partitions formatted forecast text into segments that fit a
// satellite messenger's per-message character limit.
//
// Text is packed greedily by unit: " | " separated entries when the text
// contains that separator, lines otherwise. Multi-segment output carries
// "(i/n) " markers, and because a marker can itself push a segment over the
// limit, numbering repeats until a full pass makes no further split.
package split

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// NumberingOverhead is reserved from the limit for a "(99/99) " marker.
	NumberingOverhead = 8
	// MinCustomLimit is the smallest custom limit honored.
	MinCustomLimit = NumberingOverhead + 10

	pipeSeparator = " | "
	lineSeparator = "\n"

	// Pulling part of an overflowing unit into the current segment is only
	// attempted below this utilization, with at least fillMinRoom runes
	// free, and only kept when it uses fillMinShare of the room.
	fillMaxUtilization = 0.85
	fillMinRoom        = 10
	fillMinShare       = 0.4
)

// Segment is one transmission-ready piece of a message.
type Segment struct {
	Index int
	Total int
	Body  string
}

// String renders the segment with its "(i/n) " marker when the message has
// more than one segment.
func (s Segment) String() string {
	if s.Total <= 1 {
		return s.Body
	}
	return numberPrefix(s.Index, s.Total) + s.Body
}

// Split partitions text for the given profile and renders each segment.
func Split(text string, p Profile) []string {
	segs := Segments(text, p.Limit())
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.String()
	}
	return out
}

// Segments partitions text so that every rendered segment is at most limit
// runes long. Empty text yields a single empty segment.
func Segments(text string, limit int) []Segment {
	limit = max(limit, MinCustomLimit)
	if text == "" {
		return []Segment{{Index: 1, Total: 1}}
	}
	if runeLen(text) <= limit {
		return []Segment{{Index: 1, Total: 1, Body: text}}
	}

	sep := lineSeparator
	if strings.Contains(text, pipeSeparator) {
		sep = pipeSeparator
	}

	bodies := number(pack(units(text, sep), sep, limit-NumberingOverhead), sep, limit)
	segs := make([]Segment, len(bodies))
	for i, b := range bodies {
		segs[i] = Segment{Index: i + 1, Total: len(bodies), Body: b}
	}
	return segs
}

func units(text, sep string) []string {
	var out []string
	for _, u := range strings.Split(text, sep) {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// pack accumulates units into segments of at most eff runes.
func pack(units []string, sep string, eff int) []string {
	var (
		segments []string
		cur      string
	)
	for _, u := range units {
		for u != "" {
			if cur == "" {
				if runeLen(u) <= eff {
					cur, u = u, ""
					continue
				}
				head, rest := ForceSplit(u, eff)
				segments = append(segments, head)
				u = rest
				continue
			}

			if runeLen(cur)+runeLen(sep)+runeLen(u) <= eff {
				cur += sep + u
				u = ""
				continue
			}

			room := eff - runeLen(cur) - runeLen(sep)
			if float64(runeLen(cur)) < fillMaxUtilization*float64(eff) && room >= fillMinRoom {
				if head, rest, ok := FillSpace(u, room); ok {
					cur += sep + head
					u = rest
				}
			}
			segments = append(segments, cur)
			cur = ""
		}
	}
	if cur != "" {
		segments = append(segments, cur)
	}
	return segments
}

// FillSpace takes the longest word prefix of line that fits in room runes.
// It reports false when nothing fits or the prefix would use less than 40%
// of the room.
func FillSpace(line string, room int) (string, string, bool) {
	words := strings.Fields(line)
	n, used := 0, 0
	for _, w := range words {
		next := used + runeLen(w)
		if n > 0 {
			next++
		}
		if next > room {
			break
		}
		used = next
		n++
	}
	if n == 0 || n == len(words) || float64(used) < fillMinShare*float64(room) {
		return "", "", false
	}
	return strings.Join(words[:n], " "), strings.Join(words[n:], " "), true
}

// ForceSplit cuts text at the last space at or before limit runes, or hard
// at limit when there is no such space.
func ForceSplit(text string, limit int) (string, string) {
	r := []rune(text)
	if limit <= 0 || len(r) <= limit {
		return text, ""
	}
	cut := lastIndexBefore(r, []rune(" "), limit)
	if cut <= 0 {
		cut = limit
	}
	return strings.TrimSpace(string(r[:cut])), strings.TrimSpace(string(r[cut:]))
}

// SplitLongLine force-splits text repeatedly until every piece fits limit.
func SplitLongLine(text string, limit int) []string {
	if limit <= 0 {
		return []string{text}
	}
	var parts []string
	for text != "" {
		head, rest := ForceSplit(text, limit)
		parts = append(parts, head)
		text = rest
	}
	return parts
}

// number re-splits segments until each fits limit with its "(i/n) " marker.
// The total grows as splits are discovered, so a pass that changes anything
// is followed by another until one changes nothing.
func number(segments []string, sep string, limit int) []string {
	for changed := true; changed; {
		changed = false
		if len(segments) == 1 && runeLen(segments[0]) <= limit {
			break
		}
		total := len(segments)
		for i := 0; i < len(segments); i++ {
			avail := max(limit-runeLen(numberPrefix(i+1, total)), 1)
			if runeLen(segments[i]) <= avail {
				continue
			}
			head, rest := cutAt(segments[i], sep, avail)
			segments = append(segments[:i+1], append([]string{rest}, segments[i+1:]...)...)
			segments[i] = head
			total++
			changed = true
		}
	}
	return segments
}

// cutAt splits s so the head is at most avail runes, preferring a unit
// separator, then a space, then a hard cut.
func cutAt(s, sep string, avail int) (string, string) {
	r := []rune(s)
	for _, boundary := range []string{sep, " "} {
		if i := lastIndexBefore(r, []rune(boundary), avail); i > 0 {
			return strings.TrimSpace(string(r[:i])), strings.TrimSpace(string(r[i+len([]rune(boundary)):]))
		}
	}
	return string(r[:avail]), strings.TrimSpace(string(r[avail:]))
}

// lastIndexBefore returns the last index i <= end at which sub occurs in r,
// or -1.
func lastIndexBefore(r, sub []rune, end int) int {
	for i := min(end, len(r)-len(sub)); i >= 0; i-- {
		if runesEqual(r[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func numberPrefix(i, total int) string {
	return fmt.Sprintf("(%d/%d) ", i, total)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
