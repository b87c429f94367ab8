package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	// A period line starts with one to four capitalized words and a colon.
	periodLinePattern = regexp.MustCompile(`^([A-Z][A-Za-z'.]*(?: [A-Z][A-Za-z'.]*){0,3}):\s*(.*)$`)

	// Known labels are also recognized mid-line, where scraped pages run
	// several periods together.
	inlineLabelPattern = regexp.MustCompile(`(?:This Afternoon|Tonight|Today|Overnight|(?:Mon|Tues|Wednes|Thurs|Fri|Satur|Sun)day(?: Night)?):`)
)

// ParseForecastText segments a "<PeriodName>: <narrative>" text blob into
// periods. Lines that do not start a period are ignored, so malformed input
// yields an empty slice rather than an error.
func ParseForecastText(text string) []ForecastPeriod {
	periods := make([]ForecastPeriod, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, chunk := range splitInlineLabels(line) {
			m := periodLinePattern.FindStringSubmatch(chunk)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(m[1])
			periods = append(periods, ForecastPeriod{
				Name:             name,
				IsDaytime:        isDaytimeName(name),
				DetailedForecast: strings.TrimSpace(m[2]),
			})
		}
	}
	return periods
}

// splitInlineLabels cuts a line at every known label that is not at the start.
func splitInlineLabels(line string) []string {
	locs := inlineLabelPattern.FindAllStringIndex(line, -1)
	var chunks []string
	start := 0
	for _, loc := range locs {
		if loc[0] == 0 || line[loc[0]-1] != ' ' {
			continue
		}
		chunks = append(chunks, strings.TrimSpace(line[start:loc[0]]))
		start = loc[0]
	}
	return append(chunks, strings.TrimSpace(line[start:]))
}

func isDaytimeName(name string) bool {
	switch {
	case name == "Tonight", name == "Overnight":
		return false
	case strings.HasSuffix(name, " Night"), name == "Night":
		return false
	}
	return true
}

type nwsForecast struct {
	Properties struct {
		Periods []nwsPeriod `json:"periods"`
	} `json:"properties"`
}

type nwsPeriod struct {
	Name             string  `json:"name"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	IsDaytime        bool    `json:"isDaytime"`
	Temperature      *int    `json:"temperature"`
	TemperatureUnit  string  `json:"temperatureUnit"`
	WindSpeed        string  `json:"windSpeed"`
	WindDirection    string  `json:"windDirection"`
	WindGust         *string `json:"windGust"`
	ShortForecast    string  `json:"shortForecast"`
	DetailedForecast string  `json:"detailedForecast"`
	PoP              *struct {
		Value *float64 `json:"value"`
	} `json:"probabilityOfPrecipitation"`
}

// ParseNWSForecast decodes a National Weather Service gridpoint forecast
// document into periods.
func ParseNWSForecast(data []byte) ([]ForecastPeriod, error) {
	var doc nwsForecast
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode nws forecast: %w", err)
	}

	periods := make([]ForecastPeriod, 0, len(doc.Properties.Periods))
	for _, p := range doc.Properties.Periods {
		fp := ForecastPeriod{
			Name:             strings.TrimSpace(p.Name),
			StartTime:        p.StartTime,
			EndTime:          p.EndTime,
			IsDaytime:        p.IsDaytime,
			DetailedForecast: p.DetailedForecast,
			ShortForecast:    p.ShortForecast,
			Temperature:      p.Temperature,
			TemperatureUnit:  p.TemperatureUnit,
			WindSpeed:        p.WindSpeed,
			WindDirection:    p.WindDirection,
		}
		if p.WindGust != nil {
			fp.WindGust = *p.WindGust
		}
		if p.PoP != nil && p.PoP.Value != nil {
			v := int(*p.PoP.Value + 0.5)
			fp.ProbabilityOfPrecipitation = &v
		}
		periods = append(periods, fp)
	}
	return periods, nil
}
