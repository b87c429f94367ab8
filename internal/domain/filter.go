package domain

// FilterPeriodsByDays keeps the periods of the first days+1 calendar days.
// A new day starts at every night-to-day transition, so irregular labels
// ("Thanksgiving Day") group with the night that follows them. A nil days
// keeps everything.
func FilterPeriodsByDays(periods []ForecastPeriod, days *int) []ForecastPeriod {
	if days == nil {
		return periods
	}
	target := max(*days, 0) + 1

	day := 0
	out := make([]ForecastPeriod, 0, len(periods))
	for i, p := range periods {
		if startsNewDay(periods, i) {
			day++
		}
		if day >= target {
			break
		}
		out = append(out, p)
	}
	return out
}

// startsNewDay reports whether periods[i] is a daytime period that follows
// a nighttime one.
func startsNewDay(periods []ForecastPeriod, i int) bool {
	return i > 0 && periods[i].IsDaytime && !periods[i-1].IsDaytime
}

// GroupByDay partitions periods into calendar days using the same
// night-to-day rule as FilterPeriodsByDays.
func GroupByDay(periods []ForecastPeriod) [][]ForecastPeriod {
	var groups [][]ForecastPeriod
	for i, p := range periods {
		if i == 0 || startsNewDay(periods, i) {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], p)
	}
	return groups
}
