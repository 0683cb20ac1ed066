package analytics

import "time"

const dateLayout = "2006-01-02"

// DailySeries buckets samples into one point per calendar day in loc, starting at start's day.
// Days without samples are present with zero values; samples outside the span are dropped.
func DailySeries(start time.Time, days int, loc *time.Location, samples []Sample) []DailyPoint {
	if days <= 0 {
		return []DailyPoint{}
	}
	if loc == nil {
		loc = time.Local
	}

	first := StartOfDay(start.In(loc))
	points := make([]DailyPoint, days)
	index := make(map[string]int, days)

	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i).Format(dateLayout)
		points[i] = DailyPoint{Date: day}
		index[day] = i
	}

	for _, s := range samples {
		i, ok := index[s.At.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		points[i].Amount += s.Amount
		points[i].Count++
	}

	return points
}
