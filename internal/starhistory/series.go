package starhistory

import "time"

type WindowMode int

const (
	// WindowFull spans the earliest to the latest bucket date.
	WindowFull WindowMode = iota
	// WindowTrailing5Y spans the five years ending today (UTC).
	WindowTrailing5Y
)

// Point là một điểm trên chuỗi tích luỹ: tổng số star tính đến hết ngày đó.
type Point struct {
	Date  time.Time `json:"date"`
	Stars int       `json:"stars"`
}

type Series []Point

// nowFunc is swapped out by tests to pin the trailing window.
var nowFunc = time.Now

// BuildSeries folds the day buckets into a cumulative series with exactly one
// point per calendar day of the window, inclusive on both ends. The running
// total is seeded with every event strictly before the window start, so the
// first point already reflects all earlier history instead of dropping to
// zero.
func BuildSeries(buckets map[time.Time]int, mode WindowMode) Series {
	start, end, ok := window(buckets, mode)
	if !ok {
		return nil
	}

	seed := 0
	for day, count := range buckets {
		if day.Before(start) {
			seed += count
		}
	}

	series := make(Series, 0, int(end.Sub(start).Hours()/24)+1)
	total := seed
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total += buckets[d]
		series = append(series, Point{Date: d, Stars: total})
	}
	return series
}

func window(buckets map[time.Time]int, mode WindowMode) (time.Time, time.Time, bool) {
	if mode == WindowTrailing5Y {
		end := DayOf(nowFunc())
		return end.AddDate(-5, 0, 0), end, true
	}

	if len(buckets) == 0 {
		return time.Time{}, time.Time{}, false
	}
	var start, end time.Time
	first := true
	for day := range buckets {
		if first {
			start, end = day, day
			first = false
			continue
		}
		if day.Before(start) {
			start = day
		}
		if day.After(end) {
			end = day
		}
	}
	return start, end, true
}
