package starhistory

import "time"

// DayOf chuẩn hoá một thời điểm về 00:00:00 UTC của ngày đó.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// BucketByDay counts events per UTC calendar day. Pure; the map has no
// iteration order, callers sort keys before use.
func BucketByDay(events []StarEvent) map[time.Time]int {
	buckets := make(map[time.Time]int, len(events))
	for _, ev := range events {
		buckets[DayOf(ev.StarredAt)]++
	}
	return buckets
}
