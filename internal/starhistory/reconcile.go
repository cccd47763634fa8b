package starhistory

// Reconcile corrects the tail of a truncated series against the repository's
// own reported star count. Only the final point is touched; the visible step
// up at the end is the intended signal that pagination was capped. The warn
// flag is true whenever the collection was truncated, whether or not the
// series changed.
func Reconcile(series Series, truncated bool, authoritativeTotal int) (Series, bool) {
	if !truncated {
		return series, false
	}
	if authoritativeTotal > 0 && len(series) > 0 {
		if last := series[len(series)-1].Stars; authoritativeTotal > last {
			series[len(series)-1].Stars = authoritativeTotal
		}
	}
	return series, true
}
