//go:build !linux && !darwin

package stats

// PeakRSSMB returns 0 on platforms without a getrusage peak-RSS query.
func PeakRSSMB() int64 {
	return 0
}
