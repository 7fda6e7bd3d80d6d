//go:build linux

package stats

import "golang.org/x/sys/unix"

// PeakRSSMB returns the process resident-set high-water mark in whole
// megabytes. Linux reports ru_maxrss in kilobytes. Returns 0 if the query
// fails.
func PeakRSSMB() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return ru.Maxrss / 1024
}
