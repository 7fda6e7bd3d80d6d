//go:build darwin

package stats

import "golang.org/x/sys/unix"

// PeakRSSMB returns the process resident-set high-water mark in whole
// megabytes. Darwin reports ru_maxrss in bytes. Returns 0 if the query
// fails.
func PeakRSSMB() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return ru.Maxrss / (1024 * 1024)
}
