//go:build !linux && !darwin && !windows

package platform

import "time"

// CreationTime is unavailable on this platform.
func CreationTime(string) (time.Time, bool) {
	return time.Time{}, false
}
