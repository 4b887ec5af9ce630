package disc

import "time"

// SetProbeForTests overrides the drive status probe and poll interval during
// tests. The returned function restores the previous values.
func SetProbeForTests(fn func(string) (DriveStatus, error), interval time.Duration) func() {
	previousProbe, previousInterval := probeDriveStatus, pollInterval
	probeDriveStatus = fn
	if interval > 0 {
		pollInterval = interval
	}
	return func() {
		probeDriveStatus = previousProbe
		pollInterval = previousInterval
	}
}
