package disc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnsupported is returned by CheckDriveStatus on platforms without the
// CDROM_DRIVE_STATUS ioctl.
var ErrUnsupported = errors.New("drive status not supported on this platform")

// DriveStatus represents the result of a CDROM_DRIVE_STATUS ioctl call.
type DriveStatus int

const (
	DriveStatusNoInfo   DriveStatus = 0
	DriveStatusNoDisc   DriveStatus = 1
	DriveStatusTrayOpen DriveStatus = 2
	DriveStatusNotReady DriveStatus = 3
	DriveStatusDiscOK   DriveStatus = 4
)

// String returns a human-readable label for the drive status.
func (s DriveStatus) String() string {
	switch s {
	case DriveStatusNoInfo:
		return "no_info"
	case DriveStatusNoDisc:
		return "no_disc"
	case DriveStatusTrayOpen:
		return "tray_open"
	case DriveStatusNotReady:
		return "not_ready"
	case DriveStatusDiscOK:
		return "disc_ok"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

var (
	probeDriveStatus = CheckDriveStatus
	pollInterval     = time.Second
)

// CheckDriveStatus queries the drive state. Returns an error if the device
// cannot be opened or the platform cannot report drive status.
func CheckDriveStatus(devicePath string) (DriveStatus, error) {
	devicePath = strings.TrimSpace(devicePath)
	if devicePath == "" {
		return DriveStatusNoInfo, fmt.Errorf("empty device path")
	}
	return driveStatus(devicePath)
}

// WaitForReady polls the drive at one-second intervals until it reports
// DriveStatusDiscOK, the timeout elapses, or the context is cancelled. The
// last observed status is returned in every case.
func WaitForReady(ctx context.Context, devicePath string, timeout time.Duration) (DriveStatus, error) {
	if timeout <= 0 {
		return probeDriveStatus(devicePath)
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var lastStatus DriveStatus
	for {
		status, err := probeDriveStatus(devicePath)
		if err != nil {
			return status, err
		}
		lastStatus = status
		if status == DriveStatusDiscOK {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return lastStatus, ctx.Err()
		case <-deadline.C:
			return lastStatus, fmt.Errorf("drive %s not ready after %s (last status: %s)", devicePath, timeout, lastStatus)
		case <-time.After(pollInterval):
		}
	}
}
