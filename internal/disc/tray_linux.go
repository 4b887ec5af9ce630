//go:build linux

package disc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ioctlCDROMDriveStatus is the Linux ioctl number for CDROM_DRIVE_STATUS.
const ioctlCDROMDriveStatus = 0x5326

func driveStatus(devicePath string) (DriveStatus, error) {
	fd, err := unix.Open(devicePath, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return DriveStatusNoInfo, fmt.Errorf("open %s: %w", devicePath, err)
	}
	defer unix.Close(fd) //nolint:errcheck

	status, err := unix.IoctlRetInt(fd, ioctlCDROMDriveStatus)
	if err != nil {
		return DriveStatusNoInfo, fmt.Errorf("ioctl CDROM_DRIVE_STATUS on %s: %w", devicePath, err)
	}
	return DriveStatus(status), nil
}
