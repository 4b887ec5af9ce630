//go:build !linux

package disc

func driveStatus(string) (DriveStatus, error) {
	return DriveStatusNoInfo, ErrUnsupported
}
