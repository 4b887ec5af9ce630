package disc

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDriveStatusString(t *testing.T) {
	tests := []struct {
		status DriveStatus
		want   string
	}{
		{DriveStatusNoInfo, "no_info"},
		{DriveStatusNoDisc, "no_disc"},
		{DriveStatusTrayOpen, "tray_open"},
		{DriveStatusNotReady, "not_ready"},
		{DriveStatusDiscOK, "disc_ok"},
		{DriveStatus(99), "unknown(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.status.String()
			if got != tt.want {
				t.Errorf("DriveStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
			}
		})
	}
}

func TestCheckDriveStatusEmptyPath(t *testing.T) {
	_, err := CheckDriveStatus("   ")
	if err == nil {
		t.Fatal("expected error for empty device path")
	}
}

func TestCheckDriveStatusInvalidPath(t *testing.T) {
	_, err := CheckDriveStatus("/dev/nonexistent_device_12345")
	if err == nil {
		t.Fatal("expected error for nonexistent device")
	}
}

func TestWaitForReadyCancelledContext(t *testing.T) {
	restore := SetProbeForTests(func(string) (DriveStatus, error) {
		return DriveStatusTrayOpen, nil
	}, time.Hour)
	defer restore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := WaitForReady(ctx, "/dev/sr0", time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if status != DriveStatusTrayOpen {
		t.Fatalf("expected last status tray_open, got %s", status)
	}
}

func TestWaitForReadyPollsUntilDiscOK(t *testing.T) {
	sequence := []DriveStatus{DriveStatusNoDisc, DriveStatusNotReady, DriveStatusDiscOK}
	var calls int
	restore := SetProbeForTests(func(device string) (DriveStatus, error) {
		if device != "/dev/sr0" {
			t.Errorf("unexpected device %q", device)
		}
		status := sequence[calls]
		calls++
		return status, nil
	}, time.Millisecond)
	defer restore()

	status, err := WaitForReady(context.Background(), "/dev/sr0", time.Minute)
	if err != nil {
		t.Fatalf("WaitForReady: %v", err)
	}
	if status != DriveStatusDiscOK {
		t.Fatalf("expected disc_ok, got %s", status)
	}
	if calls != len(sequence) {
		t.Fatalf("expected %d polls, got %d", len(sequence), calls)
	}
}

func TestWaitForReadyTimesOut(t *testing.T) {
	restore := SetProbeForTests(func(string) (DriveStatus, error) {
		return DriveStatusNotReady, nil
	}, time.Millisecond)
	defer restore()

	status, err := WaitForReady(context.Background(), "/dev/sr0", 20*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if status != DriveStatusNotReady {
		t.Fatalf("expected last status not_ready, got %s", status)
	}
}

func TestWaitForReadyPropagatesProbeError(t *testing.T) {
	probeErr := errors.New("open /dev/sr9: no such file or directory")
	restore := SetProbeForTests(func(string) (DriveStatus, error) {
		return DriveStatusNoInfo, probeErr
	}, time.Millisecond)
	defer restore()

	if _, err := WaitForReady(context.Background(), "/dev/sr9", time.Second); !errors.Is(err, probeErr) {
		t.Fatalf("expected probe error, got %v", err)
	}
}

func TestWaitForReadyWithoutTimeoutProbesOnce(t *testing.T) {
	var calls int
	restore := SetProbeForTests(func(string) (DriveStatus, error) {
		calls++
		return DriveStatusNoDisc, nil
	}, time.Millisecond)
	defer restore()

	status, err := WaitForReady(context.Background(), "/dev/sr0", 0)
	if err != nil {
		t.Fatalf("WaitForReady: %v", err)
	}
	if status != DriveStatusNoDisc || calls != 1 {
		t.Fatalf("expected one probe returning no_disc, got %s after %d calls", status, calls)
	}
}
