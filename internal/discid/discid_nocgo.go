//go:build !cgo

package discid

import "runtime"

// Disc is a placeholder so callers compile without cgo. New never returns one.
type Disc struct{}

// New reports that libdiscid is unavailable in this build.
func New() (*Disc, error) {
	return nil, ErrUnavailable
}

// ReadSparse always fails with ErrUnavailable.
func (d *Disc) ReadSparse(string) error { return ErrUnavailable }

// ID returns an empty MusicBrainz Disc ID.
func (d *Disc) ID() string { return "" }

// FreeDBID returns an empty FreeDB/CDDB disc ID.
func (d *Disc) FreeDBID() string { return "" }

// SubmissionURL returns an empty submission URL.
func (d *Disc) SubmissionURL() string { return "" }

// FirstTrack returns 0.
func (d *Disc) FirstTrack() int { return 0 }

// LastTrack returns 0.
func (d *Disc) LastTrack() int { return 0 }

// Sectors returns 0.
func (d *Disc) Sectors() int { return 0 }

// Close is a no-op; there is no handle to free.
func (d *Disc) Close() error { return nil }

// DefaultDevice mirrors libdiscid's compiled-in defaults.
func DefaultDevice() string {
	switch runtime.GOOS {
	case "darwin":
		return "1"
	case "windows":
		return "D:"
	case "freebsd":
		return "/dev/cd0"
	default:
		return "/dev/cdrom"
	}
}

// Version reports the missing library.
func Version() string {
	return "libdiscid unavailable"
}
