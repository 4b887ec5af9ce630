//go:build cgo

package discid

// #cgo LDFLAGS: -ldiscid
// #include <stdlib.h>
// #include <discid/discid.h>
import "C"

import (
	"unsafe"
)

// Disc owns a libdiscid handle. A Disc must be released with Close; Close is
// safe to call more than once and only the first call frees the handle.
//
// Identifier accessors return empty strings until ReadSparse has succeeded.
type Disc struct {
	handle *C.DiscId
	read   bool
}

// New allocates a libdiscid handle.
func New() (*Disc, error) {
	handle := C.discid_new()
	if handle == nil {
		return nil, ErrAlloc
	}
	return &Disc{handle: handle}, nil
}

// ReadSparse reads only the parts of the TOC needed to compute identifiers.
// An empty device selects libdiscid's platform default.
func (d *Disc) ReadSparse(device string) error {
	if d.handle == nil {
		return ErrClosed
	}

	var cdev *C.char
	if device != "" {
		cdev = C.CString(device)
		defer C.free(unsafe.Pointer(cdev))
	}

	if C.discid_read_sparse(d.handle, cdev, 0) == 0 {
		return &ReadError{Device: device, Message: C.GoString(C.discid_get_error_msg(d.handle))}
	}
	d.read = true
	return nil
}

// ID returns the MusicBrainz Disc ID.
func (d *Disc) ID() string {
	if !d.ready() {
		return ""
	}
	return C.GoString(C.discid_get_id(d.handle))
}

// FreeDBID returns the FreeDB/CDDB disc ID.
func (d *Disc) FreeDBID() string {
	if !d.ready() {
		return ""
	}
	return C.GoString(C.discid_get_freedb_id(d.handle))
}

// SubmissionURL returns the MusicBrainz URL for attaching this TOC to a release.
func (d *Disc) SubmissionURL() string {
	if !d.ready() {
		return ""
	}
	return C.GoString(C.discid_get_submission_url(d.handle))
}

// FirstTrack returns the number of the first track on the disc.
func (d *Disc) FirstTrack() int {
	if !d.ready() {
		return 0
	}
	return int(C.discid_get_first_track_num(d.handle))
}

// LastTrack returns the number of the last track on the disc.
func (d *Disc) LastTrack() int {
	if !d.ready() {
		return 0
	}
	return int(C.discid_get_last_track_num(d.handle))
}

// Sectors returns the disc length in sectors, lead-in included.
func (d *Disc) Sectors() int {
	if !d.ready() {
		return 0
	}
	return int(C.discid_get_sectors(d.handle))
}

// Close frees the libdiscid handle.
func (d *Disc) Close() error {
	if d.handle == nil {
		return nil
	}
	C.discid_free(d.handle)
	d.handle = nil
	d.read = false
	return nil
}

func (d *Disc) ready() bool {
	return d.handle != nil && d.read
}

// DefaultDevice returns libdiscid's default drive for this platform.
func DefaultDevice() string {
	return C.GoString(C.discid_get_default_device())
}

// Version returns the libdiscid version string, e.g. "libdiscid 0.6.4".
func Version() string {
	return C.GoString(C.discid_get_version_string())
}
