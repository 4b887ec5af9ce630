// Package discid is a cgo wrapper for [libdiscid], which reads the table of
// contents of an audio CD and computes its MusicBrainz and FreeDB/CDDB
// identifiers.
//
// Building with cgo requires libdiscid and its headers, for example:
//
//	sudo apt install libdiscid-dev
//
// Without cgo the package still compiles, but [New] returns
// [ErrUnavailable] so the CLI can fail like any other read error.
//
// [libdiscid]: https://musicbrainz.org/doc/libdiscid
package discid

import "errors"

// ErrUnavailable is returned when the binary was built without libdiscid.
var ErrUnavailable = errors.New("libdiscid support not compiled in (rebuild with CGO_ENABLED=1)")

// ErrClosed is returned when a Disc is used after Close.
var ErrClosed = errors.New("disc handle already released")

// ErrAlloc is returned when libdiscid cannot allocate a handle.
var ErrAlloc = errors.New("could not allocate disc handle")

// ReadError carries the message libdiscid reported for a failed read.
type ReadError struct {
	Device  string
	Message string
}

func (e *ReadError) Error() string {
	return e.Message
}
