package testsupport

import (
	"errors"
	"sync"
)

// Identifiers of a real 12-track disc, used as canned fake output.
const (
	SampleMusicBrainzID = "lwHl8fGzJyLXQR33ug60E8jhf4k-"
	SampleFreeDBID      = "a40b5b0c"
	SampleSubmissionURL = "https://musicbrainz.org/cdtoc/attach?id=lwHl8fGzJyLXQR33ug60E8jhf4k-&tracks=12&toc=1+12+267300+150+17288+36028+57145+83023+103298+126023+145420+160233+187455+208510+235260"
)

// FakeDisc is an in-memory disc handle. Set ReadErr to simulate an unreadable
// drive. It records the device passed to ReadSparse and counts Close calls.
type FakeDisc struct {
	MusicBrainzID string
	FreeDB        string
	URL           string
	ReadErr       error
	First, Last   int
	SectorCount   int

	mu         sync.Mutex
	readDevice string
	reads      int
	closes     int
	idCalls    int
}

// NewFakeDisc returns a fake disc that reads successfully with sample IDs.
func NewFakeDisc() *FakeDisc {
	return &FakeDisc{
		MusicBrainzID: SampleMusicBrainzID,
		FreeDB:        SampleFreeDBID,
		URL:           SampleSubmissionURL,
		First:         1,
		Last:          12,
		SectorCount:   267300,
	}
}

// NewUnreadableDisc returns a fake disc whose read fails with message.
func NewUnreadableDisc(message string) *FakeDisc {
	d := NewFakeDisc()
	d.ReadErr = errors.New(message)
	return d
}

func (d *FakeDisc) ReadSparse(device string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.readDevice = device
	d.reads++
	return d.ReadErr
}

func (d *FakeDisc) ID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.idCalls++
	return d.MusicBrainzID
}

func (d *FakeDisc) FreeDBID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.idCalls++
	return d.FreeDB
}

func (d *FakeDisc) SubmissionURL() string { return d.URL }

func (d *FakeDisc) FirstTrack() int { return d.First }

func (d *FakeDisc) LastTrack() int { return d.Last }

func (d *FakeDisc) Sectors() int { return d.SectorCount }

func (d *FakeDisc) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closes++
	return nil
}

// ReadDevice returns the device passed to the last ReadSparse call.
func (d *FakeDisc) ReadDevice() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readDevice
}

// Reads returns how many times ReadSparse was called.
func (d *FakeDisc) Reads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reads
}

// Closes returns how many times Close was called.
func (d *FakeDisc) Closes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closes
}

// IDCalls returns how many identifier getters were called.
func (d *FakeDisc) IDCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.idCalls
}
