package identify

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cdidc/internal/logging"
)

// Output labels. They are stable text that scripts match on and are never
// translated.
const (
	LabelMusicBrainz = "Musicbrainz Disc ID: "
	LabelCDDB        = "CDDB ID: "
)

// Disc is the subset of the disc-identification library the flow needs.
type Disc interface {
	ReadSparse(device string) error
	ID() string
	FreeDBID() string
	SubmissionURL() string
	Close() error
}

// TrackLayout is implemented by handles that expose the TOC summary.
type TrackLayout interface {
	FirstTrack() int
	LastTrack() int
	Sectors() int
}

// Opener allocates a fresh disc handle.
type Opener func() (Disc, error)

// Launcher opens a URL in a browser without reporting back.
type Launcher interface {
	Launch(browser, url string)
}

// Request selects what a single run prints and whether it submits.
type Request struct {
	Device      string
	MusicBrainz bool
	CDDB        bool
	Submit      bool
	Browser     string
	Brief       bool
}

// Service performs identification runs against injected collaborators.
type Service struct {
	open     Opener
	launcher Launcher
	out      io.Writer
	logger   *slog.Logger
}

// NewService wires a Service. A nil logger discards logs.
func NewService(open Opener, launcher Launcher, out io.Writer, logger *slog.Logger) *Service {
	return &Service{
		open:     open,
		launcher: launcher,
		out:      out,
		logger:   logging.NewComponentLogger(logger, "identify"),
	}
}

// Run identifies the disc in req.Device. Identifiers are written in a fixed
// order: MusicBrainz, then the submission launch, then CDDB.
func (s *Service) Run(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	disc, err := s.open()
	if err != nil {
		return &ReadError{Device: req.Device, Err: err}
	}
	defer func() {
		if cerr := disc.Close(); cerr != nil {
			s.logger.Debug("release disc handle failed", logging.Error(cerr))
		}
	}()

	s.logger.Debug("reading disc",
		logging.String(logging.FieldDevice, req.Device),
		logging.Bool("musicbrainz", req.MusicBrainz),
		logging.Bool("cddb", req.CDDB),
		logging.Bool("submit", req.Submit),
	)

	if err := disc.ReadSparse(req.Device); err != nil {
		return &ReadError{Device: req.Device, Err: err}
	}
	s.logLayout(disc)

	if req.MusicBrainz {
		s.printID(LabelMusicBrainz, disc.ID(), req.Brief)
	}

	if req.Submit {
		url := disc.SubmissionURL()
		s.logger.Debug("launching browser",
			logging.String("browser", req.Browser),
			logging.String("url", url),
		)
		s.launcher.Launch(req.Browser, url)
	}

	if req.CDDB {
		s.printID(LabelCDDB, disc.FreeDBID(), req.Brief)
	}

	return nil
}

func (s *Service) printID(label, id string, brief bool) {
	if brief {
		fmt.Fprintln(s.out, id)
		return
	}
	fmt.Fprintf(s.out, "%s%s\n", label, id)
}

func (s *Service) logLayout(disc Disc) {
	layout, ok := disc.(TrackLayout)
	if !ok {
		return
	}
	s.logger.Debug("disc read",
		logging.Int("first_track", layout.FirstTrack()),
		logging.Int("last_track", layout.LastTrack()),
		logging.Int("sectors", layout.Sectors()),
	)
}
