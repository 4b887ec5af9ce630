package browser

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"

	"golang.org/x/text/message"

	"cdidc/internal/i18n"
	"cdidc/internal/logging"
)

// Launcher starts browsers for submission URLs.
type Launcher struct {
	program string
	stdout  io.Writer
	stderr  io.Writer
	printer *message.Printer
	logger  *slog.Logger
	start   func(*exec.Cmd) error
}

// NewLauncher returns a launcher that reports failures on stdout/stderr,
// prefixing diagnostics with program.
func NewLauncher(program string, stdout, stderr io.Writer, printer *message.Printer, logger *slog.Logger) *Launcher {
	return &Launcher{
		program: program,
		stdout:  stdout,
		stderr:  stderr,
		printer: printer,
		logger:  logging.NewComponentLogger(logger, "browser"),
		start:   (*exec.Cmd).Start,
	}
}

// Launch starts browser with url as its only argument and returns at once.
// Every start failure (missing executable, permission, bad path) is one
// outcome: a diagnostic on stderr plus the URL on stdout.
func (l *Launcher) Launch(browser, url string) {
	// Nil Stdin, Stdout, and Stderr attach the child to the null device.
	cmd := exec.Command(browser, url)

	if err := l.start(cmd); err != nil {
		l.logger.Debug("browser start failed", logging.String("browser", browser), logging.Error(err))
		fmt.Fprint(l.stderr, l.printer.Sprintf(i18n.MsgBrowserFailed, l.program, browser, startCause(err)))
		fmt.Fprint(l.stdout, l.printer.Sprintf(i18n.MsgSubmissionURL, url))
		return
	}

	if cmd.Process != nil {
		l.logger.Debug("browser started", logging.String("browser", browser), logging.Int("pid", cmd.Process.Pid))
		_ = cmd.Process.Release()
	}
}

// startCause strips the exec wrapper, which repeats the program name, and
// leaves the underlying OS cause.
func startCause(err error) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) && execErr.Err != nil {
		return execErr.Err
	}
	return err
}
