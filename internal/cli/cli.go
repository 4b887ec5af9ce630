package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/message"

	"cdidc/internal/browser"
	"cdidc/internal/disc"
	"cdidc/internal/i18n"
	"cdidc/internal/identify"
)

// Process exit statuses.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 255
)

const programName = "cdidc"

// Version is stamped at build time with -ldflags "-X cdidc/internal/cli.Version=...".
var Version = "1.0.0"

// LauncherFactory builds the browser launcher used for submission.
type LauncherFactory func(program string, stdout, stderr io.Writer, printer *message.Printer, logger *slog.Logger) identify.Launcher

// Env carries the process environment and the collaborators the command
// needs. Zero-valued fields fall back to the real implementations, except
// OpenDisc and DefaultDevice which must be supplied by the binary.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	OpenDisc       identify.Opener
	DefaultDevice  func() string
	LibraryVersion func() string

	NewLauncher  LauncherFactory
	WaitForDrive func(ctx context.Context, device string, timeout time.Duration) (disc.DriveStatus, error)
	DriveStatus  func(device string) (disc.DriveStatus, error)
}

func (e Env) withDefaults() Env {
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.Getenv == nil {
		e.Getenv = os.Getenv
	}
	if e.OpenDisc == nil {
		e.OpenDisc = func() (identify.Disc, error) {
			return nil, errors.New("no disc identification library configured")
		}
	}
	if e.DefaultDevice == nil {
		e.DefaultDevice = func() string { return "" }
	}
	if e.NewLauncher == nil {
		e.NewLauncher = func(program string, stdout, stderr io.Writer, printer *message.Printer, logger *slog.Logger) identify.Launcher {
			return browser.NewLauncher(program, stdout, stderr, printer, logger)
		}
	}
	if e.WaitForDrive == nil {
		e.WaitForDrive = disc.WaitForReady
	}
	if e.DriveStatus == nil {
		e.DriveStatus = disc.CheckDriveStatus
	}
	return e
}

// Run executes the command with args (excluding the program name) and
// returns the process exit status.
func Run(ctx context.Context, args []string, env Env) int {
	env = env.withDefaults()
	printer := i18n.NewPrinter(i18n.TagFromEnv(env.Getenv))

	cmd := newRootCommand(env, printer)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var usageErr *usageError
	var readErr *identify.ReadError
	switch {
	case errors.As(err, &usageErr):
		reportError(env.Stderr, fmt.Sprintf("%s: %v", programName, usageErr.err))
		printUsage(env.Stdout, printer, env.DefaultDevice())
		return ExitUsage
	case errors.As(err, &readErr):
		reportError(env.Stderr, readErr.Error())
		return ExitFailure
	case errors.Is(err, context.Canceled):
		return ExitFailure
	default:
		reportError(env.Stderr, fmt.Sprintf("%s: %v", programName, err))
		return ExitFailure
	}
}
