package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/message"

	"cdidc/internal/config"
	"cdidc/internal/identify"
	"cdidc/internal/logging"
)

type options struct {
	device      string
	cddb        bool
	musicBrainz bool
	submit      bool
	browser     string
	brief       bool
	version     bool
	help        bool
	configPath  string
	wait        time.Duration
}

// selection applies the default policy: asking for neither identifier
// prints both.
func (o options) selection() (musicBrainz, cddb bool) {
	return o.musicBrainz || !o.cddb, o.cddb || !o.musicBrainz
}

func newRootCommand(env Env, printer *message.Printer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           programName + " [OPTIONS]",
		Short:         "Calculate MusicBrainz or CDDB IDs of a compact disc",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.version {
				printVersion(env.Stdout)
				return nil
			}
			return runIdentify(cmd.Context(), cmd.Flags(), opts, env, printer)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&opts.device, "device", "d", "", "Optical disc drive to use")
	flags.BoolVarP(&opts.cddb, "cddb", "c", false, "Print CDDB ID of CD")
	flags.BoolVarP(&opts.musicBrainz, "musicbrainz", "m", false, "Print MusicBrainz Disc ID of CD")
	flags.BoolVarP(&opts.submit, "submit", "s", false, "Submit Disc ID to MusicBrainz using the default browser")
	flags.StringVarP(&opts.browser, "browser", "w", "", "Use BROWSER instead of the system default (implies -s)")
	flags.BoolVarP(&opts.brief, "brief", "b", false, "Format the output more briefly")
	flags.BoolVarP(&opts.version, "version", "v", false, "Print version information and exit")
	flags.BoolVarP(&opts.help, "help", "h", false, "Print this help message and exit")
	flags.StringVar(&opts.configPath, "config", "", configFlagUsage())
	flags.DurationVar(&opts.wait, "wait", 0, "Wait up to DURATION for the drive to report a disc")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		printUsage(env.Stdout, printer, env.DefaultDevice())
	})

	return cmd
}

func runIdentify(ctx context.Context, flags *pflag.FlagSet, opts options, env Env, printer *message.Printer) error {
	if opts.wait < 0 {
		return &usageError{err: fmt.Errorf("invalid argument %q for \"--wait\" flag: must not be negative", opts.wait)}
	}

	cfg, cfgPath, cfgExists, err := config.Load(strings.TrimSpace(opts.configPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg, flags, opts)

	logger, closeLog, err := logging.NewFromConfig(cfg, env.Stderr)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = closeLog() }()
	logger = logging.NewComponentLogger(logger, "cli")
	logger.Debug("configuration loaded",
		logging.String("path", cfgPath),
		logging.Bool("exists", cfgExists),
	)
	if env.LibraryVersion != nil {
		logger.Debug("disc identification library", logging.String("version", env.LibraryVersion()))
	}

	device := cfg.Disc.Device
	if device == "" {
		device = env.DefaultDevice()
	}

	timeout := opts.wait
	if !flags.Changed("wait") {
		timeout = time.Duration(cfg.Disc.WaitSeconds) * time.Second
	}
	if timeout > 0 {
		if err := waitForDrive(ctx, env, logger, device, timeout); err != nil {
			return err
		}
	}

	musicBrainz, cddb := opts.selection()
	req := identify.Request{
		Device:      device,
		MusicBrainz: musicBrainz,
		CDDB:        cddb,
		Submit:      opts.submit || flags.Changed("browser"),
		Browser:     cfg.Submission.Browser,
		Brief:       cfg.Output.Brief,
	}

	launcher := env.NewLauncher(programName, env.Stdout, env.Stderr, printer, logger)
	svc := identify.NewService(env.OpenDisc, launcher, env.Stdout, logger)
	if err := svc.Run(ctx, req); err != nil {
		var readErr *identify.ReadError
		if errors.As(err, &readErr) {
			logDriveStatus(logger, env, device)
		}
		return err
	}
	return nil
}

func configFlagUsage() string {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return "Configuration file path"
	}
	return fmt.Sprintf("Configuration file path (default %s)", path)
}

// applyFlags lets explicitly set flags override configuration values.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts options) {
	if flags.Changed("device") {
		cfg.Disc.Device = opts.device
	}
	if flags.Changed("browser") {
		cfg.Submission.Browser = opts.browser
	}
	if flags.Changed("brief") {
		cfg.Output.Brief = opts.brief
	}
}

// waitForDrive blocks until the drive reports a disc. Only cancellation is
// fatal; any other failure is logged and the read goes ahead so the library
// reports its own error.
func waitForDrive(ctx context.Context, env Env, logger *slog.Logger, device string, timeout time.Duration) error {
	logger.Debug("waiting for disc",
		logging.String(logging.FieldDevice, device),
		logging.Duration("timeout", timeout),
	)
	status, err := env.WaitForDrive(ctx, device, timeout)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logging.WarnWithContext(logger, "drive not ready", "drive_wait_failed",
			logging.String(logging.FieldDevice, device),
			logging.String("status", status.String()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "insert an audio CD and close the tray"),
			logging.String(logging.FieldImpact, "reading disc anyway"),
		)
		return nil
	}
	logger.Debug("drive ready", logging.String("status", status.String()))
	return nil
}

func logDriveStatus(logger *slog.Logger, env Env, device string) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	status, err := env.DriveStatus(device)
	if err != nil {
		logger.Debug("drive status unavailable",
			logging.String(logging.FieldDevice, device),
			logging.Error(err),
		)
		return
	}
	logger.Debug("drive status after failed read",
		logging.String(logging.FieldDevice, device),
		logging.String("status", status.String()),
	)
}
