package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/message"

	"cdidc/internal/i18n"
)

const copyrightNotice = `Copyright © 2021 Riku Viitanen
License GPLv3+: GNU GPL version 3 or later <https://gnu.org/licenses/gpl.html>.
This is free software: you are free to change and redistribute it.
There is NO WARRANTY, to the extent permitted by law.`

func printUsage(w io.Writer, printer *message.Printer, defaultDevice string) {
	lines := []string{
		printer.Sprintf(i18n.MsgUsage, programName),
		printer.Sprintf(i18n.MsgSummary),
		printer.Sprintf(i18n.MsgSelectionDefault),
		"\n",
		printer.Sprintf(i18n.MsgOptDevice, defaultDevice),
		printer.Sprintf(i18n.MsgOptCDDB),
		printer.Sprintf(i18n.MsgOptMusicBrainz),
		printer.Sprintf(i18n.MsgOptSubmit),
		printer.Sprintf(i18n.MsgOptBrowser),
		printer.Sprintf(i18n.MsgOptBrief),
		printer.Sprintf(i18n.MsgOptVersion, Version),
		printer.Sprintf(i18n.MsgOptHelp),
	}
	for _, line := range lines {
		fmt.Fprint(w, line)
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", programName, Version)
	fmt.Fprintln(w, copyrightNotice)
}

// reportError writes a one-line diagnostic, in red when w is a terminal.
func reportError(w io.Writer, msg string) {
	if shouldColorize(w) {
		msg = text.FgRed.Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
