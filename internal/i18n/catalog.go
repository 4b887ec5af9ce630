package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for user-facing text. The English text doubles as the key.
const (
	MsgUsage            = "Usage: %s [OPTIONS]\n"
	MsgSummary          = "Calculate MusicBrainz or CDDB IDs of a compact disc.\n"
	MsgSelectionDefault = "If neither type of ID is specified, both are printed.\n"
	MsgOptDevice        = "-d DEVICE   Optical disc drive to use. Defaults to %s\n"
	MsgOptCDDB          = "-c          Print CDDB ID of CD\n"
	MsgOptMusicBrainz   = "-m          Print MusicBrainz Disc ID of CD\n"
	MsgOptSubmit        = "-s          Submit Disc ID to MusicBrainz using the default browser\n"
	MsgOptBrowser       = "-w BROWSER  Use BROWSER instead of the system default (implies -s)\n"
	MsgOptBrief         = "-b          Format the output more briefly\n"
	MsgOptVersion       = "-v          Print version (%s) information and exit\n"
	MsgOptHelp          = "-h          Print this help message and exit\n"
	MsgBrowserFailed    = "%s: Failed to start %s: %s\n"
	MsgSubmissionURL    = "Submission URL: %s\n"
)

var supported = []language.Tag{language.English, language.Finnish}

var finnish = map[string]string{
	MsgUsage:            "Käyttö: %s [VALITSIMET]\n",
	MsgSummary:          "Laske CD-levyn MusicBrainz- tai CDDB-tunniste.\n",
	MsgSelectionDefault: "Jos kumpaakaan tunnistetyyppiä ei valita, molemmat tulostetaan.\n",
	MsgOptDevice:        "-d LAITE    Käytettävä optinen asema. Oletus on %s\n",
	MsgOptCDDB:          "-c          Tulosta levyn CDDB-tunniste\n",
	MsgOptMusicBrainz:   "-m          Tulosta levyn MusicBrainz-tunniste\n",
	MsgOptSubmit:        "-s          Lähetä tunniste MusicBrainziin oletusselaimella\n",
	MsgOptBrowser:       "-w SELAIN   Käytä SELAINta järjestelmän oletuksen sijaan (sisältää -s)\n",
	MsgOptBrief:         "-b          Tulosta lyhyessä muodossa\n",
	MsgOptVersion:       "-v          Tulosta versiotiedot (%s) ja lopeta\n",
	MsgOptHelp:          "-h          Tulosta tämä ohje ja lopeta\n",
	MsgBrowserFailed:    "%s: Ohjelman %s käynnistys epäonnistui: %s\n",
	MsgSubmissionURL:    "Lähetysosoite: %s\n",
}

var cat = mustBuildCatalog()

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range finnish {
		if err := b.SetString(language.Finnish, key, msg); err != nil {
			panic("i18n: invalid finnish message for " + key + ": " + err.Error())
		}
	}
	return b
}

// NewPrinter returns a printer for the best supported match of tag.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(cat))
}

// Match maps an arbitrary tag onto the closest supported language,
// defaulting to English.
func Match(tag language.Tag) language.Tag {
	matcher := language.NewMatcher(supported)
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return supported[index]
}
