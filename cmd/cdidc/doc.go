// Command cdidc prints the MusicBrainz Disc ID and the CDDB ID of the audio
// CD in an optical drive, and can open the MusicBrainz submission page for
// it in a browser.
//
// Usage:
//
//	cdidc [-d DEVICE] [-c] [-m] [-s] [-w BROWSER] [-b] [-v] [-h] [--config PATH] [--wait DURATION]
//
// Settings may also come from ~/.config/cdidc/config.toml or ./cdidc.toml;
// command-line flags always take precedence.
package main
