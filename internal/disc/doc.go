// Package disc interfaces with physical optical drives.
//
// It reports drive state through the Linux CDROM_DRIVE_STATUS ioctl and can
// wait for a freshly inserted disc to spin up before libdiscid reads the
// table of contents. Identifier computation itself lives in libdiscid; this
// package only answers "is there a readable disc in the drive".
package disc
