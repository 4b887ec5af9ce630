// Package identify runs one disc identification: it acquires a disc handle,
// performs a sparse TOC read, prints the requested identifiers, hands the
// submission URL to a browser launcher, and releases the handle.
//
// The disc library and the launcher are injected as small interfaces so the
// whole flow can be exercised without an optical drive. The handle is always
// released exactly once, on success and on every failure past acquisition.
package identify
