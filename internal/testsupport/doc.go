// Package testsupport holds test doubles shared across cdidc packages: an
// in-memory disc handle, a recording browser launcher, and config fixtures.
package testsupport
