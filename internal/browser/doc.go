// Package browser opens the MusicBrainz submission URL in an external
// browser, fire-and-forget.
//
// The browser runs with its standard streams bound to the null device so its
// chatter never reaches the terminal. The process is released, not waited
// on. If it cannot be started, the launcher prints a diagnostic and the URL
// itself on the original streams so the user can open it by hand; the caller
// never learns the outcome.
package browser
