// Package cli implements the cdidc command line: option parsing, the
// identifier selection policy, usage and version text, configuration
// precedence, and the mapping of failures onto process exit codes.
//
// Collaborators that touch hardware or the process table are injected
// through [Env] so the command can be exercised without a drive.
package cli
