// Package logging builds the zerolog loggers used across contentview.
//
// Loggers are created from a Config (level, format, output) and carried through
// command execution on the context. Every command run gets a ULID trace id so
// the events of one invocation can be correlated in a shared log file.
//
// The interactive browser owns the terminal, so when no log file is configured
// its logger discards output instead of writing to stderr.
package logging
