// Package command implements the slash-command layer shared by the chat
// clients: a static command registry, input parsing, prefix completion,
// translation of commands into natural-language messages for the backend,
// and a best-effort classifier that guesses which backend tool produced a
// reply so the UI can show a badge.
//
// Everything here is a pure function over strings. No I/O, no state beyond
// the registry, safe to call from any goroutine.
package command
