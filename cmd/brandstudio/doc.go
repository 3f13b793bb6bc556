// Command brandstudio captures voice notes, generates posts, scripts, and
// newsletters from them, and manages a weekly posting calendar. Running it
// with no arguments starts the HTTP server and web UI; subcommands drive the
// same data directly from the terminal.
package main
