// Package store persists voice notes, content artifacts, and the brand
// profile in a local SQLite database. The schema is embedded and created on
// first open; a version check guards against running newer binaries on old
// databases.
package store
