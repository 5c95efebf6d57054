// Package library filters, sorts, and summarizes the song catalog for
// the browser panel. A Browser holds the full item list plus the active
// query, genre, source, and sort selections, and serves filtered views
// without mutating the underlying data.
package library
