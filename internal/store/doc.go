// Package store provides file-based persistence for tally's counters.
//
// A CounterFileStore owns the ordered collection of counters and writes the
// whole collection to one file on every Save, through a temp file that is
// renamed over the target. The file holds one "name|value" record per line.
// Loading is lenient: malformed records are logged and skipped, and files in
// the older two-lines-per-counter layout are detected and read.
//
// With a passphrase configured the record document is sealed with
// scrypt + ChaCha20-Poly1305 inside a small versioned JSON envelope.
package store
