// Package counter applies counter mutations and persists the collection in a
// single call, so UI code never mutates without saving.
//
// Every Add, Increment and Decrement is followed by a whole-collection save to
// the configured path. A save failure is returned to the caller together with
// the updated view; the store keeps the change in memory and Flush retries it.
package counter
