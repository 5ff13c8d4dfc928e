// Package commands defines the tally CLI and wires dependencies for subcommands.
//
// Commands
//
//   - list     Print every counter in creation order
//   - add      Create a counter from "name value" or "name|value"
//   - inc      Increment a counter by one
//   - dec      Decrement a counter by one
//   - show     Print a single counter
//
// # Implementation
//
// The root command reads configuration from the environment, applies flag
// overrides, loads the counters file and builds the counter service before any
// subcommand runs. Every mutating subcommand saves the whole collection.
package commands
