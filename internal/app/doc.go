// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, loads the counter store, and builds
// the counter service and logger, exposing them via Wire and App.
package app
