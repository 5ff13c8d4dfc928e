// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (counters, references, views), error kinds and
// contracts (interfaces) only.
package domain
