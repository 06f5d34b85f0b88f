// Package format provides the text formatting helpers shared by the CLI
// presenters: durations, grouped integers, progress bars and ETA estimates.
package format
