// Package viz renders analysis results for the terminal: asciigraph plots of
// current transients and concentration profiles, lipgloss panels for
// regression summaries, and user-facing error messages.
package viz
