// Package logging configures the slog logger constream uses for its own
// diagnostics (configuration loading, file watching). Diagnostics go to
// stderr so stdout carries only decorated console output.
package logging
