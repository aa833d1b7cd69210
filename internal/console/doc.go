// Package console wires the named constream channels: the leveled debug,
// info and error streams plus one unleveled stream per ANSI color.
//
// All streams of a Set share one severity threshold. The package-level
// accessors use a default Set that is built on first use, exactly once,
// from the configuration found in the working directory, so they are safe
// to call from package initializers and from several goroutines.
//
//	console.Info().Println("these are some")
//	console.SetThreshold(severity.Error)
//	console.Error().Println("fancy output streams.\nwith a nice\nlinebreak.")
package console
