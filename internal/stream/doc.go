// Package stream implements the line-buffering console stream.
//
// A Stream accumulates text until it is flushed. On flush it checks the
// shared severity threshold; if the stream's minimum level passes, each
// buffered line is written to the sink decorated with a timestamp and the
// stream prefix:
//
//	[2016-03-04/05:06:07] (EE) fancy output streams.
//	                      (EE) with a nice
//	                      (EE) linebreak.
//
// followed once by the postfix (normally a color reset). Whether or not
// anything was written, the buffer is cleared.
//
// A Stream is not safe for concurrent writers. Use one stream per goroutine
// or serialize writes externally.
package stream
