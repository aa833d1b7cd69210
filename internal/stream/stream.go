package stream

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Aman-CERP/constream/internal/errors"
	"github.com/Aman-CERP/constream/internal/severity"
)

// DefaultPostfix resets the console color to white.
const DefaultPostfix = "\x1b[37m"

// flusher is implemented by sinks that buffer internally, like *bufio.Writer.
type flusher interface {
	Flush() error
}

// Stream is one independently configured console channel.
type Stream struct {
	prefix    string
	postfix   string
	minLevel  severity.Level
	sink      io.Writer
	threshold *severity.Threshold
	now       func() time.Time

	buf bytes.Buffer
}

// Option configures a Stream.
type Option func(*Stream)

// WithSink sets the writer decorated output goes to. Default: os.Stdout.
func WithSink(w io.Writer) Option {
	return func(s *Stream) {
		s.sink = w
	}
}

// WithPostfix sets the string written once after each emitted flush.
func WithPostfix(postfix string) Option {
	return func(s *Stream) {
		s.postfix = postfix
	}
}

// WithThreshold sets the threshold the stream is gated by.
// Default: severity.Default().
func WithThreshold(t *severity.Threshold) Option {
	return func(s *Stream) {
		s.threshold = t
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Stream) {
		s.now = now
	}
}

// New creates a stream that decorates every line with prefix and emits
// only while its threshold is at least minLevel.
func New(prefix string, minLevel severity.Level, opts ...Option) *Stream {
	s := &Stream{
		prefix:   prefix,
		postfix:  DefaultPostfix,
		minLevel: minLevel,
		sink:     os.Stdout,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.threshold == nil {
		s.threshold = severity.Default()
	}
	if s.sink == nil {
		s.sink = io.Discard
	}

	return s
}

// Write buffers p. It never flushes and never fails.
func (s *Stream) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// WriteString buffers str.
func (s *Stream) WriteString(str string) (int, error) {
	return s.buf.WriteString(str)
}

// Print buffers the operands in fmt.Print style.
func (s *Stream) Print(a ...any) {
	_, _ = fmt.Fprint(&s.buf, a...)
}

// Printf buffers formatted text.
func (s *Stream) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(&s.buf, format, a...)
}

// Println buffers the operands followed by a newline, then flushes.
func (s *Stream) Println(a ...any) error {
	_, _ = fmt.Fprintln(&s.buf, a...)
	return s.Flush()
}

// Logf buffers formatted text, terminates the line and flushes.
func (s *Stream) Logf(format string, a ...any) error {
	s.Printf(format, a...)
	s.buf.WriteByte('\n')
	return s.Flush()
}

// Flush emits the buffered text if the threshold allows it and clears the
// buffer in every case. Sink failures are returned and not retried.
func (s *Stream) Flush() error {
	defer s.buf.Reset()

	if !s.threshold.Allows(s.minLevel) {
		return nil
	}

	out := Format(s.now(), s.prefix, s.postfix, s.buf.Bytes())
	if _, err := s.sink.Write(out); err != nil {
		return errors.SinkError("write to console failed", err)
	}

	if f, ok := s.sink.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.New(errors.ErrCodeSinkFlush, "flush of console failed", err)
		}
	}

	return nil
}

// Buffered returns the number of bytes waiting for the next flush.
func (s *Stream) Buffered() int {
	return s.buf.Len()
}

// Enabled reports whether a flush right now would emit.
func (s *Stream) Enabled() bool {
	return s.threshold.Allows(s.minLevel)
}

// SetThreshold changes the threshold shared by every stream using it.
func (s *Stream) SetThreshold(level severity.Level) {
	s.threshold.Set(level)
}

// Threshold returns the threshold this stream is gated by.
func (s *Stream) Threshold() *severity.Threshold {
	return s.threshold
}

// Prefix returns the per-line decoration.
func (s *Stream) Prefix() string {
	return s.prefix
}

// Postfix returns the string written after each emitted flush.
func (s *Stream) Postfix() string {
	return s.postfix
}

// MinLevel returns the minimum threshold required for output.
func (s *Stream) MinLevel() severity.Level {
	return s.minLevel
}
