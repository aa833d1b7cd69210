package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/Aman-CERP/constream/internal/severity"
	"github.com/Aman-CERP/constream/internal/stream"
)

// ColorMode controls whether prefixes carry ANSI color escapes.
type ColorMode string

const (
	// ColorAuto colors output when the sink is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways always colors output.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain tags without escapes.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses auto, always or never (case-insensitive).
// The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, "on", "true":
		return ColorAlways, nil
	case ColorNever, "off", "false":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: want auto, always or never", s)
	}
}

// Options configures a Set.
type Options struct {
	// Sink receives all output. Default: os.Stdout.
	Sink io.Writer
	// Threshold gates every stream of the set. Default: a new threshold
	// at severity.DefaultThreshold.
	Threshold *severity.Threshold
	// Color selects colored or plain prefixes. Default: ColorAuto.
	Color ColorMode
	// Clock overrides time.Now for timestamps.
	Clock func() time.Time
}

// Named pairs a stream with the name it is looked up by.
type Named struct {
	Name   string
	Stream *stream.Stream
}

// Set is a group of named streams sharing one threshold and sink.
type Set struct {
	Debug *stream.Stream
	Info  *stream.Stream
	Error *stream.Stream

	Red     *stream.Stream
	Green   *stream.Stream
	Yellow  *stream.Stream
	Blue    *stream.Stream
	Magenta *stream.Stream
	Cyan    *stream.Stream
	White   *stream.Stream

	threshold *severity.Threshold
	colored   bool
	ordered   []Named
}

// New builds a Set from opts.
func New(opts Options) *Set {
	if opts.Sink == nil {
		opts.Sink = os.Stdout
	}
	if opts.Threshold == nil {
		opts.Threshold = severity.New(severity.DefaultThreshold)
	}

	s := &Set{
		threshold: opts.Threshold,
		colored:   useColor(opts.Color, opts.Sink),
	}

	mk := func(name, color, tag string, min severity.Level) *stream.Stream {
		prefix, postfix := tag, ""
		if s.colored {
			prefix, postfix = color+tag, Reset
		}
		streamOpts := []stream.Option{
			stream.WithSink(opts.Sink),
			stream.WithThreshold(opts.Threshold),
			stream.WithPostfix(postfix),
		}
		if opts.Clock != nil {
			streamOpts = append(streamOpts, stream.WithClock(opts.Clock))
		}
		st := stream.New(prefix, min, streamOpts...)
		s.ordered = append(s.ordered, Named{Name: name, Stream: st})
		return st
	}

	s.Debug = mk("debug", ansiYellow, TagDebug, severity.Debug)
	s.Info = mk("info", ansiGreen, TagInfo, severity.Info)
	s.Error = mk("error", ansiRed, TagError, severity.Error)

	s.Red = mk("red", ansiRed, "", severity.Raw)
	s.Green = mk("green", ansiGreen, "", severity.Raw)
	s.Yellow = mk("yellow", ansiYellow, "", severity.Raw)
	s.Blue = mk("blue", ansiBlue, "", severity.Raw)
	s.Magenta = mk("magenta", ansiMagenta, "", severity.Raw)
	s.Cyan = mk("cyan", ansiCyan, "", severity.Raw)
	s.White = mk("white", ansiWhite, "", severity.Raw)

	return s
}

// Streams returns every stream in a stable order: debug, info, error,
// then the color streams.
func (s *Set) Streams() []Named {
	out := make([]Named, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Lookup finds a stream by name. "logger" is accepted for info.
func (s *Set) Lookup(name string) (*stream.Stream, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "logger" || name == "log" {
		name = "info"
	}
	for _, n := range s.ordered {
		if n.Name == name {
			return n.Stream, true
		}
	}
	return nil, false
}

// Threshold returns the current threshold of the set.
func (s *Set) Threshold() severity.Level {
	return s.threshold.Get()
}

// SetThreshold changes the threshold for every stream of the set.
func (s *Set) SetThreshold(level severity.Level) {
	s.threshold.Set(level)
}

// Colored reports whether prefixes carry color escapes.
func (s *Set) Colored() bool {
	return s.colored
}

func useColor(mode ColorMode, sink io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTTY(sink)
}

// IsTTY checks if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
