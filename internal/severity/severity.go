package severity

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Level is a severity level. Larger values are more verbose.
type Level int

const (
	// Off is below every stream minimum; nothing is emitted.
	Off Level = -1
	// Raw is the minimum level of the unleveled color streams.
	Raw Level = 0
	// Error is the minimum level of the error stream.
	Error Level = 1
	// Info is the minimum level of the informational stream.
	Info Level = 2
	// Debug is the minimum level of the diagnostic stream.
	Debug Level = 3
)

// DefaultThreshold shows everything.
const DefaultThreshold = Debug

// Allows reports whether a stream with minimum level min emits under l.
func (l Level) Allows(min Level) bool {
	return l >= min
}

// String returns the level name, or its number if it has none.
func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Raw:
		return "raw"
	case Error:
		return "error"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return strconv.Itoa(int(l))
	}
}

// ParseLevel parses a level name (case-insensitive) or an integer.
// Any integer is accepted.
func ParseLevel(s string) (Level, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "off", "none", "quiet":
		return Off, nil
	case "raw", "color":
		return Raw, nil
	case "error", "err":
		return Error, nil
	case "info", "log", "logger":
		return Info, nil
	case "debug":
		return Debug, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid severity level %q: want off, raw, error, info, debug or an integer", s)
	}
	return Level(n), nil
}

// UnmarshalYAML accepts either a level name or an integer.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: severity level must be a scalar", node.Line)
	}
	parsed, err := ParseLevel(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = parsed
	return nil
}

// MarshalYAML writes named levels by name and others as integers.
func (l Level) MarshalYAML() (any, error) {
	if l >= Off && l <= Debug {
		return l.String(), nil
	}
	return int(l), nil
}

// Threshold is the shared severity threshold read by every stream on flush.
// Get and Set are safe to call from several goroutines.
type Threshold struct {
	level atomic.Int64

	mu       sync.Mutex
	explicit bool
}

// New creates a threshold set to initial.
func New(initial Level) *Threshold {
	t := &Threshold{}
	t.level.Store(int64(initial))
	return t
}

// Get returns the current threshold.
func (t *Threshold) Get() Level {
	return Level(t.level.Load())
}

// Set replaces the threshold. Streams observe it from their next flush on.
func (t *Threshold) Set(level Level) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.explicit = true
	t.level.Store(int64(level))
}

// Seed replaces the initial value unless Set was already called, and
// reports whether it did. Configuration loaded lazily never overrides a
// level chosen at runtime.
func (t *Threshold) Seed(level Level) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.explicit {
		return false
	}
	t.level.Store(int64(level))
	return true
}

// Allows reports whether a stream with minimum level min currently emits.
func (t *Threshold) Allows(min Level) bool {
	return t.Get().Allows(min)
}

var (
	defaultOnce      sync.Once
	defaultThreshold *Threshold
)

// Default returns the process-wide threshold, created on first use.
func Default() *Threshold {
	defaultOnce.Do(func() {
		defaultThreshold = New(DefaultThreshold)
	})
	return defaultThreshold
}
