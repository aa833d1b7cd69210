package console

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/constream/internal/config"
	"github.com/Aman-CERP/constream/internal/errors"
	"github.com/Aman-CERP/constream/internal/severity"
	"github.com/Aman-CERP/constream/internal/stream"
)

var fixedTime = time.Date(2016, time.March, 4, 5, 6, 7, 0, time.Local)

func newTestSet(t *testing.T, level severity.Level, color ColorMode) (*Set, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := New(Options{
		Sink:      &buf,
		Threshold: severity.New(level),
		Color:     color,
		Clock:     func() time.Time { return fixedTime },
	})
	return s, &buf
}

// emitAll writes the stream's name through every stream of the set and
// returns the names that produced output.
func emitAll(t *testing.T, s *Set, buf *bytes.Buffer) []string {
	t.Helper()
	var emitted []string
	for _, n := range s.Streams() {
		buf.Reset()
		require.NoError(t, n.Stream.Println(n.Name))
		if buf.Len() > 0 {
			emitted = append(emitted, n.Name)
		}
	}
	return emitted
}

var colorNames = []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func TestSet_ThresholdScenarios(t *testing.T) {
	tests := []struct {
		name  string
		level severity.Level
		want  []string
	}{
		{"off", severity.Off, nil},
		{"raw only", severity.Raw, colorNames},
		{"error and colors", severity.Error, append([]string{"error"}, colorNames...)},
		{"info", severity.Info, append([]string{"info", "error"}, colorNames...)},
		{"everything", severity.Debug, append([]string{"debug", "info", "error"}, colorNames...)},
		{"above everything", severity.Level(10), append([]string{"debug", "info", "error"}, colorNames...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newTestSet(t, tt.level, ColorNever)
			assert.Equal(t, tt.want, emitAll(t, s, buf))
		})
	}
}

func TestSet_ColoredPrefixes(t *testing.T) {
	s, buf := newTestSet(t, severity.Debug, ColorAlways)
	require.True(t, s.Colored())

	require.NoError(t, s.Error.Println("Oh noes"))
	assert.Equal(t, "[2016-03-04/05:06:07] \x1b[31m(EE) Oh noes\n\x1b[37m", buf.String())

	buf.Reset()
	require.NoError(t, s.Debug.Println("Hello"))
	assert.Equal(t, "[2016-03-04/05:06:07] \x1b[33m(DD) Hello\n\x1b[37m", buf.String())

	buf.Reset()
	require.NoError(t, s.Info.Println("these are some"))
	assert.Equal(t, "[2016-03-04/05:06:07] \x1b[32m(LL) these are some\n\x1b[37m", buf.String())

	buf.Reset()
	require.NoError(t, s.Cyan.Println("cyan_stream"))
	assert.Equal(t, "[2016-03-04/05:06:07] \x1b[36mcyan_stream\n\x1b[37m", buf.String())
}

func TestSet_PlainPrefixes(t *testing.T) {
	s, buf := newTestSet(t, severity.Debug, ColorNever)
	require.False(t, s.Colored())

	require.NoError(t, s.Error.Println("fancy output streams.\nwith a nice\nlinebreak."))

	pad := strings.Repeat(" ", stream.IndentWidth)
	assert.Equal(t,
		"[2016-03-04/05:06:07] (EE) fancy output streams.\n"+
			pad+"(EE) with a nice\n"+
			pad+"(EE) linebreak.\n",
		buf.String())

	buf.Reset()
	require.NoError(t, s.Magenta.Println("magenta_stream"))
	assert.Equal(t, "[2016-03-04/05:06:07] magenta_stream\n", buf.String())
}

func TestSet_MinimumLevels(t *testing.T) {
	s, _ := newTestSet(t, severity.Debug, ColorNever)

	assert.Equal(t, severity.Debug, s.Debug.MinLevel())
	assert.Equal(t, severity.Info, s.Info.MinLevel())
	assert.Equal(t, severity.Error, s.Error.MinLevel())
	for _, name := range colorNames {
		st, ok := s.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, severity.Raw, st.MinLevel(), name)
	}
}

func TestSet_SharedThreshold(t *testing.T) {
	s, buf := newTestSet(t, severity.Debug, ColorNever)

	s.SetThreshold(severity.Error)

	assert.Equal(t, severity.Error, s.Threshold())
	for _, n := range s.Streams() {
		assert.Same(t, s.Streams()[0].Stream.Threshold(), n.Stream.Threshold())
	}
	require.NoError(t, s.Info.Println("hidden"))
	assert.Equal(t, 0, buf.Len())

	// The level can also be changed through any single stream.
	s.Red.SetThreshold(severity.Info)
	require.NoError(t, s.Info.Println("shown"))
	assert.Contains(t, buf.String(), "(LL) shown")
}

func TestSet_Lookup(t *testing.T) {
	s, _ := newTestSet(t, severity.Debug, ColorNever)

	st, ok := s.Lookup("logger")
	require.True(t, ok)
	assert.Same(t, s.Info, st)

	st, ok = s.Lookup(" ERROR ")
	require.True(t, ok)
	assert.Same(t, s.Error, st)

	_, ok = s.Lookup("purple")
	assert.False(t, ok)
}

func TestSet_StreamsOrder(t *testing.T) {
	s, _ := newTestSet(t, severity.Debug, ColorNever)

	var names []string
	for _, n := range s.Streams() {
		names = append(names, n.Name)
	}

	assert.Equal(t, append([]string{"debug", "info", "error"}, colorNames...), names)
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"ALWAYS", ColorAlways},
		{"on", ColorAlways},
		{"never", ColorNever},
		{"false", ColorNever},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestUseColor_Auto(t *testing.T) {
	// Given: a sink that is not a terminal
	var buf bytes.Buffer

	// Then: auto never colors it
	assert.False(t, useColor(ColorAuto, &buf))
	assert.True(t, useColor(ColorAlways, &buf))
	assert.False(t, useColor(ColorNever, os.Stdout))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, useColor(ColorAuto, os.Stdout))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
	assert.False(t, IsTTY(nil))

	f, err := os.CreateTemp(t.TempDir(), "sink")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTTY(f))
}

func TestFromConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Level = severity.Error
	cfg.Color = config.ColorAlways
	cfg.Sink = config.SinkStderr
	th := severity.New(severity.Debug)

	s, err := FromConfig(cfg, th)

	require.NoError(t, err)
	assert.Equal(t, severity.Error, th.Get())
	assert.Same(t, th, s.Debug.Threshold())
	assert.True(t, s.Colored())
	assert.Equal(t, "\x1b[31m(EE) ", s.Error.Prefix())
	assert.Equal(t, Reset, s.Error.Postfix())

	s, err = FromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, severity.Error, s.Threshold())
}

func TestFromConfig_InvalidColor(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Color = "sometimes"

	s, err := FromConfig(cfg, nil)

	require.Error(t, err)
	assert.Nil(t, s)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestFromConfig_KeepsRuntimeThreshold(t *testing.T) {
	// Given: a stream sharing th that was muted before any set exists
	th := severity.New(severity.DefaultThreshold)
	early := stream.New("(X) ", severity.Error, stream.WithThreshold(th), stream.WithSink(&bytes.Buffer{}))
	early.SetThreshold(severity.Off)
	cfg := config.NewConfig()
	cfg.Level = severity.Debug

	// When: the set is built from configuration afterwards
	s, err := FromConfig(cfg, th)

	// Then: the runtime level wins
	require.NoError(t, err)
	assert.Equal(t, severity.Off, s.Threshold())
	assert.False(t, early.Enabled())
	assert.False(t, s.Error.Enabled())
}

func TestBuildDefault_KeepsRuntimeThreshold(t *testing.T) {
	// Given: no configuration files and a shared threshold muted at runtime
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"CONSTREAM_LEVEL", "CONSTREAM_COLOR", "CONSTREAM_SINK"} {
		t.Setenv(key, "")
	}
	th := severity.New(severity.DefaultThreshold)
	early := stream.New("(X) ", severity.Error, stream.WithThreshold(th), stream.WithSink(&bytes.Buffer{}))
	early.SetThreshold(severity.Off)

	// When: the lazy default set is built on top of it
	s := buildDefault(th)

	// Then: the configured default level does not unmute output
	require.NotNil(t, s)
	assert.Equal(t, severity.Off, th.Get())
	assert.False(t, early.Enabled())
	assert.False(t, s.Info.Enabled())
}

func TestBuildDefault_SeedsUntouchedThreshold(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CONSTREAM_LEVEL", "error")
	th := severity.New(severity.DefaultThreshold)

	s := buildDefault(th)

	require.NotNil(t, s)
	assert.Equal(t, severity.Error, th.Get())
	assert.Same(t, th, s.Info.Threshold())
}

func TestOptionsFromConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := config.NewConfig()
	cfg.Level = severity.Info
	cfg.Color = config.ColorNever

	opts, err := OptionsFromConfig(cfg, &out, &errOut)
	require.NoError(t, err)
	assert.Same(t, &out, opts.Sink)
	assert.Equal(t, ColorNever, opts.Color)
	assert.Equal(t, severity.Info, opts.Threshold.Get())

	cfg.Sink = config.SinkStderr
	opts, err = OptionsFromConfig(cfg, &out, &errOut)
	require.NoError(t, err)
	assert.Same(t, &errOut, opts.Sink)

	opts, err = OptionsFromConfig(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, opts.Sink)
}

func TestDefault_OnceAndShared(t *testing.T) {
	// Given: many goroutines racing for the default set
	var wg sync.WaitGroup
	sets := make([]*Set, 16)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = Default()
		}(i)
	}
	wg.Wait()

	// Then: all of them got the same fully built set
	for _, s := range sets {
		require.NotNil(t, s)
		assert.Same(t, sets[0], s)
	}
	assert.Same(t, sets[0].Debug, Debug())
	assert.Same(t, sets[0].Info, Info())
	assert.Same(t, sets[0].Error, Error())
	assert.Same(t, sets[0].Red, Red())
	assert.Same(t, sets[0].Green, Green())
	assert.Same(t, sets[0].Yellow, Yellow())
	assert.Same(t, sets[0].Blue, Blue())
	assert.Same(t, sets[0].Magenta, Magenta())
	assert.Same(t, sets[0].Cyan, Cyan())
	assert.Same(t, sets[0].White, White())
	assert.Same(t, severity.Default(), Debug().Threshold())

	prev := Threshold()
	defer SetThreshold(prev)
	SetThreshold(severity.Raw)
	assert.Equal(t, severity.Raw, severity.Default().Get())
}
