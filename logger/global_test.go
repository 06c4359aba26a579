package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"github.com/philipp01105/topolog/core"
	"github.com/philipp01105/topolog/filter"
)

// resetGlobal puts the package back into its never-initialized state for
// the duration of a test.
func resetGlobal(t testing.TB) {
	reset := func() {
		mu.Lock()
		active = nil
		frozen = false
		mu.Unlock()
		SetMaxLevel(core.OffLevel)
	}
	reset()
	t.Cleanup(reset)
}

// captureStderr redirects os.Stderr while fn runs. Loggers built inside fn
// with the default handler write to the redirected stream.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	old := os.Stderr
	os.Stderr = w

	done := make(chan string)
	go func() {
		out, _ := io.ReadAll(r)
		done <- string(out)
	}()

	fn()

	os.Stderr = old
	w.Close()
	return <-done
}

func installBuffer(t *testing.T, conf string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := NewBuilder().
		WithFilter(filter.Parse(conf)).
		WithHandler(newBufferHandler(&buf)).
		WithStats(NewStats()).
		Build()
	if err := Install(l); err != nil {
		t.Fatalf("Install failed: %v", err)
	}
	return &buf
}

func TestGlobal_SilentBeforeInitialize(t *testing.T) {
	resetGlobal(t)

	out := captureStderr(t, func() {
		Log("net", ErrorLevel, "mod", 1, "too early")
		Emit(&core.Record{Target: "net", Level: ErrorLevel, Message: "too early"})
	})

	if out != "" {
		t.Errorf("Expected no output before Initialize, got: %q", out)
	}
	if Enabled("net", ErrorLevel) {
		t.Error("Expected Enabled to be false before Initialize")
	}
	if _, ok := CurrentFilter(); ok {
		t.Error("Expected no current filter before Initialize")
	}
	if MaxLevel() != OffLevel {
		t.Errorf("Expected gate Off before Initialize, got %v", MaxLevel())
	}
}

func TestGlobal_SilentWithoutEnv(t *testing.T) {
	resetGlobal(t)
	t.Setenv(filter.EnvVar, "")
	os.Unsetenv(filter.EnvVar)

	out := captureStderr(t, func() {
		if err := Initialize(); err != nil {
			t.Errorf("Initialize failed: %v", err)
		}
		for _, l := range core.Levels() {
			Log("net", l, "mod", 1, "nothing")
		}
	})

	if out != "" {
		t.Errorf("Expected no output without %s, got: %q", filter.EnvVar, out)
	}
}

func TestGlobal_InitializeFromEnv(t *testing.T) {
	resetGlobal(t)
	t.Setenv(filter.EnvVar, "net=debug")

	out := captureStderr(t, func() {
		if err := Initialize(); err != nil {
			t.Errorf("Initialize failed: %v", err)
		}
		Log("net", DebugLevel, "github.com/acme/app/net", 42, "dialing")
		Log("net", TraceLevel, "github.com/acme/app/net", 43, "hidden")
		Log("db", ErrorLevel, "github.com/acme/app/db", 7, "hidden")
	})

	want := regexp.MustCompile(`^\[\x1b\[34mDEBUG\x1b\[0m - \d+ *- github\.com/acme/app/net:42\] dialing\n$`)
	if !want.MatchString(out) {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestGlobal_ConcurrentLinesDoNotInterleave(t *testing.T) {
	resetGlobal(t)
	buf := installBuffer(t, "all=trace")

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				Log("load", InfoLevel, "mod", uint32(i), fmt.Sprintf("goroutine %d message %d", g, i))
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("Expected %d lines, got %d", goroutines*perGoroutine, len(lines))
	}
	line := regexp.MustCompile(`^\[INFO  - \d+ *- mod:\d+\] goroutine \d+ message \d+$`)
	for _, l := range lines {
		if !line.MatchString(l) {
			t.Fatalf("Malformed line: %q", l)
		}
	}
}

func TestGlobal_ReinitializeReplaces(t *testing.T) {
	resetGlobal(t)

	first := installBuffer(t, "a=trace")
	second := installBuffer(t, "b=trace")

	if Enabled("a", TraceLevel) {
		t.Error("Expected target 'a' to be forgotten after re-initialization")
	}
	if !Enabled("b", TraceLevel) {
		t.Error("Expected target 'b' to be enabled")
	}

	Log("a", ErrorLevel, "mod", 1, "to a")
	Log("b", ErrorLevel, "mod", 1, "to b")

	if first.Len() != 0 {
		t.Errorf("Expected the replaced logger to receive nothing, got: %q", first.String())
	}
	if !strings.Contains(second.String(), "to b") || strings.Contains(second.String(), "to a") {
		t.Errorf("Unexpected output from new logger: %q", second.String())
	}

	f, ok := CurrentFilter()
	if !ok || f.String() != "b=trace" {
		t.Errorf("Expected current filter 'b=trace', got %q (installed %v)", f.String(), ok)
	}
}

func TestGlobal_SourceErrorKeepsLogger(t *testing.T) {
	resetGlobal(t)
	installBuffer(t, "a=trace")

	boom := errors.New("boom")
	err := InitializeFrom(func() (filter.Filter, error) { return filter.Filter{}, boom })
	if errors.Cause(err) != boom {
		t.Errorf("Expected wrapped source error, got: %v", err)
	}
	if !Enabled("a", TraceLevel) {
		t.Error("Expected previous logger to remain installed")
	}
}

func TestGlobal_Freeze(t *testing.T) {
	resetGlobal(t)
	installBuffer(t, "a=info")
	Freeze()

	if err := Install(NewBuilder().Build()); err != ErrFrozen {
		t.Errorf("Expected ErrFrozen, got: %v", err)
	}
	if err := InitializeFrom(StringSource("b=info")); errors.Cause(err) != ErrFrozen {
		t.Errorf("Expected ErrFrozen, got: %v", err)
	}
	if !Enabled("a", InfoLevel) {
		t.Error("Expected frozen logger to remain installed")
	}
}

func TestGlobal_InstallNil(t *testing.T) {
	resetGlobal(t)

	if err := Install(nil); err != ErrNilLogger {
		t.Errorf("Expected ErrNilLogger, got: %v", err)
	}
	if MaxLevel() != OffLevel {
		t.Error("Expected gate to stay closed")
	}
}

func TestGlobal_Gate(t *testing.T) {
	resetGlobal(t)
	buf := installBuffer(t, "all=trace")

	if MaxLevel() != TraceLevel {
		t.Errorf("Expected gate at Trace after Install, got %v", MaxLevel())
	}

	SetMaxLevel(WarnLevel)
	if Enabled("x", InfoLevel) {
		t.Error("Expected Info to be rejected by the gate")
	}
	if !Enabled("x", WarnLevel) {
		t.Error("Expected Warn to pass the gate")
	}

	// Emit bypasses the gate; only front-ends consult it
	Log("x", InfoLevel, "mod", 1, "direct")
	if !strings.Contains(buf.String(), "direct") {
		t.Errorf("Expected Log to reach the logger, got: %q", buf.String())
	}
}

func TestGlobal_CurrentStats(t *testing.T) {
	resetGlobal(t)
	installBuffer(t, "all=warn")

	Log("x", ErrorLevel, "mod", 1, "e")
	Log("x", InfoLevel, "mod", 1, "i")

	snap := CurrentStats()
	if snap.Emitted[ErrorLevel] != 1 {
		t.Errorf("Expected 1 emitted error, got %d", snap.Emitted[ErrorLevel])
	}
	if snap.Suppressed[InfoLevel] != 1 {
		t.Errorf("Expected 1 suppressed info, got %d", snap.Suppressed[InfoLevel])
	}
}

func TestSources(t *testing.T) {
	f, err := StringSource("db=warn")()
	if err != nil {
		t.Fatalf("StringSource failed: %v", err)
	}
	if f.Threshold("db") != WarnLevel {
		t.Errorf("Expected Warn for db, got %v", f.Threshold("db"))
	}

	t.Setenv("TOPO_LOG_TEST_SOURCE", "all=debug")
	f, err = EnvSource("TOPO_LOG_TEST_SOURCE")()
	if err != nil {
		t.Fatalf("EnvSource failed: %v", err)
	}
	if f.Default != DebugLevel {
		t.Errorf("Expected default Debug, got %v", f.Default)
	}
}

func BenchmarkGlobal_Log(b *testing.B) {
	resetGlobal(b)
	var buf bytes.Buffer
	Install(NewBuilder().
		WithFilter(filter.Parse("all=info")).
		WithHandler(newBufferHandler(&buf)).
		WithStats(NewStats()).
		Build())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		Log("bench", InfoLevel, "mod", 1, "test message")
	}
}
