package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/topolog/config"
	"github.com/philipp01105/topolog/filter"
	"github.com/philipp01105/topolog/logger"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{filter.EnvVar, config.EnvColor, config.EnvOutput} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// run executes the CLI with args and returns what it printed to its own
// output stream.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

// captureStdout redirects os.Stdout while fn runs
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		b, _ := io.ReadAll(r)
		done <- string(b)
	}()

	fn()

	os.Stdout = old
	w.Close()
	return <-done
}

func TestCheck_NamedTargets(t *testing.T) {
	clearEnv(t)

	out, err := run(t, "", "check", "-f", "net=trace,all=warn", "db", "net")
	require.NoError(t, err)

	assert.Regexp(t, `(?m)^filter\s+all=warn,net=trace$`, out)
	assert.Regexp(t, `(?m)^all\s+WARN$`, out)
	assert.Regexp(t, `(?m)^db\s+WARN$`, out)
	assert.Regexp(t, `(?m)^net\s+TRACE$`, out)
}

func TestCheck_ConfiguredTargets(t *testing.T) {
	clearEnv(t)
	t.Setenv(filter.EnvVar, "all=info,a=error,b=debug")

	out, err := run(t, "", "check")
	require.NoError(t, err)

	// a is raised to the default
	assert.Regexp(t, `(?m)^a\s+INFO$`, out)
	assert.Regexp(t, `(?m)^b\s+DEBUG$`, out)
}

func TestCheck_Precedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "topolog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nfilter = \"all=error\"\n"), 0o644))

	out, err := run(t, "", "check", "-c", path)
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^all\s+ERROR$`, out)

	t.Setenv(filter.EnvVar, "all=debug")
	out, err = run(t, "", "check", "-c", path)
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^all\s+DEBUG$`, out)

	out, err = run(t, "", "check", "-c", path, "--filter", "all=trace")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^all\s+TRACE$`, out)
}

func TestInvalidFlags(t *testing.T) {
	clearEnv(t)

	_, err := run(t, "", "check", "--color", "sometimes")
	assert.ErrorContains(t, err, "log.color")

	_, err = run(t, "", "emit", "--output", "printer", "x")
	assert.ErrorContains(t, err, "log.output")
}

func TestEmit_Args(t *testing.T) {
	clearEnv(t)

	var err error
	out := captureStdout(t, func() {
		_, err = run(t, "", "emit", "-f", "args=warn", "--output", "stdout", "--color", "never",
			"-l", "warn", "hello", "world")
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\[WARN  - \d+ *- args:0\] hello world\n$`, out)
}

func TestEmit_Stdin(t *testing.T) {
	clearEnv(t)

	var err error
	out := captureStdout(t, func() {
		_, err = run(t, "one\ntwo\nthree\n", "emit", "-f", "lines=debug", "--output", "stdout", "--color", "never",
			"-t", "lines", "-l", "debug")
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^\[DEBUG - \d+ *- stdin:1\] one$`, lines[0])
	assert.Regexp(t, `^\[DEBUG - \d+ *- stdin:3\] three$`, lines[2])
}

func TestEmit_Filtered(t *testing.T) {
	clearEnv(t)

	var err error
	out := captureStdout(t, func() {
		_, err = run(t, "", "emit", "-f", "args=error", "--output", "stdout", "-l", "info", "quiet")
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWatch_Reinitializes(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "topolog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nfilter = \"old=info\"\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	go func() {
		time.Sleep(300 * time.Millisecond)
		os.WriteFile(path, []byte("[log]\nfilter = \"new=trace\"\n"), 0o644)
		assert.Eventually(t, func() bool {
			return logger.Enabled("new", logger.TraceLevel)
		}, time.Second, 20*time.Millisecond)
		cancel()
	}()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"watch", "-c", path, "--debounce", "50ms"})
	cmd.SetOut(io.Discard)
	require.NoError(t, cmd.ExecuteContext(ctx))

	f, ok := logger.CurrentFilter()
	require.True(t, ok)
	assert.Equal(t, "new=trace", f.String())
}
