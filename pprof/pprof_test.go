package pprof

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/LangOneOrg/langone-releases/fib"
)

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	dump(&buf)

	require.Contains(t, buf.String(), "heap profile:")
	require.Contains(t, buf.String(), "goroutine profile:")
}

func TestToggleProfiler(t *testing.T) {
	defer func(dir string) { ProfileDir = dir }(ProfileDir)
	ProfileDir = t.TempDir()

	var started = ToggleProfiler()
	require.NotEmpty(t, started)
	require.Equal(t, ProfileDir, filepath.Dir(started))
	require.True(t, strings.HasPrefix(filepath.Base(started), "profile_"))

	_ = fib.Recursive(25)

	var stopped = handleProfile(t)
	require.Equal(t, started, stopped)

	var info, err = os.Stat(stopped)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

// handleProfile stops profiling through the SIGUSR1 path.
func handleProfile(t *testing.T) string {
	require.NotNil(t, profileFile)
	var name = profileFile.Name()

	handle(syscall.SIGUSR1)
	require.Nil(t, profileWriter)
	return name
}

func TestToggleProfilerBadDir(t *testing.T) {
	defer func(dir string) { ProfileDir = dir }(ProfileDir)
	ProfileDir = filepath.Join(t.TempDir(), "missing")

	require.Empty(t, ToggleProfiler())
	require.Nil(t, profileWriter)
}

func TestToggleTrace(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	log.SetLevel(log.WarnLevel)

	toggleTrace()
	require.Equal(t, log.DebugLevel, log.GetLevel())

	handle(syscall.SIGUSR2)
	require.Equal(t, log.WarnLevel, log.GetLevel())
	require.False(t, traceEnabled)
}
