//go:build unix

package guard

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireAborted(t *testing.T, state *os.ProcessState) {
	t.Helper()

	status, ok := state.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	require.True(t, status.Signaled(), "expected death by signal, got exit code %d", state.ExitCode())
	require.Equal(t, syscall.SIGKILL, status.Signal())
}
