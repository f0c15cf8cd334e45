//go:build !unix && !windows

package guard

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireAborted(t *testing.T, state *os.ProcessState) {
	t.Helper()
	require.Equal(t, abortExitCode, state.ExitCode())
}
