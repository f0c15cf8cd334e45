//go:build windows

package guard

import (
	"os"

	"golang.org/x/sys/windows"
)

// abortExitCode matches what the C runtime's abort() reports.
const abortExitCode = 3

// abort terminates the current process without running deferred calls.
func abort() {
	_ = windows.TerminateProcess(windows.CurrentProcess(), abortExitCode)
	os.Exit(abortExitCode)
}
