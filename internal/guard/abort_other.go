//go:build !unix && !windows

package guard

import "os"

const abortExitCode = 134

// abort has no signal to raise on this platform; os.Exit is the closest
// thing that skips deferred calls.
func abort() {
	os.Exit(abortExitCode)
}
