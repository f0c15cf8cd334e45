// Package guard turns a panic that escapes a protected block into an
// immediate, unrecoverable process kill.
//
// Some boundaries must never be crossed by a panic: callbacks invoked
// from C through cgo, plugin entry points, goroutines whose stack is
// owned by foreign code. A Guard marks such a boundary. It is released
// on every exit path of the enclosing function, and when the release
// happens because the goroutine is panicking, the guard writes one line
// to stderr and kills the process before any further deferred call runs.
//
// # Usage
//
// The guard's Release method must be deferred directly:
//
//	g := guard.WithMessage("cannot panic inside C callback")
//	defer g.Release()
//
// The wrappers do the same for a single block and hand back its result:
//
//	v := guard.Call(func() string { return "value" })
//
//	guard.RunMessage("cannot panic inside this block", func() {
//		// ...
//	})
//
// # Diagnostic
//
// On a tripped guard the line written to stderr is
//
//	<message> at <file>:<line>
//
// where <file>:<line> is where the guard was created. The default
// message is "cannot unwind past stack frame".
//
// # Termination
//
//   - unix:    SIGKILL sent to the current process. It cannot be caught,
//     blocked or ignored, so no os/signal handler observes it.
//   - windows: TerminateProcess on the current process, exit code 3.
//   - other:   os.Exit(134).
//
// Normal returns and runtime.Goexit never trip a guard, and neither does
// calling Release outside of a deferred call.
package guard
