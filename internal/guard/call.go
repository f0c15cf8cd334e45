package guard

// Call runs fn under a guard with the default message and returns its
// result unchanged. A panic in fn kills the process.
func Call[T any](fn func() T) T {
	g := newGuard("", 2)
	defer g.Release()
	return fn()
}

// CallMessage is Call with a custom diagnostic message.
func CallMessage[T any](message string, fn func() T) T {
	g := newGuard(message, 2)
	defer g.Release()
	return fn()
}

// Run runs fn under a guard with the default message.
func Run(fn func()) {
	g := newGuard("", 2)
	defer g.Release()
	fn()
}

// RunMessage runs fn under a guard with a custom diagnostic message.
func RunMessage(message string, fn func()) {
	g := newGuard(message, 2)
	defer g.Release()
	fn()
}
