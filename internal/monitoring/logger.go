package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// can be swapped with SetLogger, e.g. to silence tests.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces Logf. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
