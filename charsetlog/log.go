// Package charsetlog performs diagnostic tracing for the dicomcharset codec.
// It is a thin wrapper around logrus, mirroring the leveled Vprintf idiom
// used elsewhere in this codebase's lineage.
package charsetlog

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// level sets log verbosity. The larger the value, the more verbose. Setting it
// to -1 disables logging completely.
var level = int32(0)

// SetLevel sets log verbosity. The larger the value, the more verbose. Setting
// it to -1 disables logging completely. Thread safe.
func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

// Level returns the current log level. The larger the value, the more
// verbose. Thread safe.
func Level() int {
	return int(atomic.LoadInt32(&level))
}

// Vprintf is shorthand for "if l <= Level() { log.Debugf(...) }". Passing
// l == -1 emits at warning level at every level except -1, which disables
// logging completely; this is how the SCS parser reports its diagnostics
// (§4.2).
func Vprintf(l int, format string, args ...interface{}) {
	if l == -1 {
		if Level() != -1 {
			log.Warnf(format, args...)
		}
	} else if Level() >= l {
		log.Debugf(format, args...)
	}
}
