// Package memzero wipes sensitive buffers such as master secrets and prime seeds.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites every given buffer with zeros in a constant-time friendly way.
//
//go:noinline
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
		// Keep b live until after the copy so the write is not elided.
		runtime.KeepAlive(b)
	}
}
