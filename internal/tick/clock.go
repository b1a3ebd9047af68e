package tick

import _ "unsafe" // Required for go:linkname

// nanotime returns the current monotonic time in nanoseconds.
// This is faster than time.Now() because it returns a single int64
// and avoids constructing a time.Time struct.
//
// Note: This uses go:linkname to access an internal runtime function.
// It may break in future Go versions, though it has been stable.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// Now returns the monotonic clock reading in nanoseconds.
//
// Readings are only meaningful relative to each other.
func Now() int64 {
	return nanotime()
}
