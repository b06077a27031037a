package temparena

import (
	"fmt"
	"unsafe"
)

// Sprintf formats according to fmt rules and returns a string whose bytes
// live inside the arena. Like every arena allocation, the result is only
// valid until the next Reset or Release.
func Sprintf(a *Arena, format string, args ...any) string {
	tmp := fmt.Appendf(nil, format, args...)
	if len(tmp) == 0 {
		return ""
	}
	b := a.AllocBytes(len(tmp))
	copy(b, tmp)
	return unsafe.String(&b[0], len(b))
}

// CopyString returns an arena-backed copy of s.
func CopyString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytes(len(s))
	copy(b, s)
	return unsafe.String(&b[0], len(b))
}

// CopyBytes returns an arena-backed copy of b.
func CopyBytes(a *Arena, b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	dst := a.AllocBytes(len(b))
	copy(dst, b)
	return dst
}
