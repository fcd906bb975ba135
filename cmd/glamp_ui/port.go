package main

import "math"

// bufferLen returns size as a length C.GoBytes accepts, or false if a C int
// cannot hold it.
func bufferLen(size uint32) (int, bool) {
	if size > math.MaxInt32 {
		return 0, false
	}
	return int(size), true
}
