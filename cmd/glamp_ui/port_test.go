package main

import (
	"math"
	"testing"
)

func TestBufferLen(t *testing.T) {
	tests := []struct {
		size uint32
		n    int
		ok   bool
	}{
		{0, 0, true},
		{4, 4, true},
		{math.MaxInt32, math.MaxInt32, true},
		{math.MaxInt32 + 1, 0, false},
		{math.MaxUint32, 0, false},
	}
	for _, tt := range tests {
		if n, ok := bufferLen(tt.size); n != tt.n || ok != tt.ok {
			t.Errorf("bufferLen(%v): have %v %v, want %v %v", tt.size, n, ok, tt.n, tt.ok)
		}
	}
}
