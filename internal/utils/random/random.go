package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Source is a crypto/rand backed generator for weighted draws.
// A read failure from the system entropy source panics.
type Source struct{}

// NewSource returns a ready to use Source.
func NewSource() Source {
	return Source{}
}

// Float64 returns a uniformly distributed value in [0, 1).
func (Source) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	// 53 старших бит дают равномерную сетку в [0, 1)
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}
