package main

import (
	"errors"
	"fmt"
)

const (
	scratchSize     = 1024
	maxResponseSize = 32 << 20
)

var (
	ErrBufferTooLarge  = errors.New("response buffer would exceed size limit")
	ErrScratchOverflow = errors.New("formatted text does not fit scratch area")
)

// ResponseBuffer accumulates a complete response before it is written.
// Capacity doubles whenever an append does not fit.
type ResponseBuffer struct {
	buf []byte
	cap int
}

func NewResponseBuffer(capacity int) *ResponseBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &ResponseBuffer{buf: make([]byte, 0, capacity), cap: capacity}
}

// grow assumes need <= maxResponseSize. The last doubling is clamped to
// the limit.
func (b *ResponseBuffer) grow(need int) {
	newCap := max(b.cap, 1)
	for newCap < need {
		newCap *= 2
		if newCap > maxResponseSize {
			newCap = maxResponseSize
		}
	}
	if newCap == b.cap {
		return
	}
	nb := make([]byte, len(b.buf), newCap)
	copy(nb, b.buf)
	b.buf = nb
	b.cap = newCap
}

// Append copies p to the end of the buffer. On error the buffer is unchanged.
func (b *ResponseBuffer) Append(p []byte) error {
	need := len(b.buf) + len(p)
	if need > maxResponseSize {
		return ErrBufferTooLarge
	}
	b.grow(need)
	b.buf = append(b.buf, p...)
	return nil
}

func (b *ResponseBuffer) AppendString(s string) error {
	return b.Append([]byte(s))
}

// Appendf formats into a scratch area of scratchSize bytes and appends the
// result. Text that would not fit the scratch area is rejected.
func (b *ResponseBuffer) Appendf(format string, args ...interface{}) error {
	var scratch [scratchSize]byte
	out := fmt.Appendf(scratch[:0], format, args...)
	if len(out) >= scratchSize {
		return ErrScratchOverflow
	}
	return b.Append(out)
}

func (b *ResponseBuffer) Bytes() []byte { return b.buf }
func (b *ResponseBuffer) Len() int      { return len(b.buf) }
func (b *ResponseBuffer) Cap() int      { return b.cap }

// Free drops the backing storage. A later append starts over from an
// empty buffer.
func (b *ResponseBuffer) Free() {
	b.buf = nil
	b.cap = 0
}
