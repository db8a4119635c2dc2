// Package fb is an in-memory 1-bit framebuffer implementing
// tinygo.org/x/drivers.Displayer, used in place of the SSD1306 on the host.
package fb

import (
	"image/color"
	"sync"

	"envpanel/types"
)

// Buffer is a monochrome framebuffer. Pixels with any non-zero RGB channel
// are lit. Display snapshots the buffer and hands it to the flush hook.
type Buffer struct {
	mu     sync.Mutex
	w, h   int16
	bits   []byte
	seq    uint32
	flush  func(types.Frame) error
	failIn int
	failE  error
}

// New returns a cleared w x h buffer.
func New(w, h int16) *Buffer {
	return &Buffer{w: w, h: h, bits: make([]byte, (int(w)*int(h)+7)/8)}
}

// OnFlush sets the function called with a snapshot on every Display.
func (b *Buffer) OnFlush(fn func(types.Frame) error) {
	b.mu.Lock()
	b.flush = fn
	b.mu.Unlock()
}

// FailAfter makes the n-th following Display call (1 = the next one) return
// err instead of flushing.
func (b *Buffer) FailAfter(n int, err error) {
	b.mu.Lock()
	b.failIn, b.failE = n, err
	b.mu.Unlock()
}

func (b *Buffer) Size() (x, y int16) { return b.w, b.h }

func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	i := int(y)*int(b.w) + int(x)
	b.mu.Lock()
	if c.R|c.G|c.B != 0 {
		b.bits[i>>3] |= 1 << (i & 7)
	} else {
		b.bits[i>>3] &^= 1 << (i & 7)
	}
	b.mu.Unlock()
}

// ClearBuffer turns every pixel off without flushing.
func (b *Buffer) ClearBuffer() {
	b.mu.Lock()
	for i := range b.bits {
		b.bits[i] = 0
	}
	b.mu.Unlock()
}

func (b *Buffer) Display() error {
	b.mu.Lock()
	if b.failIn > 0 {
		b.failIn--
		if b.failIn == 0 {
			err := b.failE
			b.mu.Unlock()
			return err
		}
	}
	b.seq++
	f := b.snapshotLocked()
	hook := b.flush
	b.mu.Unlock()
	if hook != nil {
		return hook(f)
	}
	return nil
}

// Snapshot returns a copy of the current buffer contents.
func (b *Buffer) Snapshot() types.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Buffer) snapshotLocked() types.Frame {
	return types.Frame{
		Width:  int(b.w),
		Height: int(b.h),
		Bits:   append([]byte(nil), b.bits...),
		Seq:    b.seq,
	}
}
