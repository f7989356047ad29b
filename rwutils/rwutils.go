package rwutils

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/unchecked"
	"github.com/histdb/unchecked/buffer"
)

var le = binary.LittleEndian

// padScratch is the scratch size Pad allocates when W was given none.
const padScratch = 64

// W buffers little-endian values in front of an io.Writer. Each write makes
// room once, flushing or growing the scratch buffer, and then appends without
// further capacity checks.
type W struct {
	buf buffer.T
	err error
	w   io.Writer
}

// Init resets w to write to wr using the capacity of buf as scratch space.
func (w *W) Init(wr io.Writer, buf []byte) {
	*w = W{
		buf: buffer.OfCap(buf),
		w:   wr,
	}
}

// Done flushes any buffered data and returns the first write error.
func (w *W) Done() error {
	w.flush()
	if w.err != nil {
		return errs.Wrap(w.err)
	}
	return nil
}

func (w *W) Uint8(x uint8) {
	w.room(1)
	unchecked.Push(&w.buf, x)
}

func (w *W) Uint16(x uint16) {
	var tmp [2]byte
	le.PutUint16(tmp[:], x)
	w.room(2)
	unchecked.ExtendFromSlice(&w.buf, tmp[:])
}

func (w *W) Uint32(x uint32) {
	var tmp [4]byte
	le.PutUint32(tmp[:], x)
	w.room(4)
	unchecked.ExtendFromSlice(&w.buf, tmp[:])
}

func (w *W) Uint64(x uint64) {
	var tmp [8]byte
	le.PutUint64(tmp[:], x)
	w.room(8)
	unchecked.ExtendFromSlice(&w.buf, tmp[:])
}

func (w *W) Rune(r rune) {
	var tmp [utf8.UTFMax]byte
	enc := utf8.AppendRune(tmp[:0], r)
	w.room(len(enc))
	unchecked.ExtendFromSlice(&w.buf, enc)
}

// Pad writes n copies of c, filling at most the scratch space at a time.
func (w *W) Pad(c byte, n int) {
	for n > 0 {
		if w.buf.Remaining() == 0 {
			w.flush()
			if w.buf.Cap() == 0 {
				w.buf = w.buf.Grow(padScratch)
			}
		}
		m := min(n, w.buf.Remaining())
		unchecked.ExtendRepeat(&w.buf, c, m)
		n -= m
	}
}

// Bytes writes buf. Writes larger than the scratch space go straight to the
// underlying writer.
func (w *W) Bytes(buf []byte) {
	if len(buf) > w.buf.Remaining() {
		w.flush()
		if len(buf) > w.buf.Cap() {
			if w.err == nil {
				_, w.err = w.w.Write(buf)
			}
			return
		}
	}
	unchecked.ExtendFromSlice(&w.buf, buf)
}

// String writes the bytes of s, with the same buffering as Bytes.
func (w *W) String(s string) {
	if len(s) > w.buf.Remaining() {
		w.flush()
		if len(s) > w.buf.Cap() {
			if w.err == nil {
				_, w.err = io.WriteString(w.w, s)
			}
			return
		}
	}
	unchecked.ExtendFromString(&w.buf, s)
}

// room makes sure at least n bytes fit after the position.
func (w *W) room(n int) {
	if w.buf.Remaining() < n {
		w.flush()
		w.buf = w.buf.Grow(n)
	}
}

//go:noinline
func (w *W) flush() {
	if w.err == nil && w.buf.Pos() > 0 {
		_, w.err = w.w.Write(w.buf.Prefix())
	}
	w.buf = w.buf.Reset()
}

// R reads little-endian values out of a byte slice. The first short read
// records an error and every later read returns zero values.
type R struct {
	buf buffer.T
	err error
}

func (r *R) Init(buf []byte) {
	*r = R{
		buf: buffer.OfLen(buf),
	}
}

// Done returns the unread bytes and the first error.
func (r *R) Done() ([]byte, error) {
	return r.buf.Suffix(), r.err
}

func (r *R) Uint8() (x uint8) {
	if r.err == nil {
		if r.buf.Remaining() >= 1 {
			x = *r.buf.Front()
			r.buf = r.buf.Advance(1)
		} else {
			r.bad(1)
		}
	}
	return
}

func (r *R) Uint16() (x uint16) {
	if r.err == nil {
		if r.buf.Remaining() >= 2 {
			x = le.Uint16(r.buf.Front2()[:])
			r.buf = r.buf.Advance(2)
		} else {
			r.bad(2)
		}
	}
	return
}

func (r *R) Uint32() (x uint32) {
	if r.err == nil {
		if r.buf.Remaining() >= 4 {
			x = le.Uint32(r.buf.Front4()[:])
			r.buf = r.buf.Advance(4)
		} else {
			r.bad(4)
		}
	}
	return
}

func (r *R) Uint64() (x uint64) {
	if r.err == nil {
		if r.buf.Remaining() >= 8 {
			x = le.Uint64(r.buf.Front8()[:])
			r.buf = r.buf.Advance(8)
		} else {
			r.bad(8)
		}
	}
	return
}

func (r *R) Rune() (x rune) {
	if r.err == nil {
		if r.buf.Remaining() >= 1 {
			var n int
			x, n = utf8.DecodeRune(r.buf.FrontN(min(r.buf.Remaining(), utf8.UTFMax)))
			r.buf = r.buf.Advance(n)
		} else {
			r.bad(1)
		}
	}
	return
}

// Bytes returns the next n bytes. The result aliases the slice passed to
// Init.
func (r *R) Bytes(n int) (x []byte) {
	if r.err == nil {
		if r.buf.Remaining() >= n {
			x = r.buf.FrontN(n)
			r.buf = r.buf.Advance(n)
		} else {
			r.bad(n)
		}
	}
	return
}

func (r *R) String(n int) string { return string(r.Bytes(n)) }

func (r *R) bad(n int) {
	r.err = errs.Errorf("short buffer: needed %d bytes", n)
	r.buf = r.buf.Advance(r.buf.Remaining())
}
