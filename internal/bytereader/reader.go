// Package bytereader provides a positioned cursor over an owned byte
// buffer, with little-endian primitive decoders for the fixed-width
// fields MDX records are built from.
package bytereader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// ErrUnexpectedEOF is returned when a read demands more bytes than
// remain in the buffer. Position reflects the cursor at the time of
// the failed read.
type ErrUnexpectedEOF struct {
	Position int
	Want     int
	Have     int
}

func (e *ErrUnexpectedEOF) Error() string {
	return fmt.Sprintf("unexpected EOF at offset %d: wanted %d bytes, have %d", e.Position, e.Want, e.Have)
}

// Vec3 is an x, y, z triple of single-precision floats.
type Vec3 [3]float32

// Vec2 is a u, v pair of single-precision floats.
type Vec2 [2]float32

// Reader is a cursor over a fully-buffered byte slice. It never mutates
// the underlying slice; every read advances the cursor by the width of
// the datum read. A failed read leaves the cursor position undefined —
// callers must abort on the first error, per the parser's fail-fast
// policy.
type Reader struct {
	buf []byte
	pos int
}

// New wraps buf in a Reader starting at position 0.
func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Position returns the current cursor offset.
func (r *Reader) Position() int64 {
	return int64(r.pos)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// AtEOF reports whether the cursor sits exactly at the end of the buffer.
func (r *Reader) AtEOF() bool {
	return r.pos >= len(r.buf)
}

func (r *Reader) require(n int) error {
	if r.pos+n > len(r.buf) {
		return &ErrUnexpectedEOF{Position: r.pos, Want: n, Have: len(r.buf) - r.pos}
	}
	return nil
}

// ReadU8 reads one unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos : r.pos+2])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian signed int32.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadF32 reads a little-endian IEEE-754 single-precision float.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadExact copies and returns the next n bytes, advancing the cursor.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// ReadString reads exactly n bytes and returns the prefix up to the
// first null byte as the logical string value. All n bytes are always
// consumed regardless of where the null falls.
func (r *Reader) ReadString(n int) (string, error) {
	raw, err := r.ReadExact(n)
	if err != nil {
		return "", err
	}
	if idx := bytes.IndexByte(raw, 0); idx >= 0 {
		return string(raw[:idx]), nil
	}
	return string(raw), nil
}

// ReadRightAlignedString reads exactly n bytes that may be stored
// right-aligned (leading null padding before the text): leading nulls
// are stripped before cutting at the first remaining null byte.
func (r *Reader) ReadRightAlignedString(n int) (string, error) {
	raw, err := r.ReadExact(n)
	if err != nil {
		return "", err
	}
	start := 0
	for start < len(raw) && raw[start] == 0 {
		start++
	}
	raw = raw[start:]
	if idx := bytes.IndexByte(raw, 0); idx >= 0 {
		raw = raw[:idx]
	}
	return string(raw), nil
}

// ReadVec3 reads three consecutive f32s in x, y, z order.
func (r *Reader) ReadVec3() (Vec3, error) {
	var v Vec3
	for i := range v {
		f, err := r.ReadF32()
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

// ReadVec2 reads two consecutive f32s in u, v order.
func (r *Reader) ReadVec2() (Vec2, error) {
	var v Vec2
	for i := range v {
		f, err := r.ReadF32()
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

// Extent is the (bounds_radius, min, max) triple that precedes many
// records (ModelInfo, Sequence).
type Extent struct {
	BoundsRadius float32
	Min          Vec3
	Max          Vec3
}

// ReadExtent reads bounds_radius followed by the min and max extent
// vectors, in that order.
func (r *Reader) ReadExtent() (Extent, error) {
	var e Extent
	radius, err := r.ReadF32()
	if err != nil {
		return e, err
	}
	min, err := r.ReadVec3()
	if err != nil {
		return e, err
	}
	max, err := r.ReadVec3()
	if err != nil {
		return e, err
	}
	e.BoundsRadius, e.Min, e.Max = radius, min, max
	return e, nil
}

// ReadKeyword reads four raw bytes, used both for top-level chunk tags
// and to probe for named sub-chunks inside complex records.
func (r *Reader) ReadKeyword() (string, error) {
	raw, err := r.ReadExact(4)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SeekAbs repositions the cursor to an absolute offset.
func (r *Reader) SeekAbs(pos int64) {
	r.pos = int(pos)
}

// SeekRel repositions the cursor relative to its current offset.
func (r *Reader) SeekRel(delta int64) {
	r.pos += int(delta)
}
