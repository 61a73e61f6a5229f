// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package midway implements the iodevice.Device a Midway-style arcade
// board presents to its 8080: three 8-bit input latches and a 16-bit
// hardware bit-shift register used to extract rotated byte slices
// cheaply, offloading work the CPU itself would be too slow to do.
package midway

// LogicalInput names a player control, independent of which latch bit it
// happens to be wired to.
type LogicalInput int

const (
	Coin LogicalInput = iota
	Tilt
	Start2
	Start1
	Fire
	Left
	Right
)

type inputMapping struct {
	latch int
	bit   uint8
}

var inputMap = map[LogicalInput]inputMapping{
	Coin:   {0, 0},
	Tilt:   {0, 2},
	Start2: {1, 1},
	Start1: {1, 2},
	Fire:   {1, 4},
	Left:   {1, 5},
	Right:  {1, 6},
}

// Fixture is the Midway I/O device: ports 0-2 read the input latches,
// port 3 reads the shifted byte, port 2 (out) sets the shift offset, and
// ports 4/5 (out) load the shift register's low/high bytes.
type Fixture struct {
	latches [3]uint8

	shiftReg uint16
	offset   uint8
}

// New returns a Fixture with all latches clear and the shift register
// zeroed.
func New() *Fixture {
	return &Fixture{}
}

// SetBit sets bit n (0..7) of latch, ignoring out-of-range requests.
func (f *Fixture) SetBit(latch int, n uint8) {
	f.WriteBit(latch, n, true)
}

// ClearBit clears bit n (0..7) of latch, ignoring out-of-range requests.
func (f *Fixture) ClearBit(latch int, n uint8) {
	f.WriteBit(latch, n, false)
}

// WriteBit sets or clears bit n of latch depending on state, ignoring
// out-of-range latch or bit indices.
func (f *Fixture) WriteBit(latch int, n uint8, state bool) {
	if latch < 0 || latch >= len(f.latches) || n > 7 {
		return
	}
	if state {
		f.latches[latch] |= 1 << n
	} else {
		f.latches[latch] &^= 1 << n
	}
}

// Latch returns the raw byte of one of the three input latches (0..2),
// or 0 for an out-of-range index.
func (f *Fixture) Latch(n int) uint8 {
	if n < 0 || n >= len(f.latches) {
		return 0
	}
	return f.latches[n]
}

// SetLatch overwrites an entire input latch (0..2) at once, ignoring an
// out-of-range index.
func (f *Fixture) SetLatch(n int, v uint8) {
	if n < 0 || n >= len(f.latches) {
		return
	}
	f.latches[n] = v
}

// Offset returns the currently stored shift offset.
func (f *Fixture) Offset() uint8 { return f.offset }

// ShiftRegister returns the current 16-bit shift register value.
func (f *Fixture) ShiftRegister() uint16 { return f.shiftReg }

// Press sets the latch bit a logical input is wired to.
func (f *Fixture) Press(input LogicalInput) {
	m := inputMap[input]
	f.SetBit(m.latch, m.bit)
}

// Release clears the latch bit a logical input is wired to.
func (f *Fixture) Release(input LogicalInput) {
	m := inputMap[input]
	f.ClearBit(m.latch, m.bit)
}

// WriteLow replaces the shift register's low byte.
func (f *Fixture) WriteLow(v uint8) {
	f.shiftReg = f.shiftReg&0xFF00 | uint16(v)
}

// WriteHigh replaces the shift register's high byte.
func (f *Fixture) WriteHigh(v uint8) {
	f.shiftReg = f.shiftReg&0x00FF | uint16(v)<<8
}

// SetOffset stores the 3-bit shift offset; only the low 3 bits of v are
// significant.
func (f *Fixture) SetOffset(v uint8) {
	f.offset = v & 0x07
}

// ReadShifted returns the byte the current offset selects out of the
// 16-bit shift register.
func (f *Fixture) ReadShifted() uint8 {
	return uint8((f.shiftReg >> (8 - f.offset)) & 0xFF)
}

// Input implements iodevice.Device: ports 0-2 read the latches, port 3
// reads the shifted byte, and any other port reads 0.
func (f *Fixture) Input(port uint8) uint8 {
	switch port {
	case 0, 1, 2:
		return f.latches[port]
	case 3:
		return f.ReadShifted()
	default:
		return 0
	}
}

// Output implements iodevice.Device: port 2 sets the shift offset, ports
// 4/5 load the shift register's low/high byte, and any other port is a
// no-op.
func (f *Fixture) Output(port uint8, value uint8) {
	switch port {
	case 2:
		f.SetOffset(value)
	case 4:
		f.WriteLow(value)
	case 5:
		f.WriteHigh(value)
	}
}
