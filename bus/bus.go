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

// Package bus couples a CPU to memory and exactly one I/O device, and
// buffers a single pending interrupt between the driver loop and the CPU.
package bus

import (
	"github.com/mg-emu/i8080/iodevice"
	"github.com/mg-emu/i8080/memory"
)

// Bus transmits data between the CPU and the rest of the system. It owns
// its Memory and I/O device exclusively; nothing swaps the device after
// construction — a new emulator builds a new bus.
type Bus struct {
	mem *memory.Memory
	io  iodevice.Device

	pending    uint8
	hasPending bool
}

// New creates a bus with fresh, zeroed memory and the given I/O device. A
// nil device falls back to iodevice.Null.
func New(io iodevice.Device) *Bus {
	if io == nil {
		io = iodevice.Null{}
	}
	return &Bus{
		mem: memory.New(),
		io:  io,
	}
}

// Memory exposes the underlying Memory, mainly so callers can LoadAt a ROM
// or inspect VRAM without routing every access through the bus.
func (b *Bus) Memory() *memory.Memory {
	return b.mem
}

// Read returns the byte at addr.
func (b *Bus) Read(addr uint16) uint8 {
	return b.mem.Read(addr)
}

// Write stores value at addr.
func (b *Bus) Write(addr uint16, value uint8) {
	b.mem.Write(addr, value)
}

// Input reads a byte from the attached I/O device.
func (b *Bus) Input(port uint8) uint8 {
	return b.io.Input(port)
}

// Output writes a byte to the attached I/O device.
func (b *Bus) Output(port uint8, value uint8) {
	b.io.Output(port, value)
}

// RequestInterrupt latches opcode as the pending interrupt, overwriting
// whatever was previously pending. Only one interrupt is ever buffered.
func (b *Bus) RequestInterrupt(opcode uint8) {
	b.pending = opcode
	b.hasPending = true
}

// PeekInterrupt reports the pending interrupt opcode without consuming it.
func (b *Bus) PeekInterrupt() (opcode uint8, ok bool) {
	return b.pending, b.hasPending
}

// TakeInterrupt consumes and returns the pending interrupt opcode, if any.
func (b *Bus) TakeInterrupt() (opcode uint8, ok bool) {
	opcode, ok = b.pending, b.hasPending
	b.hasPending = false
	return
}

// ClearInterrupt drops any pending interrupt without consuming it for
// execution. Used by Reset to leave the bus in a known state.
func (b *Bus) ClearInterrupt() {
	b.hasPending = false
}

// Reset clears memory and any pending interrupt. The I/O device is left
// alone — its ports are platform state, not CPU state.
func (b *Bus) Reset() {
	b.mem.Reset()
	b.ClearInterrupt()
}
