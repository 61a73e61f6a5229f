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

// Package memory models the 8080's flat 64 KiB address space.
package memory

const (
	// Capacity is the size of the address space a 8080 can reach.
	Capacity = 1 << 16

	// VRAMStart and VRAMEnd bound the video RAM window exposed to an
	// external rasterizer (Midway-style cabinets map their bitmap here).
	VRAMStart = 0x2400
	VRAMEnd   = 0x3FFF
)

// Memory is the flat, zero-initialized byte array backing the bus. Reads
// outside the address space return 0; writes outside it are dropped. The
// 8080 itself has no exception path for a bad address, so clamping here
// instead of erroring keeps the contract matching real hardware.
type Memory struct {
	bytes [Capacity]byte
}

// New returns a freshly zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr, or 0 if addr is out of range.
func (m *Memory) Read(addr uint16) byte {
	return m.bytes[addr]
}

// Write stores value at addr. Out-of-range addresses are impossible by
// construction (addr is a uint16), so the only clamping this performs is
// implicit in the type.
func (m *Memory) Write(addr uint16, value byte) {
	m.bytes[addr] = value
}

// LoadAt copies data into memory starting at addr, truncating anything
// that would run past the end of the address space.
func (m *Memory) LoadAt(addr uint16, data []byte) {
	for i, b := range data {
		a := int(addr) + i
		if a >= Capacity {
			break
		}
		m.bytes[a] = b
	}
}

// Reset zeroes every byte.
func (m *Memory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// VRAM returns a borrowed slice over the video RAM window, for an
// external rasterizer. The slice aliases live memory; callers must not
// retain it across a Reset.
func (m *Memory) VRAM() []byte {
	return m.bytes[VRAMStart : VRAMEnd+1]
}
