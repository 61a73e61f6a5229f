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

// Package cpu emulates the Intel 8080 from a software perspective: its
// registers, flags, and the 256-entry instruction table that drives
// Step. It knows nothing about what is attached to the bus beyond the
// small Bus interface below.
package cpu

// Flag bits of the packed PSW byte. Bit 1 is a fixed one, bits 3 and 5
// are fixed zero; they are enforced on every flag update, not just reset.
const (
	FlagCarry  uint8 = 0x01
	flagOne    uint8 = 0x02
	FlagParity uint8 = 0x04
	flagZero3  uint8 = 0x08
	FlagAux    uint8 = 0x10
	flagZero5  uint8 = 0x20
	FlagZero   uint8 = 0x40
	FlagSign   uint8 = 0x80

	resetFlags = flagOne
	fixedMask  = flagZero3 | flagZero5 // always clear
)

// Bus is everything the CPU needs from the rest of the system: memory,
// I/O ports, and the single-slot pending interrupt. bus.Bus satisfies
// this, but the CPU only depends on the interface so it can be driven by
// a test double.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
	Input(port uint8) uint8
	Output(port uint8, value uint8)
	PeekInterrupt() (opcode uint8, ok bool)
	TakeInterrupt() (opcode uint8, ok bool)
}

// CPU holds the entire architectural state of an 8080.
type CPU struct {
	A, B, C, D, E, H, L uint8
	Flags               uint8
	SP, PC              uint16

	Halted bool
	IE     bool

	Cycles uint64

	// Snapshot of the most recently decoded instruction, kept for
	// disassembly/REPL display rather than anything execution depends on.
	CurrentPC       uint16
	CurrentOpcode   uint8
	CurrentMnemonic string
	CurrentSize     uint8

	table [256]instruction

	logger    Logger
	logEnable bool
}

// New returns a CPU in the fully zeroed, powered-off state. Use Reset to
// bring it to the power-on state the 8080 defines.
func New() *CPU {
	return &CPU{
		table:  buildTable(),
		logger: noopLogger{},
	}
}

// Reset zeroes every register, sets Flags to the power-on value 0x02,
// clears Halted, enables interrupts, clears the cycle counter, and sets
// PC to 0.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.Flags = resetFlags
	c.SP = 0
	c.PC = 0
	c.Halted = false
	c.IE = true
	c.Cycles = 0
	c.CurrentPC = 0
	c.CurrentOpcode = 0
	c.CurrentMnemonic = ""
	c.CurrentSize = 0
}

// GetFlag reports whether every bit in mask is set.
func (c *CPU) GetFlag(mask uint8) bool {
	return c.Flags&mask == mask
}

// SetFlag sets or clears the bits in mask, then re-applies the fixed
// bits (1 always set, 3 and 5 always clear) that the PSW layout requires.
func (c *CPU) SetFlag(mask uint8, set bool) {
	if set {
		c.Flags |= mask
	} else {
		c.Flags &^= mask
	}
	c.normalizeFlags()
}

func (c *CPU) normalizeFlags() {
	c.Flags = (c.Flags | flagOne) &^ fixedMask
}

// setZSP derives the Zero, Sign, and Parity flags from a result byte, the
// common tail of most data-processing instructions.
func (c *CPU) setZSP(result uint8) {
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSign, result&0x80 != 0)
	c.SetFlag(FlagParity, parity(result))
}

// parity reports whether v has an even number of set bits (the 8080's
// convention: Parity flag set means even parity).
func parity(v uint8) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}

// Register pair accessors. BC, DE, HL are bijective with their halves by
// construction; M addressing (memory at HL) is handled by callers via
// bus.Read(c.HL()).

func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

func (c *CPU) SetBC(v uint16) { c.B, c.C = uint8(v>>8), uint8(v) }
func (c *CPU) SetDE(v uint16) { c.D, c.E = uint8(v>>8), uint8(v) }
func (c *CPU) SetHL(v uint16) { c.H, c.L = uint8(v>>8), uint8(v) }

// PSW returns the 16-bit Program Status Word: A in the high byte, the
// flag byte (with its fixed bits already correct) in the low byte.
func (c *CPU) PSW() uint16 {
	return uint16(c.A)<<8 | uint16(c.Flags)
}

// SetPSW loads A and Flags from a popped PSW, forcing the flag byte's
// fixed bits regardless of what was on the stack.
func (c *CPU) SetPSW(v uint16) {
	c.A = uint8(v >> 8)
	c.Flags = (uint8(v) | flagOne) &^ fixedMask
}

// push16/pop16 implement the stack discipline shared by PUSH/POP/CALL/RET
// and RST: SP grows downward, high byte at the higher address.
func (c *CPU) push16(b Bus, v uint16) {
	c.SP -= 2
	b.Write(c.SP+1, uint8(v>>8))
	b.Write(c.SP, uint8(v))
}

func (c *CPU) pop16(b Bus) uint16 {
	lo := uint16(b.Read(c.SP))
	hi := uint16(b.Read(c.SP + 1))
	c.SP += 2
	return hi<<8 | lo
}

// SetLogger installs a trace sink for Step; nil restores the no-op
// default. SetLogEnable toggles whether Step actually calls it.
func (c *CPU) SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	c.logger = l
}

func (c *CPU) SetLogEnable(enable bool) {
	c.logEnable = enable
}
