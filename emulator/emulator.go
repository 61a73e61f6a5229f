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

// Package emulator drives a cpu.CPU against a bus.Bus: it owns the ROM
// image, the breakpoint set, and the run loop that interleaves stepping
// with budget and breakpoint checks.
package emulator

import (
	"errors"
	"fmt"

	"github.com/mg-emu/i8080/bus"
	"github.com/mg-emu/i8080/cpu"
	"github.com/mg-emu/i8080/iodevice"
)

// ErrResetPrecondition is returned by Reset when no ROM has been inserted.
var ErrResetPrecondition = errors.New("emulator: reset requires a ROM to be inserted first")

// StopReason explains why RunBlocking returned control to the caller.
type StopReason struct {
	Kind Kind
	PC   uint16 // meaningful only when Kind == StopBreakpoint
}

// Kind enumerates the terminal conditions RunBlocking recognizes.
type Kind int

const (
	StopCycleBudgetExhausted Kind = iota
	StopBreakpoint
	StopHalted
)

func (s StopReason) String() string {
	switch s.Kind {
	case StopCycleBudgetExhausted:
		return "CycleBudgetExhausted"
	case StopBreakpoint:
		return fmt.Sprintf("Breakpoint(%#04x)", s.PC)
	case StopHalted:
		return "Halted"
	default:
		return "Unknown"
	}
}

// Emulator owns a CPU, a Bus, an optional ROM image, and a breakpoint set.
type Emulator struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	rom         []byte
	breakpoints map[uint16]struct{}
}

// New constructs an Emulator with a fresh, powered-off CPU and a Bus
// wired to the given I/O device (nil selects iodevice.Null).
func New(io iodevice.Device) *Emulator {
	return &Emulator{
		CPU:         cpu.New(),
		Bus:         bus.New(io),
		breakpoints: make(map[uint16]struct{}),
	}
}

// InsertROM stores the ROM image without any other side effect; it takes
// effect on the next Reset.
func (e *Emulator) InsertROM(data []byte) {
	e.rom = append([]byte(nil), data...)
}

// RemoveROM clears the stored image; memory already loaded is untouched.
func (e *Emulator) RemoveROM() {
	e.rom = nil
}

// HasROM reports whether a ROM image is currently inserted.
func (e *Emulator) HasROM() bool {
	return e.rom != nil
}

// Reset requires a ROM to be present, zeroes CPU state, resets the Bus
// (memory and pending interrupt, not the I/O device), and copies the ROM
// to address 0.
func (e *Emulator) Reset() error {
	if e.rom == nil {
		return ErrResetPrecondition
	}
	e.CPU.Reset()
	e.Bus.Reset()
	e.Bus.Memory().LoadAt(0, e.rom)
	return nil
}

// AddBreakpoint adds addr to the breakpoint set.
func (e *Emulator) AddBreakpoint(addr uint16) {
	e.breakpoints[addr] = struct{}{}
}

// RemoveBreakpoint removes addr from the breakpoint set, if present.
func (e *Emulator) RemoveBreakpoint(addr uint16) {
	delete(e.breakpoints, addr)
}

// Breakpoints returns the current breakpoint addresses in no particular
// order.
func (e *Emulator) Breakpoints() []uint16 {
	out := make([]uint16, 0, len(e.breakpoints))
	for addr := range e.breakpoints {
		out = append(out, addr)
	}
	return out
}

func (e *Emulator) hasBreakpoint(addr uint16) bool {
	_, ok := e.breakpoints[addr]
	return ok
}

// Step runs exactly one CPU step and returns its result.
func (e *Emulator) Step() (cpu.StepResult, error) {
	return e.CPU.Step(e.Bus)
}

// RunBlocking steps the CPU until one of three conditions is met: the
// cycle budget (if non-nil) is met or exceeded, the next instruction's pc
// matches a breakpoint (checked before that instruction executes), or a
// step finds the CPU already halted with nothing pending to wake it (that
// step's idle cycles are charged before returning). It returns the
// StopReason, or an error if a step faults (e.g. DecodeError).
func (e *Emulator) RunBlocking(budget *uint64) (StopReason, error) {
	var spent uint64
	for {
		if e.hasBreakpoint(e.CPU.PC) {
			return StopReason{Kind: StopBreakpoint, PC: e.CPU.PC}, nil
		}

		wasHalted := e.CPU.Halted
		res, err := e.Step()
		if err != nil {
			return StopReason{}, err
		}
		spent += uint64(res.Cycles)

		if wasHalted && e.CPU.Halted {
			if _, pending := e.Bus.PeekInterrupt(); !pending {
				return StopReason{Kind: StopHalted}, nil
			}
		}

		if budget != nil && spent >= *budget {
			return StopReason{Kind: StopCycleBudgetExhausted}, nil
		}
	}
}
