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

package cpu

import "fmt"

// StepResult reports what Step just did, for the REPL/TUI and for tests
// that want to assert on more than the resulting CPU state.
type StepResult struct {
	PC        uint16
	Opcode    uint8
	Operands  []uint8
	Mnemonic  string
	Cycles    uint8
	Halted    bool
	Interrupt bool // true when the executed opcode came from an interrupt ack
}

// Step runs exactly one instruction: if halted and no interrupt wakes it,
// it charges idleCycles and returns without fetching. Otherwise it
// follows the fetch/decode/execute cycle, checking for a pending
// interrupt first. An interrupt that arrives while halted both clears
// Halted and executes the injected opcode in the same Step call; PC is
// never advanced for the injected opcode, since it was never fetched
// from memory in the first place.
func (c *CPU) Step(b Bus) (StepResult, error) {
	if _, ok := b.PeekInterrupt(); ok && (c.IE || c.Halted) {
		opcode, _ := b.TakeInterrupt()
		c.Halted = false
		c.IE = false
		return c.execute(b, c.PC, opcode, true)
	}
	return c.stepNormal(b)
}

// idleCycles is the fixed cost charged for a Step call that finds the CPU
// halted with nothing to wake it: the 8080 keeps clocking internally even
// though no instruction is fetched.
const idleCycles = 4

func (c *CPU) stepNormal(b Bus) (StepResult, error) {
	if c.Halted {
		c.Cycles += idleCycles
		return StepResult{PC: c.PC, Cycles: idleCycles, Halted: true}, nil
	}
	pc := c.PC
	opcode := b.Read(pc)
	return c.execute(b, pc, opcode, false)
}

// execute decodes and runs a single opcode already fetched (or injected)
// at pc. It does not itself fetch the opcode byte for the interrupt-ack
// path, since that byte never lived in memory.
func (c *CPU) execute(b Bus, pc uint16, opcode uint8, injected bool) (StepResult, error) {
	inst := c.table[opcode]
	if inst.fn == nil {
		return StepResult{}, &DecodeError{Opcode: opcode, PC: pc}
	}

	var lo, hi uint8
	if !injected {
		if inst.size >= 2 {
			lo = b.Read(pc + 1)
		}
		if inst.size >= 3 {
			hi = b.Read(pc + 2)
		}
	}

	startPC := c.PC
	cycles := inst.fn(c, b, lo, hi)

	// HLT freezes pc at its own address, the same way real 8080 hardware
	// keeps re-fetching the halt opcode instead of moving past it; every
	// other instruction that leaves pc untouched advances normally.
	if !injected && !c.Halted && c.PC == startPC {
		c.PC += uint16(inst.size)
	}
	c.Cycles += uint64(cycles)

	c.CurrentPC = pc
	c.CurrentOpcode = opcode
	c.CurrentMnemonic = inst.name
	c.CurrentSize = inst.size

	if c.logEnable {
		c.logger.Log(fmt.Sprintf("%04X: %02X %-12s cyc=%-3d pc'=%04X", pc, opcode, inst.name, cycles, c.PC))
	}

	operands := make([]uint8, 0, 2)
	if inst.size >= 2 {
		operands = append(operands, lo)
	}
	if inst.size >= 3 {
		operands = append(operands, hi)
	}

	return StepResult{
		PC:        pc,
		Opcode:    opcode,
		Operands:  operands,
		Mnemonic:  inst.name,
		Cycles:    cycles,
		Halted:    c.Halted,
		Interrupt: injected,
	}, nil
}
