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

// Rotate family: only CY is affected. RLC/RRC rotate A in isolation;
// RAL/RAR rotate through the carry flag, making a 9-bit ring.

func opRLC(c *CPU, b Bus, lo, hi uint8) uint8 {
	bit7 := c.A & 0x80
	c.A = c.A<<1 | bit7>>7
	c.SetFlag(FlagCarry, bit7 != 0)
	return 4
}

func opRRC(c *CPU, b Bus, lo, hi uint8) uint8 {
	bit0 := c.A & 0x01
	c.A = c.A>>1 | bit0<<7
	c.SetFlag(FlagCarry, bit0 != 0)
	return 4
}

func opRAL(c *CPU, b Bus, lo, hi uint8) uint8 {
	carryIn := uint8(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}
	bit7 := c.A & 0x80
	c.A = c.A<<1 | carryIn
	c.SetFlag(FlagCarry, bit7 != 0)
	return 4
}

func opRAR(c *CPU, b Bus, lo, hi uint8) uint8 {
	carryIn := uint8(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 0x80
	}
	bit0 := c.A & 0x01
	c.A = c.A>>1 | carryIn
	c.SetFlag(FlagCarry, bit0 != 0)
	return 4
}
