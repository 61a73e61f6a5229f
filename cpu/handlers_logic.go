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

// Logical family. ANA/ANI carry the real 8080 quirk where AC reflects
// the OR of operand bit 3 with A's bit 3, rather than a genuine carry;
// XRA/ORA and their immediates always clear AC. All of them clear CY.
// CMP/CPI perform a subtract for the flags only and discard the result.

func anaHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		operand := srcValue(c, b, code)
		aux := (c.A|operand)&0x08 != 0
		c.A &= operand
		c.SetFlag(FlagCarry, false)
		c.SetFlag(FlagAux, aux)
		c.setZSP(c.A)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func xraHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		c.A ^= srcValue(c, b, code)
		c.SetFlag(FlagCarry, false)
		c.SetFlag(FlagAux, false)
		c.setZSP(c.A)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func oraHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		c.A |= srcValue(c, b, code)
		c.SetFlag(FlagCarry, false)
		c.SetFlag(FlagAux, false)
		c.setZSP(c.A)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func cmpHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		res, cy, ac := sub8(c.A, srcValue(c, b, code), 0)
		c.SetFlag(FlagCarry, cy)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func opANI(c *CPU, b Bus, lo, hi uint8) uint8 {
	aux := (c.A|lo)&0x08 != 0
	c.A &= lo
	c.SetFlag(FlagCarry, false)
	c.SetFlag(FlagAux, aux)
	c.setZSP(c.A)
	return 7
}

func opXRI(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.A ^= lo
	c.SetFlag(FlagCarry, false)
	c.SetFlag(FlagAux, false)
	c.setZSP(c.A)
	return 7
}

func opORI(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.A |= lo
	c.SetFlag(FlagCarry, false)
	c.SetFlag(FlagAux, false)
	c.setZSP(c.A)
	return 7
}

func opCPI(c *CPU, b Bus, lo, hi uint8) uint8 {
	res, cy, ac := sub8(c.A, lo, 0)
	c.SetFlag(FlagCarry, cy)
	c.SetFlag(FlagAux, ac)
	c.setZSP(res)
	return 7
}

func opCMA(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.A = ^c.A
	return 4
}
