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

// INR/DCR touch Z, S, P, AC but leave CY alone — the 8080 can't signal a
// carry out of a single-register increment. INX/DCX/DAD operate on the
// 16-bit pair; only DAD affects a flag (CY, on 16-bit overflow).

func inrHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		v := srcValue(c, b, code)
		res, _, ac := add8(v, 1, 0)
		setDst(c, b, code, res)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 10
		}
		return 5
	}
}

func dcrHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		v := srcValue(c, b, code)
		res, _, ac := sub8(v, 1, 0)
		setDst(c, b, code, res)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 10
		}
		return 5
	}
}

func inxHandler(rp uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		rpSet(c, rp, rpGet(c, rp)+1)
		return 5
	}
}

func dcxHandler(rp uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		rpSet(c, rp, rpGet(c, rp)-1)
		return 5
	}
}

func dadHandler(rp uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		hl := uint32(c.HL())
		operand := uint32(rpGet(c, rp))
		sum := hl + operand
		c.SetHL(uint16(sum))
		c.SetFlag(FlagCarry, sum > 0xFFFF)
		return 10
	}
}
