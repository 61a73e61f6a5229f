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

// Data transfer family: none of these touch the flags.

func opNOP(c *CPU, b Bus, lo, hi uint8) uint8 {
	return 4
}

func opHLT(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.Halted = true
	return 7
}

func movHandler(dst, src uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		setDst(c, b, dst, srcValue(c, b, src))
		if dst == 6 || src == 6 {
			return 7
		}
		return 5
	}
}

func mviHandler(dst uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		setDst(c, b, dst, lo)
		if dst == 6 {
			return 10
		}
		return 7
	}
}

func lxiHandler(rp uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		rpSet(c, rp, uint16(hi)<<8|uint16(lo))
		return 10
	}
}

func opLDA(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.A = b.Read(uint16(hi)<<8 | uint16(lo))
	return 13
}

func opSTA(c *CPU, b Bus, lo, hi uint8) uint8 {
	b.Write(uint16(hi)<<8|uint16(lo), c.A)
	return 13
}

func opLDAXB(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.A = b.Read(c.BC())
	return 7
}

func opLDAXD(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.A = b.Read(c.DE())
	return 7
}

func opSTAXB(c *CPU, b Bus, lo, hi uint8) uint8 {
	b.Write(c.BC(), c.A)
	return 7
}

func opSTAXD(c *CPU, b Bus, lo, hi uint8) uint8 {
	b.Write(c.DE(), c.A)
	return 7
}

func opLHLD(c *CPU, b Bus, lo, hi uint8) uint8 {
	addr := uint16(hi)<<8 | uint16(lo)
	c.L = b.Read(addr)
	c.H = b.Read(addr + 1)
	return 16
}

func opSHLD(c *CPU, b Bus, lo, hi uint8) uint8 {
	addr := uint16(hi)<<8 | uint16(lo)
	b.Write(addr, c.L)
	b.Write(addr+1, c.H)
	return 16
}

func opXCHG(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	return 4
}

func opXTHL(c *CPU, b Bus, lo, hi uint8) uint8 {
	spLo := b.Read(c.SP)
	spHi := b.Read(c.SP + 1)
	b.Write(c.SP, c.L)
	b.Write(c.SP+1, c.H)
	c.L, c.H = spLo, spHi
	return 18
}

func opSPHL(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.SP = c.HL()
	return 5
}

func opPCHL(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.PC = c.HL()
	return 5
}
