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

// 8-bit arithmetic family. All of ADD/ADC/SUB/SBB (register or M form)
// and their immediate counterparts set Z, S, P, CY, AC; ADC/SBB fold in
// the incoming carry.

func addHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		res, cy, ac := add8(c.A, srcValue(c, b, code), 0)
		c.A = res
		c.SetFlag(FlagCarry, cy)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func adcHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		carryIn := uint8(0)
		if c.GetFlag(FlagCarry) {
			carryIn = 1
		}
		res, cy, ac := add8(c.A, srcValue(c, b, code), carryIn)
		c.A = res
		c.SetFlag(FlagCarry, cy)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func subHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		res, cy, ac := sub8(c.A, srcValue(c, b, code), 0)
		c.A = res
		c.SetFlag(FlagCarry, cy)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func sbbHandler(code uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		borrowIn := uint8(0)
		if c.GetFlag(FlagCarry) {
			borrowIn = 1
		}
		res, cy, ac := sub8(c.A, srcValue(c, b, code), borrowIn)
		c.A = res
		c.SetFlag(FlagCarry, cy)
		c.SetFlag(FlagAux, ac)
		c.setZSP(res)
		if code == 6 {
			return 7
		}
		return 4
	}
}

func opADI(c *CPU, b Bus, lo, hi uint8) uint8 {
	res, cy, ac := add8(c.A, lo, 0)
	c.A = res
	c.SetFlag(FlagCarry, cy)
	c.SetFlag(FlagAux, ac)
	c.setZSP(res)
	return 7
}

func opACI(c *CPU, b Bus, lo, hi uint8) uint8 {
	carryIn := uint8(0)
	if c.GetFlag(FlagCarry) {
		carryIn = 1
	}
	res, cy, ac := add8(c.A, lo, carryIn)
	c.A = res
	c.SetFlag(FlagCarry, cy)
	c.SetFlag(FlagAux, ac)
	c.setZSP(res)
	return 7
}

func opSUI(c *CPU, b Bus, lo, hi uint8) uint8 {
	res, cy, ac := sub8(c.A, lo, 0)
	c.A = res
	c.SetFlag(FlagCarry, cy)
	c.SetFlag(FlagAux, ac)
	c.setZSP(res)
	return 7
}

func opSBI(c *CPU, b Bus, lo, hi uint8) uint8 {
	borrowIn := uint8(0)
	if c.GetFlag(FlagCarry) {
		borrowIn = 1
	}
	res, cy, ac := sub8(c.A, lo, borrowIn)
	c.A = res
	c.SetFlag(FlagCarry, cy)
	c.SetFlag(FlagAux, ac)
	c.setZSP(res)
	return 7
}

// opDAA implements the combined decimal-adjust rule: the low nibble is
// corrected when it exceeds 9 *or* AC is already set, independently of
// the high-nibble correction that follows. DAA only ever sets CY, never
// clears it.
func opDAA(c *CPU, b Bus, lo, hi uint8) uint8 {
	a := c.A
	cy := c.GetFlag(FlagCarry)
	ac := c.GetFlag(FlagAux)

	if a&0x0F > 9 || ac {
		newAux := (a&0x0F)+6 > 0x0F
		a += 6
		c.SetFlag(FlagAux, newAux)
	} else {
		c.SetFlag(FlagAux, false)
	}

	if (a>>4) > 9 || cy {
		a += 0x60
		c.SetFlag(FlagCarry, true)
	}

	c.A = a
	c.setZSP(a)
	return 4
}
