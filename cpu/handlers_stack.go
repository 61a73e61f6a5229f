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

// Stack family. PUSH/POP address BC, DE, HL by register-pair code and
// PSW by the dedicated code 3 (the only place PSW is legal).

func pushHandler(rp uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		var v uint16
		switch rp {
		case 0:
			v = c.BC()
		case 1:
			v = c.DE()
		case 2:
			v = c.HL()
		default:
			v = c.PSW()
		}
		c.push16(b, v)
		return 11
	}
}

func popHandler(rp uint8) handlerFunc {
	return func(c *CPU, b Bus, lo, hi uint8) uint8 {
		v := c.pop16(b)
		switch rp {
		case 0:
			c.SetBC(v)
		case 1:
			c.SetDE(v)
		case 2:
			c.SetHL(v)
		default:
			c.SetPSW(v)
		}
		return 10
	}
}
