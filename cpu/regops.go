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

// The 8080 packs register operands into 3-bit fields with a fixed
// mapping: 000=B 001=C 010=D 011=E 100=H 101=L 110=M (memory at HL)
// 111=A. srcValue/setDst centralize that mapping so every instruction
// family that takes an "r" or "M" operand shares one implementation.

func srcValue(c *CPU, b Bus, code uint8) uint8 {
	switch code {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return b.Read(c.HL())
	default:
		return c.A
	}
}

func setDst(c *CPU, b Bus, code uint8, v uint8) {
	switch code {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		b.Write(c.HL(), v)
	default:
		c.A = v
	}
}

func regName(code uint8) string {
	switch code {
	case 0:
		return "B"
	case 1:
		return "C"
	case 2:
		return "D"
	case 3:
		return "E"
	case 4:
		return "H"
	case 5:
		return "L"
	case 6:
		return "M"
	default:
		return "A"
	}
}

// rpGet/rpSet map the 2-bit register-pair field used by LXI/INX/DCX/DAD
// (00=BC 01=DE 10=HL 11=SP).

func rpGet(c *CPU, rp uint8) uint16 {
	switch rp {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func rpSet(c *CPU, rp uint8, v uint16) {
	switch rp {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

func rpName(rp uint8) string {
	switch rp {
	case 0:
		return "B"
	case 1:
		return "D"
	case 2:
		return "H"
	default:
		return "SP"
	}
}

// add8/sub8 perform the 8-bit ALU operation in a wider domain so the
// carry and auxiliary-carry outs are observable, per the canonical 8080
// reference: AC reflects a carry/borrow across bit 3.

func add8(a, operand, carryIn uint8) (result uint8, carry, aux bool) {
	sum := uint16(a) + uint16(operand) + uint16(carryIn)
	result = uint8(sum)
	carry = sum > 0xFF
	aux = (a&0x0F)+(operand&0x0F)+carryIn > 0x0F
	return
}

func sub8(a, operand, borrowIn uint8) (result uint8, borrow, aux bool) {
	diff := int(a) - int(operand) - int(borrowIn)
	result = uint8(diff)
	borrow = diff < 0
	aux = int(a&0x0F)-int(operand&0x0F)-int(borrowIn) < 0
	return
}
