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

// handlerFunc executes one instruction given its up-to-two trailing operand
// bytes (zero-filled when the instruction is shorter) and returns the
// number of cycles actually charged. Conditional control transfers return
// their own taken/not-taken cost rather than a table constant.
type handlerFunc func(c *CPU, b Bus, lo, hi uint8) uint8

// instruction is one row of the 256-entry opcode table: its disassembly
// name, encoded length in bytes, base cycle cost (the cost handlerFunc
// returns for unconditional ops; conditional ops override it), and handler.
type instruction struct {
	name   string
	size   uint8
	cycles uint8
	fn     handlerFunc
}

// regFieldNames, rpFieldNames and ccFieldNames in opcode-field order, used only to build
// disassembly strings in buildTable.
var regFieldNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var rpFieldNames = [4]string{"B", "D", "H", "SP"}
var ccFieldNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// buildTable assembles the complete, total 256-entry instruction table.
// Every opcode decodes to something: the regular families are generated
// by looping over their bit-field structure, and the handful of singleton
// and alias opcodes (NOP's seven undocumented duplicates among them) are
// assigned explicitly afterward.
func buildTable() [256]instruction {
	var t [256]instruction

	// MOV r,r' — 0x40-0x7F, all 64 combinations except 0x76 (HLT).
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst := uint8((opcode >> 3) & 7)
		src := uint8(opcode & 7)
		cycles := uint8(5)
		if dst == 6 || src == 6 {
			cycles = 7
		}
		t[opcode] = instruction{
			name:   "MOV " + regFieldNames[dst] + "," + regFieldNames[src],
			size:   1,
			cycles: cycles,
			fn:     movHandler(dst, src),
		}
	}
	t[0x76] = instruction{"HLT", 1, 7, opHLT}

	// MVI r,d8 — dst in bits 5:3, opcode = 0x06 | dst<<3.
	for dst := uint8(0); dst < 8; dst++ {
		opcode := 0x06 | dst<<3
		cycles := uint8(7)
		if dst == 6 {
			cycles = 10
		}
		t[opcode] = instruction{"MVI " + regFieldNames[dst] + ",d8", 2, cycles, mviHandler(dst)}
	}

	// LXI rp,d16 / INX rp / DCX rp / DAD rp — rp in bits 5:4.
	for rp := uint8(0); rp < 4; rp++ {
		base := rp << 4
		t[base|0x01] = instruction{"LXI " + rpFieldNames[rp] + ",d16", 3, 10, lxiHandler(rp)}
		t[base|0x03] = instruction{"INX " + rpFieldNames[rp], 1, 5, inxHandler(rp)}
		t[base|0x0B] = instruction{"DCX " + rpFieldNames[rp], 1, 5, dcxHandler(rp)}
		t[base|0x09] = instruction{"DAD " + rpFieldNames[rp], 1, 10, dadHandler(rp)}
	}

	// INR r / DCR r — dst in bits 5:3, opcode = dst<<3 | {0x04,0x05}.
	for dst := uint8(0); dst < 8; dst++ {
		cycles := uint8(5)
		if dst == 6 {
			cycles = 10
		}
		t[dst<<3|0x04] = instruction{"INR " + regFieldNames[dst], 1, cycles, inrHandler(dst)}
		t[dst<<3|0x05] = instruction{"DCR " + regFieldNames[dst], 1, cycles, dcrHandler(dst)}
	}

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r — 0x80-0xBF, src in bits 2:0.
	for i := uint8(0); i < 8; i++ {
		cycles := uint8(4)
		if i == 6 {
			cycles = 7
		}
		t[0x80|i] = instruction{"ADD " + regFieldNames[i], 1, cycles, addHandler(i)}
		t[0x88|i] = instruction{"ADC " + regFieldNames[i], 1, cycles, adcHandler(i)}
		t[0x90|i] = instruction{"SUB " + regFieldNames[i], 1, cycles, subHandler(i)}
		t[0x98|i] = instruction{"SBB " + regFieldNames[i], 1, cycles, sbbHandler(i)}
		t[0xA0|i] = instruction{"ANA " + regFieldNames[i], 1, cycles, anaHandler(i)}
		t[0xA8|i] = instruction{"XRA " + regFieldNames[i], 1, cycles, xraHandler(i)}
		t[0xB0|i] = instruction{"ORA " + regFieldNames[i], 1, cycles, oraHandler(i)}
		t[0xB8|i] = instruction{"CMP " + regFieldNames[i], 1, cycles, cmpHandler(i)}
	}

	// Jcond/Ccond/Rcond/RST — cc or restart number n in bits 5:3.
	for cc := uint8(0); cc < 8; cc++ {
		t[0xC2|cc<<3] = instruction{"J" + ccFieldNames[cc] + " a16", 3, 10, jcondHandler(cc)}
		t[0xC4|cc<<3] = instruction{"C" + ccFieldNames[cc] + " a16", 3, 17, ccondHandler(cc)}
		t[0xC0|cc<<3] = instruction{"R" + ccFieldNames[cc], 1, 11, rcondHandler(cc)}
		t[0xC7|cc<<3] = instruction{fmt.Sprintf("RST %d", cc), 1, 11, rstHandler(cc)}
	}

	// PUSH/POP rp — 0xC1-0xF1/0xC5-0xF5, rp 3 means PSW instead of SP.
	pushPopNames := [4]string{"B", "D", "H", "PSW"}
	for rp := uint8(0); rp < 4; rp++ {
		t[0xC1|rp<<4] = instruction{"POP " + pushPopNames[rp], 1, 10, popHandler(rp)}
		t[0xC5|rp<<4] = instruction{"PUSH " + pushPopNames[rp], 1, 11, pushHandler(rp)}
	}

	// Immediate ALU ops — 0xC6,0xCE,0xD6,0xDE,0xE6,0xEE,0xF6,0xFE.
	t[0xC6] = instruction{"ADI d8", 2, 7, opADI}
	t[0xCE] = instruction{"ACI d8", 2, 7, opACI}
	t[0xD6] = instruction{"SUI d8", 2, 7, opSUI}
	t[0xDE] = instruction{"SBI d8", 2, 7, opSBI}
	t[0xE6] = instruction{"ANI d8", 2, 7, opANI}
	t[0xEE] = instruction{"XRI d8", 2, 7, opXRI}
	t[0xF6] = instruction{"ORI d8", 2, 7, opORI}
	t[0xFE] = instruction{"CPI d8", 2, 7, opCPI}

	// Remaining singleton opcodes not covered by a regular family.
	t[0x02] = instruction{"STAX B", 1, 7, opSTAXB}
	t[0x0A] = instruction{"LDAX B", 1, 7, opLDAXB}
	t[0x07] = instruction{"RLC", 1, 4, opRLC}
	t[0x0F] = instruction{"RRC", 1, 4, opRRC}
	t[0x12] = instruction{"STAX D", 1, 7, opSTAXD}
	t[0x1A] = instruction{"LDAX D", 1, 7, opLDAXD}
	t[0x17] = instruction{"RAL", 1, 4, opRAL}
	t[0x1F] = instruction{"RAR", 1, 4, opRAR}
	t[0x22] = instruction{"SHLD a16", 3, 16, opSHLD}
	t[0x2A] = instruction{"LHLD a16", 3, 16, opLHLD}
	t[0x27] = instruction{"DAA", 1, 4, opDAA}
	t[0x2F] = instruction{"CMA", 1, 4, opCMA}
	t[0x32] = instruction{"STA a16", 3, 13, opSTA}
	t[0x3A] = instruction{"LDA a16", 3, 13, opLDA}
	t[0x37] = instruction{"STC", 1, 4, opSTC}
	t[0x3F] = instruction{"CMC", 1, 4, opCMC}
	t[0xC3] = instruction{"JMP a16", 3, 10, opJMP}
	t[0xC9] = instruction{"RET", 1, 10, opRET}
	t[0xCD] = instruction{"CALL a16", 3, 17, opCALL}
	t[0xD3] = instruction{"OUT d8", 2, 10, opOUT}
	t[0xDB] = instruction{"IN d8", 2, 10, opIN}
	t[0xE3] = instruction{"XTHL", 1, 18, opXTHL}
	t[0xE9] = instruction{"PCHL", 1, 5, opPCHL}
	t[0xEB] = instruction{"XCHG", 1, 4, opXCHG}
	t[0xF3] = instruction{"DI", 1, 4, opDI}
	t[0xF9] = instruction{"SPHL", 1, 5, opSPHL}
	t[0xFB] = instruction{"EI", 1, 4, opEI}

	// NOP and its seven undocumented duplicates.
	for _, opcode := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		t[opcode] = instruction{"NOP", 1, 4, opNOP}
	}

	// CALL has three undocumented alias opcodes; RET and JMP have one each.
	for _, opcode := range []uint8{0xDD, 0xED, 0xFD} {
		t[opcode] = instruction{"CALL a16", 3, 17, opCALL}
	}
	t[0xD9] = instruction{"RET", 1, 10, opRET}
	t[0xCB] = instruction{"JMP a16", 3, 10, opJMP}

	return t
}
