package cpu

import "testing"

func step(t *testing.T, c *CPU, b *stubBus) StepResult {
	t.Helper()
	res, err := c.Step(b)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	return res
}

func TestTableIsTotal(t *testing.T) {
	tbl := buildTable()
	for i := 0; i < 256; i++ {
		if tbl[i].fn == nil {
			t.Errorf("opcode %#02x has no handler", i)
		}
		if tbl[i].size < 1 || tbl[i].size > 3 {
			t.Errorf("opcode %#02x has invalid size %d", i, tbl[i].size)
		}
	}
}

func TestNOPAliases(t *testing.T) {
	tbl := buildTable()
	for _, op := range []uint8{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		if tbl[op].name != "NOP" {
			t.Errorf("opcode %#02x = %q, want NOP", op, tbl[op].name)
		}
	}
}

func TestJMPRETCALLAliases(t *testing.T) {
	tbl := buildTable()
	if tbl[0xCB].name != tbl[0xC3].name {
		t.Error("0xCB must alias JMP")
	}
	if tbl[0xD9].name != tbl[0xC9].name {
		t.Error("0xD9 must alias RET")
	}
	for _, op := range []uint8{0xDD, 0xED, 0xFD} {
		if tbl[op].name != tbl[0xCD].name {
			t.Errorf("opcode %#02x must alias CALL", op)
		}
	}
}

func TestADDBoundary(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.A = 0xFF
	c.B = 0x01
	b.mem[0] = 0x80 // ADD B
	res := step(t, c, b)
	if c.A != 0x00 {
		t.Fatalf("A = %#02x, want 0x00", c.A)
	}
	if !c.GetFlag(FlagZero) || !c.GetFlag(FlagCarry) || !c.GetFlag(FlagAux) {
		t.Fatalf("flags = %#02x, want Z,CY,AC all set", c.Flags)
	}
	if res.Cycles != 4 {
		t.Fatalf("cycles = %d, want 4", res.Cycles)
	}
}

func TestSUBBoundary(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.A = 0x00
	c.B = 0x01
	b.mem[0] = 0x90 // SUB B
	step(t, c, b)
	if c.A != 0xFF {
		t.Fatalf("A = %#02x, want 0xFF", c.A)
	}
	if !c.GetFlag(FlagCarry) || !c.GetFlag(FlagSign) {
		t.Fatalf("flags = %#02x, want CY and S set", c.Flags)
	}
}

func TestDAABoundary(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.A = 0x9B
	b.mem[0] = 0x27 // DAA
	step(t, c, b)
	if c.A != 0x01 {
		t.Fatalf("A = %#02x, want 0x01", c.A)
	}
	if !c.GetFlag(FlagCarry) {
		t.Fatal("CY should be set")
	}
	if !c.GetFlag(FlagAux) {
		t.Fatal("AC should be set")
	}
}

func TestCALLBoundary(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.PC = 0xBCD2
	c.SP = 0x2000
	b.mem[0xBCD2] = 0xCD // CALL a16
	b.mem[0xBCD3] = 0x20
	b.mem[0xBCD4] = 0xFA
	step(t, c, b)
	if c.PC != 0xFA20 {
		t.Fatalf("pc = %#04x, want 0xFA20", c.PC)
	}
	if c.SP != 0x1FFE {
		t.Fatalf("sp = %#04x, want 0x1FFE", c.SP)
	}
	if b.mem[0x1FFF] != 0xBC || b.mem[0x1FFE] != 0xD5 {
		t.Fatalf("return address on stack = %02x%02x, want BCD5", b.mem[0x1FFF], b.mem[0x1FFE])
	}
}

func TestINXDCXWrap(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.SetBC(0xFFFF)
	before := c.Flags
	b.mem[0] = 0x03 // INX B
	step(t, c, b)
	if c.BC() != 0x0000 {
		t.Fatalf("BC = %#04x, want 0x0000", c.BC())
	}
	if c.Flags != before {
		t.Fatal("INX must not touch flags")
	}

	c.Reset()
	c.SetBC(0x0000)
	b.mem[0] = 0x0B // DCX B
	step(t, c, b)
	if c.BC() != 0xFFFF {
		t.Fatalf("BC = %#04x, want 0xFFFF", c.BC())
	}
}

func TestConditionalJumpNotTaken(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.PC = 0x1000
	c.SetFlag(FlagZero, false)
	b.mem[0x1000] = 0xCA // JZ a16
	b.mem[0x1001] = 0x20
	b.mem[0x1002] = 0x40
	res := step(t, c, b)
	if c.PC != 0x1003 {
		t.Fatalf("pc = %#04x, want 0x1003", c.PC)
	}
	if res.Cycles != 10 {
		t.Fatalf("cycles = %d, want 10", res.Cycles)
	}
}

func TestLHLDSHLDRoundTrip(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	b.mem[0x0200] = 0xCD
	b.mem[0x0201] = 0xAB
	b.mem[0] = 0x2A // LHLD 0x0200
	b.mem[1] = 0x00
	b.mem[2] = 0x02
	step(t, c, b)
	if c.L != 0xCD || c.H != 0xAB {
		t.Fatalf("L=%#02x H=%#02x, want CD/AB", c.L, c.H)
	}

	b.mem[3] = 0x22 // SHLD 0x0300
	b.mem[4] = 0x00
	b.mem[5] = 0x03
	step(t, c, b)
	if b.mem[0x0300] != 0xCD || b.mem[0x0301] != 0xAB {
		t.Fatalf("mem[0x0300..]=%02x %02x, want CD AB", b.mem[0x0300], b.mem[0x0301])
	}
}

func TestRSTInterruptInjection(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.IE = true
	c.PC = 0x2000
	c.SP = 0x4000
	b.pending = 0xCF // RST 1
	b.has = true

	step(t, c, b)

	if c.SP != 0x3FFE {
		t.Fatalf("sp = %#04x, want 0x3FFE", c.SP)
	}
	if b.mem[0x3FFF] != 0x20 || b.mem[0x3FFE] != 0x00 {
		t.Fatalf("mem[0x3FFF..]=%02x %02x, want 20 00", b.mem[0x3FFF], b.mem[0x3FFE])
	}
	if c.PC != 0x0008 {
		t.Fatalf("pc = %#04x, want 0x0008", c.PC)
	}
	if c.IE {
		t.Fatal("ie should be cleared by interrupt ack")
	}
	if _, ok := b.PeekInterrupt(); ok {
		t.Fatal("pending interrupt should be consumed")
	}
}

func TestEIDIIdentity(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	b.mem[0] = 0xFB // EI
	b.mem[1] = 0xF3 // DI
	step(t, c, b)
	if !c.IE {
		t.Fatal("IE should be true after EI")
	}
	step(t, c, b)
	if c.IE {
		t.Fatal("IE should be false after EI;DI")
	}
}

func TestXCHGIdentity(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.SetDE(0x1234)
	c.SetHL(0x5678)
	b.mem[0] = 0xEB
	b.mem[1] = 0xEB
	step(t, c, b)
	step(t, c, b)
	if c.DE() != 0x1234 || c.HL() != 0x5678 {
		t.Fatal("XCHG;XCHG must be identity")
	}
}

func TestRotateIdentities(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.A = 0x5A
	for i := 0; i < 8; i++ {
		b.mem[i] = 0x07 // RLC
	}
	a0, cy0 := c.A, c.GetFlag(FlagCarry)
	for i := 0; i < 8; i++ {
		step(t, c, b)
	}
	if c.A != a0 || c.GetFlag(FlagCarry) != cy0 {
		t.Fatal("RLC x8 must return A and CY to start")
	}
}

func TestPushPopRegPair(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	c.SP = 0x3000
	c.SetHL(0xDEAD)
	b.mem[0] = 0xE5 // PUSH H
	b.mem[1] = 0xE1 // POP H
	step(t, c, b)
	c.SetHL(0)
	step(t, c, b)
	if c.HL() != 0xDEAD {
		t.Fatalf("HL = %#04x after PUSH H;POP H, want 0xDEAD", c.HL())
	}
	if c.SP != 0x3000 {
		t.Fatalf("SP = %#04x, want 0x3000", c.SP)
	}
}

func TestHLTIdleCycle(t *testing.T) {
	c, b := New(), newStubBus()
	c.Reset()
	b.mem[0] = 0x3E // MVI A,0x42
	b.mem[1] = 0x42
	b.mem[2] = 0x76 // HLT
	r1 := step(t, c, b)
	r2 := step(t, c, b)
	r3 := step(t, c, b)
	total := r1.Cycles + r2.Cycles + r3.Cycles
	if total != 18 {
		t.Fatalf("total cycles = %d, want 18 (7+7+4)", total)
	}
	if c.A != 0x42 {
		t.Fatalf("A = %#02x, want 0x42", c.A)
	}
	if c.PC != 0x0002 {
		t.Fatalf("pc = %#04x, want 0x0002", c.PC)
	}
	if !r3.Halted {
		t.Fatal("third step should report Halted")
	}
}
