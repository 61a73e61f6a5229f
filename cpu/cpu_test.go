package cpu

import "testing"

func TestReset(t *testing.T) {
	c := New()
	c.A = 0xFF
	c.SP = 0x1234
	c.PC = 0x5678
	c.Halted = true
	c.IE = false
	c.Cycles = 99

	c.Reset()

	if c.A != 0 || c.B != 0 || c.SP != 0 || c.PC != 0 {
		t.Fatalf("Reset left nonzero register state: %+v", c)
	}
	if c.Flags != resetFlags {
		t.Fatalf("Flags = %#02x, want %#02x", c.Flags, resetFlags)
	}
	if c.Halted {
		t.Fatal("Halted should be false after Reset")
	}
	if !c.IE {
		t.Fatal("IE should be true after Reset")
	}
	if c.Cycles != 0 {
		t.Fatalf("Cycles = %d, want 0", c.Cycles)
	}
}

func TestFlagsFixedBits(t *testing.T) {
	c := New()
	c.Reset()
	c.SetFlag(FlagZero, true)
	if c.Flags&flagOne == 0 {
		t.Fatal("bit 1 must always read as set")
	}
	if c.Flags&fixedMask != 0 {
		t.Fatalf("bits 3 and 5 must always read as clear, got %#02x", c.Flags)
	}
}

func TestParity(t *testing.T) {
	cases := []struct {
		v    uint8
		even bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0xFF, true},
		{0x80, false},
	}
	for _, tc := range cases {
		if got := parity(tc.v); got != tc.even {
			t.Errorf("parity(%#02x) = %v, want %v", tc.v, got, tc.even)
		}
	}
}

func TestRegisterPairBijection(t *testing.T) {
	c := New()
	c.SetBC(0xABCD)
	if c.B != 0xAB || c.C != 0xCD || c.BC() != 0xABCD {
		t.Fatalf("SetBC/BC round trip broken: B=%#02x C=%#02x BC=%#04x", c.B, c.C, c.BC())
	}
	c.SetDE(0x1234)
	if c.DE() != 0x1234 {
		t.Fatalf("SetDE/DE round trip broken")
	}
	c.SetHL(0x5678)
	if c.HL() != 0x5678 {
		t.Fatalf("SetHL/HL round trip broken")
	}
}

func TestPSWRoundTrip(t *testing.T) {
	c := New()
	c.Reset()
	c.A = 0x42
	c.SetFlag(FlagCarry, true)
	c.SetFlag(FlagZero, true)
	psw := c.PSW()
	c.SetPSW(0)
	c.SetPSW(psw)
	if c.A != 0x42 {
		t.Fatalf("A = %#02x after PSW round trip, want 0x42", c.A)
	}
	if !c.GetFlag(FlagCarry) || !c.GetFlag(FlagZero) {
		t.Fatal("flags lost across PSW round trip")
	}
}

// stubBus is a minimal Bus for table-driven opcode tests: flat memory, no
// I/O device behavior, and an interrupt slot mirroring bus.Bus's contract.
type stubBus struct {
	mem     [1 << 16]uint8
	in      map[uint8]uint8
	out     map[uint8]uint8
	pending uint8
	has     bool
}

func newStubBus() *stubBus {
	return &stubBus{in: map[uint8]uint8{}, out: map[uint8]uint8{}}
}

func (s *stubBus) Read(addr uint16) uint8       { return s.mem[addr] }
func (s *stubBus) Write(addr uint16, v uint8)   { s.mem[addr] = v }
func (s *stubBus) Input(port uint8) uint8       { return s.in[port] }
func (s *stubBus) Output(port uint8, v uint8)   { s.out[port] = v }
func (s *stubBus) PeekInterrupt() (uint8, bool) { return s.pending, s.has }
func (s *stubBus) TakeInterrupt() (uint8, bool) {
	if !s.has {
		return 0, false
	}
	s.has = false
	return s.pending, true
}

func TestPushPopRoundTrip(t *testing.T) {
	c := New()
	c.Reset()
	c.SP = 0x2000
	b := newStubBus()
	c.SetBC(0xBEEF)
	c.push16(b, c.BC())
	c.SetBC(0)
	got := c.pop16(b)
	if got != 0xBEEF {
		t.Fatalf("push16/pop16 round trip = %#04x, want 0xBEEF", got)
	}
	if c.SP != 0x2000 {
		t.Fatalf("SP = %#04x after balanced push/pop, want 0x2000", c.SP)
	}
}
