package midway

import "testing"

func TestShiftRegisterSequence(t *testing.T) {
	f := New()
	f.WriteLow(0xAA)
	f.WriteHigh(0xFF)
	f.SetOffset(0x03)
	if got := f.ReadShifted(); got != 0xFD {
		t.Fatalf("ReadShifted() = %#02x, want 0xFD", got)
	}
}

func TestShiftOffsetMasking(t *testing.T) {
	f := New()
	f.SetOffset(0xFF)
	if f.offset != 0x07 {
		t.Fatalf("offset = %#02x, want 0x07 (masked to 3 bits)", f.offset)
	}
}

func TestPortDispatch(t *testing.T) {
	f := New()
	f.SetBit(0, 0)
	f.SetBit(1, 4)
	if f.Input(0) != 0x01 {
		t.Fatalf("Input(0) = %#02x, want 0x01", f.Input(0))
	}
	if f.Input(1) != 0x10 {
		t.Fatalf("Input(1) = %#02x, want 0x10", f.Input(1))
	}
	if f.Input(6) != 0 {
		t.Fatal("Input on an unmapped port must read 0")
	}

	f.Output(4, 0x11)
	f.Output(5, 0x22)
	f.Output(2, 0x01)
	if got := f.Input(3); got != f.ReadShifted() {
		t.Fatalf("Input(3) = %#02x, want ReadShifted() = %#02x", got, f.ReadShifted())
	}
	f.Output(7, 0x99) // unmapped out port must be a no-op
}

func TestLogicalInputMapping(t *testing.T) {
	cases := []struct {
		input LogicalInput
		latch int
		bit   uint8
	}{
		{Coin, 0, 0},
		{Tilt, 0, 2},
		{Start2, 1, 1},
		{Start1, 1, 2},
		{Fire, 1, 4},
		{Left, 1, 5},
		{Right, 1, 6},
	}
	for _, tc := range cases {
		f := New()
		f.Press(tc.input)
		if f.latches[tc.latch]&(1<<tc.bit) == 0 {
			t.Errorf("Press(%v) did not set latch %d bit %d", tc.input, tc.latch, tc.bit)
		}
		f.Release(tc.input)
		if f.latches[tc.latch]&(1<<tc.bit) != 0 {
			t.Errorf("Release(%v) did not clear latch %d bit %d", tc.input, tc.latch, tc.bit)
		}
	}
}

func TestOutOfRangeBitIsNoop(t *testing.T) {
	f := New()
	f.SetBit(5, 0)  // latch out of range
	f.SetBit(0, 9)  // bit out of range
	if f.latches != [3]uint8{0, 0, 0} {
		t.Fatalf("out-of-range SetBit mutated state: %v", f.latches)
	}
}
