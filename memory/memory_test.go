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

package memory

import "testing"

func TestMemory_ReadWrite(t *testing.T) {
	m := New()

	if v := m.Read(0); v != 0 {
		t.Errorf("Read(0) = %v, want 0", v)
	}

	m.Write(1, 0xDE)
	if v := m.Read(1); v != 0xDE {
		t.Errorf("Read(1) = %v, want 0xDE", v)
	}

	m.Write(Capacity-1, 0x22)
	if v := m.Read(Capacity - 1); v != 0x22 {
		t.Errorf("Read(last) = %v, want 0x22", v)
	}
}

func TestMemory_LoadAt(t *testing.T) {
	m := New()
	rom := []byte{0x3E, 0x42, 0x76}
	m.LoadAt(0, rom)

	for i, b := range rom {
		if got := m.Read(uint16(i)); got != b {
			t.Errorf("Read(%d) = %#02x, want %#02x", i, got, b)
		}
	}
}

func TestMemory_LoadAtTruncates(t *testing.T) {
	m := New()
	data := make([]byte, 10)
	for i := range data {
		data[i] = byte(i + 1)
	}
	m.LoadAt(Capacity-5, data)

	if got := m.Read(Capacity - 1); got != 5 {
		t.Errorf("Read(last) = %v, want 5", got)
	}
}

func TestMemory_Reset(t *testing.T) {
	m := New()
	m.Write(100, 0xFF)
	m.Reset()
	if v := m.Read(100); v != 0 {
		t.Errorf("Read(100) after Reset = %v, want 0", v)
	}
}

func TestMemory_VRAM(t *testing.T) {
	m := New()
	vram := m.VRAM()
	if len(vram) != VRAMEnd-VRAMStart+1 {
		t.Fatalf("VRAM() length = %d, want %d", len(vram), VRAMEnd-VRAMStart+1)
	}

	m.Write(VRAMStart, 0xAB)
	if vram[0] != 0xAB {
		t.Errorf("VRAM()[0] = %#02x, want 0xAB (aliasing live memory)", vram[0])
	}
}
