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

package bus

import (
	"testing"

	"github.com/mg-emu/i8080/iodevice"
)

func TestBus_ReadWrite(t *testing.T) {
	b := New(nil)

	if v := b.Read(0); v != 0 {
		t.Errorf("Read(0) = %v, want 0", v)
	}

	b.Write(1, 0xDE)
	if v := b.Read(1); v != 0xDE {
		t.Errorf("Read(1) = %v, want 0xDE", v)
	}
}

type recordingDevice struct {
	lastOutPort uint8
	lastOutVal  uint8
	inputs      map[uint8]uint8
}

func (d *recordingDevice) Input(port uint8) uint8 {
	return d.inputs[port]
}

func (d *recordingDevice) Output(port, value uint8) {
	d.lastOutPort, d.lastOutVal = port, value
}

func TestBus_IODelegation(t *testing.T) {
	dev := &recordingDevice{inputs: map[uint8]uint8{3: 0xAA}}
	b := New(dev)

	if v := b.Input(3); v != 0xAA {
		t.Errorf("Input(3) = %#02x, want 0xAA", v)
	}

	b.Output(5, 0x11)
	if dev.lastOutPort != 5 || dev.lastOutVal != 0x11 {
		t.Errorf("Output not delegated: got port=%v value=%v", dev.lastOutPort, dev.lastOutVal)
	}
}

func TestBus_NilDeviceDefaultsToNull(t *testing.T) {
	b := New(nil)
	if v := b.Input(0); v != 0 {
		t.Errorf("Input(0) on null device = %v, want 0", v)
	}
	// Must not panic.
	b.Output(0, 1)
}

func TestBus_Interrupts(t *testing.T) {
	b := New(iodevice.Null{})

	if _, ok := b.PeekInterrupt(); ok {
		t.Fatal("PeekInterrupt() on fresh bus reports a pending interrupt")
	}

	b.RequestInterrupt(0xCF)
	op, ok := b.PeekInterrupt()
	if !ok || op != 0xCF {
		t.Fatalf("PeekInterrupt() = (%#02x, %v), want (0xCF, true)", op, ok)
	}

	// Peek must not consume.
	op, ok = b.PeekInterrupt()
	if !ok || op != 0xCF {
		t.Fatalf("second PeekInterrupt() = (%#02x, %v), want (0xCF, true)", op, ok)
	}

	// A new request overwrites the prior one.
	b.RequestInterrupt(0xD7)
	op, ok = b.TakeInterrupt()
	if !ok || op != 0xD7 {
		t.Fatalf("TakeInterrupt() = (%#02x, %v), want (0xD7, true)", op, ok)
	}

	if _, ok := b.PeekInterrupt(); ok {
		t.Fatal("interrupt survived TakeInterrupt()")
	}
}

func TestBus_Reset(t *testing.T) {
	b := New(nil)
	b.Write(10, 0xFF)
	b.RequestInterrupt(0xC7)

	b.Reset()

	if v := b.Read(10); v != 0 {
		t.Errorf("Read(10) after Reset = %v, want 0", v)
	}
	if _, ok := b.PeekInterrupt(); ok {
		t.Error("Reset() did not clear pending interrupt")
	}
}
