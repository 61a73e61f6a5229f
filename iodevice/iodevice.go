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

// Package iodevice defines the capability a Bus expects from whatever
// hardware is plugged into the 8080's I/O ports.
package iodevice

// Device is the 8080 I/O port contract: read a byte from a port, or write
// one to it. Unknown ports are the device's problem, not the bus's —
// Null below treats all of them as no-ops.
type Device interface {
	Input(port uint8) uint8
	Output(port uint8, value uint8)
}

// Null is a Device that answers every input with 0 and drops every
// output. It is the default device for a bus built without a real
// peripheral attached.
type Null struct{}

// Input always returns 0.
func (Null) Input(uint8) uint8 { return 0 }

// Output is a no-op.
func (Null) Output(uint8, uint8) {}
