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

// Command repl is a line-oriented shell for driving the 8080 core: step
// or run instructions, inspect registers and memory, manage breakpoints,
// inject interrupts, and poke the Midway fixture's ports directly. It is
// glue around emulator.Emulator, not part of the core itself.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"github.com/mg-emu/i8080/cpu"
	"github.com/mg-emu/i8080/emulator"
	"github.com/mg-emu/i8080/midway"
)

type repl struct {
	emu *emulator.Emulator
	hw  *midway.Fixture
	out *bufio.Writer
}

func main() {
	app := &cli.App{
		Name:  "i8080-repl",
		Usage: "interactive shell over an 8080 core with a Midway-style I/O fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "ROM file to insert and reset from before the prompt starts",
			},
		},
		Action: func(c *cli.Context) error {
			hw := midway.New()
			r := &repl{
				emu: emulator.New(hw),
				hw:  hw,
				out: bufio.NewWriter(os.Stdout),
			}
			defer r.out.Flush()

			if romFile := c.String("rom"); romFile != "" {
				if err := r.doInsert(romFile); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				if err := r.emu.Reset(); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}

			r.loop(os.Stdin)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *repl) loop(in *os.File) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "i8080> ")
		r.out.Flush()
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if r.dispatch(fields[0], fields[1:]) {
			return
		}
	}
}

// dispatch runs one command and reports whether the loop should exit.
func (r *repl) dispatch(cmd string, args []string) bool {
	var err error
	switch cmd {
	case "step":
		err = r.doStep()
	case "run":
		err = r.doRun(args)
	case "regs":
		r.doRegs()
	case "mem":
		err = r.doMem(args)
	case "pc":
		fmt.Fprintf(r.out, "pc=%#04x\n", r.emu.CPU.PC)
	case "rom":
		r.doROM()
	case "insert":
		err = r.doInsertArgs(args)
	case "remove":
		r.emu.RemoveROM()
	case "reset":
		err = r.emu.Reset()
	case "break":
		err = r.doBreak(args)
	case "int":
		err = r.doInt(args)
	case "setport":
		err = r.doSetPort(args)
	case "setbit":
		err = r.doBit(args, true)
	case "clearbit":
		err = r.doBit(args, false)
	case "hw":
		r.doHW()
	case "emu":
		r.doEmu()
	case "quit":
		return true
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(r.out, "error:", err)
	}
	r.out.Flush()
	return false
}

func (r *repl) doStep() error {
	res, err := r.emu.Step()
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%04x: %-12s cycles=%d\n", res.PC, res.Mnemonic, res.Cycles)
	return nil
}

func (r *repl) doRun(args []string) error {
	var budget *uint64
	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad cycle count %q: %w", args[0], err)
		}
		budget = &n
	}
	reason, err := r.emu.RunBlocking(budget)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "stopped: %s (cycles=%d)\n", reason, r.emu.CPU.Cycles)
	return nil
}

func (r *repl) doRegs() {
	c := r.emu.CPU
	fmt.Fprintf(r.out, "a=%02x b=%02x c=%02x d=%02x e=%02x h=%02x l=%02x\n", c.A, c.B, c.C, c.D, c.E, c.H, c.L)
	fmt.Fprintf(r.out, "sp=%04x pc=%04x flags=%02x [%s] ie=%v halted=%v cycles=%d\n",
		c.SP, c.PC, c.Flags, flagString(c), c.IE, c.Halted, c.Cycles)
}

func flagString(c *cpu.CPU) string {
	bit := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	b := []byte{
		bit(c.GetFlag(cpu.FlagSign), 'S'),
		bit(c.GetFlag(cpu.FlagZero), 'Z'),
		bit(c.GetFlag(cpu.FlagAux), 'A'),
		bit(c.GetFlag(cpu.FlagParity), 'P'),
		bit(c.GetFlag(cpu.FlagCarry), 'C'),
	}
	return string(b)
}

func (r *repl) doMem(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: mem <hex-addr> <len>")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", args[0], err)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad length %q: %w", args[1], err)
	}
	for i := 0; i < n; i++ {
		if i%16 == 0 {
			if i > 0 {
				fmt.Fprintln(r.out)
			}
			fmt.Fprintf(r.out, "%04x:", uint16(addr)+uint16(i))
		}
		fmt.Fprintf(r.out, " %02x", r.emu.Bus.Read(uint16(addr)+uint16(i)))
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *repl) doROM() {
	if !r.emu.HasROM() {
		fmt.Fprintln(r.out, "no ROM inserted")
		return
	}
	fmt.Fprintln(r.out, "ROM inserted")
}

func (r *repl) doInsert(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r.emu.InsertROM(data)
	return nil
}

func (r *repl) doInsertArgs(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: insert <file>")
	}
	return r.doInsert(args[0])
}

func (r *repl) doBreak(args []string) error {
	if len(args) == 1 && args[0] == "ls" {
		bps := r.emu.Breakpoints()
		sort.Slice(bps, func(i, j int) bool { return bps[i] < bps[j] })
		for _, addr := range bps {
			fmt.Fprintf(r.out, "%#04x\n", addr)
		}
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: break {add|rm} <hex-addr> | break ls")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(args[1], "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("bad address %q: %w", args[1], err)
	}
	switch args[0] {
	case "add":
		r.emu.AddBreakpoint(uint16(addr))
	case "rm":
		r.emu.RemoveBreakpoint(uint16(addr))
	default:
		return fmt.Errorf("usage: break {add|rm} <hex-addr> | break ls")
	}
	return nil
}

func (r *repl) doInt(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: int <octal n>")
	}
	n, err := strconv.ParseUint(args[0], 8, 8)
	if err != nil {
		return fmt.Errorf("bad restart number %q: %w", args[0], err)
	}
	r.emu.Bus.RequestInterrupt(0xC7 | uint8(n)<<3)
	return nil
}

func (r *repl) doSetPort(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: setport <p> <v>")
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad port %q: %w", args[0], err)
	}
	v, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad value %q: %w", args[1], err)
	}
	r.hw.SetLatch(p, uint8(v))
	return nil
}

func (r *repl) doBit(args []string, set bool) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: setbit|clearbit <p> <b>")
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad port %q: %w", args[0], err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad bit %q: %w", args[1], err)
	}
	r.hw.WriteBit(p, uint8(b), set)
	return nil
}

func (r *repl) doHW() {
	fmt.Fprintf(r.out, "latch0=%02x latch1=%02x latch2=%02x shift=%04x offset=%d shifted=%02x\n",
		r.hw.Latch(0), r.hw.Latch(1), r.hw.Latch(2), r.hw.ShiftRegister(), r.hw.Offset(), r.hw.ReadShifted())
}

func (r *repl) doEmu() {
	fmt.Fprintf(r.out, "rom=%v breakpoints=%v cycles=%d\n", r.emu.HasROM(), r.emu.Breakpoints(), r.emu.CPU.Cycles)
}
