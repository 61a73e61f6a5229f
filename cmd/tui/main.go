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

// Command tui is a termui front-end over the same emulator.Emulator the
// repl drives: register/flag panel, a memory page, a scrolling trace of
// recently executed instructions, and the Midway fixture's latch/shift
// state, with single-key step/run/reset bindings.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"gopkg.in/urfave/cli.v2"

	"github.com/mg-emu/i8080/cpu"
	"github.com/mg-emu/i8080/emulator"
	"github.com/mg-emu/i8080/midway"
)

const traceDepth = 12

var (
	emu   *emulator.Emulator
	hw    *midway.Fixture
	trace []string

	paragraphCPU   *widgets.Paragraph
	paragraphMem   *widgets.Paragraph
	paragraphTrace *widgets.Paragraph
	paragraphHW    *widgets.Paragraph
	paragraphHelp  *widgets.Paragraph
)

func flagGlyphs(c *cpu.CPU) string {
	bit := func(set bool, ch, color string) string {
		if set {
			return fmt.Sprintf("[%s](fg:green)", ch)
		}
		return fmt.Sprintf("[%s](fg:red)", ch)
	}
	return strings.Join([]string{
		bit(c.GetFlag(cpu.FlagSign), "S", "green"),
		bit(c.GetFlag(cpu.FlagZero), "Z", "green"),
		bit(c.GetFlag(cpu.FlagAux), "A", "green"),
		bit(c.GetFlag(cpu.FlagParity), "P", "green"),
		bit(c.GetFlag(cpu.FlagCarry), "C", "green"),
	}, " ")
}

func renderCPU(p *widgets.Paragraph) {
	c := emu.CPU
	sb := &strings.Builder{}
	sb.WriteString("STATUS: " + flagGlyphs(c))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("PC: $%04X  SP: $%04X", c.PC, c.SP))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("A: $%02X  B: $%02X  C: $%02X", c.A, c.B, c.C))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("D: $%02X  E: $%02X", c.D, c.E))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("H: $%02X  L: $%02X", c.H, c.L))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("IE: %v  HALTED: %v", c.IE, c.Halted))
	sb.WriteRune('\n')
	sb.WriteString(fmt.Sprintf("cycles: %d", c.Cycles))
	p.Text = sb.String()
}

func renderMem(p *widgets.Paragraph, addr uint16, numRow, numCol int) {
	sb := &strings.Builder{}
	cur := addr
	for row := 0; row < numRow; row++ {
		sb.WriteString(fmt.Sprintf("$%04X:", cur))
		for col := 0; col < numCol; col++ {
			sb.WriteRune(' ')
			sb.WriteString(fmt.Sprintf("%02X", emu.Bus.Read(cur)))
			cur++
		}
		sb.WriteRune('\n')
	}
	p.Text = sb.String()
}

func renderTrace(p *widgets.Paragraph) {
	p.Text = strings.Join(trace, "\n")
}

func renderHW(p *widgets.Paragraph) {
	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("latch0: %02X\nlatch1: %02X\nlatch2: %02X\n", hw.Latch(0), hw.Latch(1), hw.Latch(2)))
	sb.WriteString(fmt.Sprintf("shift: %04X  offset: %d\nshifted: %02X", hw.ShiftRegister(), hw.Offset(), hw.ReadShifted()))
	p.Text = sb.String()
}

func draw() {
	renderCPU(paragraphCPU)
	renderMem(paragraphMem, 0x0000, 12, 8)
	renderTrace(paragraphTrace)
	renderHW(paragraphHW)
	ui.Render(paragraphCPU, paragraphMem, paragraphTrace, paragraphHW, paragraphHelp)
}

func pushTrace(line string) {
	trace = append(trace, line)
	if len(trace) > traceDepth {
		trace = trace[len(trace)-traceDepth:]
	}
}

func doStep() {
	res, err := emu.Step()
	if err != nil {
		pushTrace("error: " + err.Error())
		return
	}
	pushTrace(fmt.Sprintf("%04X: %-12s cyc=%d", res.PC, res.Mnemonic, res.Cycles))
}

func doRun() {
	reason, err := emu.RunBlocking(nil)
	if err != nil {
		pushTrace("error: " + err.Error())
		return
	}
	pushTrace("stopped: " + reason.String())
}

func initLayout() {
	paragraphCPU = widgets.NewParagraph()
	paragraphCPU.Title = "CPU"
	paragraphCPU.SetRect(0, 0, 40, 10)

	paragraphMem = widgets.NewParagraph()
	paragraphMem.Title = "Memory"
	paragraphMem.SetRect(0, 10, 40, 24)

	paragraphTrace = widgets.NewParagraph()
	paragraphTrace.Title = "Trace"
	paragraphTrace.SetRect(40, 0, 80, 18)

	paragraphHW = widgets.NewParagraph()
	paragraphHW.Title = "Midway fixture"
	paragraphHW.SetRect(40, 18, 80, 24)

	paragraphHelp = widgets.NewParagraph()
	paragraphHelp.Title = "Keys"
	paragraphHelp.Text = "<Space> step   r run   R reset   1 coin   q quit"
	paragraphHelp.SetRect(0, 24, 80, 27)
}

func loadEmulator(romPath string) error {
	hw = midway.New()
	emu = emulator.New(hw)
	if romPath == "" {
		return nil
	}
	data, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}
	emu.InsertROM(data)
	return emu.Reset()
}

func main() {
	app := &cli.App{
		Name:  "i8080-tui",
		Usage: "terminal UI over an 8080 core with a Midway-style I/O fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "ROM file to insert and reset from before the UI starts",
			},
		},
		Action: func(c *cli.Context) error {
			if err := loadEmulator(c.String("rom")); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return runTUI()
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTUI() error {
	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	defer ui.Close()

	initLayout()
	draw()

	for e := range ui.PollEvents() {
		if e.Type != ui.KeyboardEvent {
			continue
		}
		switch e.ID {
		case "q", "<C-c>":
			return nil
		case "<Space>":
			doStep()
		case "r":
			doRun()
		case "R":
			if err := emu.Reset(); err != nil {
				pushTrace("error: " + err.Error())
			}
		case "1":
			hw.Press(midway.Coin)
		}
		draw()
	}
	return nil
}
