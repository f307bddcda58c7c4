package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ezrec/p101/console"
	"github.com/ezrec/p101/machine"
)

// panelView is the interactive front panel: a paper roll on top, the
// live register state below it, and a help line at the bottom.
type panelView struct {
	machine *machine.Machine

	paper *tview.TextView
	state *tview.TextView
	help  *tview.TextView
	rows  *tview.Flex
	app   *tview.Application

	await bool // next digit sets the display decimals
}

func newPanelView(decimals int, verbose bool) (p *panelView, err error) {
	p = &panelView{
		machine: machine.New(),
		paper: tview.NewTextView().
			SetMaxLines(1000),
		state: tview.NewTextView().
			SetWrap(false),
		help: tview.NewTextView().
			SetWrap(false),
		rows: tview.NewFlex().
			SetDirection(tview.FlexRow),
		app: tview.NewApplication(),
	}

	p.machine.Verbose = verbose
	err = p.machine.SetDecimals(decimals)
	if err != nil {
		return nil, err
	}

	p.paper.SetChangedFunc(func() { p.app.Draw() })
	p.paper.ScrollToEnd()
	p.state.SetBackgroundColor(tcell.ColorDarkBlue)
	p.help.SetBackgroundColor(tcell.ColorDarkGrey)
	p.help.SetText(" keys: 0-9 , _ + - x / v = * r s t w u d M A R B-F" +
		"   Enter print   arrows transfer   Esc quit")

	p.rows.
		AddItem(p.paper, 0, 1, false).
		AddItem(p.state, 12, 0, false).
		AddItem(p.help, 1, 0, false)
	p.app.SetRoot(p.rows, true)
	p.app.SetInputCapture(p.capture)

	p.refresh()

	return
}

// capture translates terminal keys to machine keys.
func (p *panelView) capture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		p.app.Stop()
	case tcell.KeyUp:
		p.press(machine.KEY_TRANSFER_UP)
	case tcell.KeyDown:
		p.press(machine.KEY_TRANSFER_DOWN)
	case tcell.KeyEnter:
		p.press(machine.KEY_PRINT)
	case tcell.KeyRune:
		p.typed(event.Rune())
	}

	return nil
}

// typed feeds one character through the alias table. While a decimals
// count is pending, a digit becomes the count instead of a key.
func (p *panelView) typed(r rune) {
	if p.await {
		p.await = false
		if key := machine.Key(r); key.IsDigit() {
			p.setDecimals(int(key.Digit()))
		}
		return
	}

	key, err := console.ParseToken(string(r))
	if err != nil {
		return
	}

	p.press(key)
}

// press feeds one key, prints to the paper, and repaints the state.
func (p *panelView) press(key machine.Key) {
	out, err := p.machine.Press(key)
	if err != nil {
		fmt.Fprintf(p.paper, "error: %v\n", err)
	} else if out != "" {
		fmt.Fprintln(p.paper, out)
	}

	if key == machine.KEY_DECIMALS && err == nil {
		p.await = true
	}

	p.refresh()
}

func (p *panelView) setDecimals(n int) {
	if err := p.machine.SetDecimals(n); err != nil {
		fmt.Fprintf(p.paper, "error: %v\n", err)
	}
	p.refresh()
}

// refresh repaints the register state pane.
func (p *panelView) refresh() {
	p.state.SetText(p.machine.String())
}

// runPanel opens the front panel and blocks until the user quits.
func runPanel(decimals int, verbose bool) error {
	p, err := newPanelView(decimals, verbose)
	if err != nil {
		return err
	}

	// Keep verbose traces off the terminal and on the paper roll.
	if verbose {
		log.SetOutput(p.paper)
		defer log.SetOutput(os.Stderr)
	}

	return p.app.Run()
}
