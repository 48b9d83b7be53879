// Package preview draws avatars in a terminal: an input line, the colored
// 5x5 grid and the three palette swatches. Typing regenerates the avatar on
// every keystroke; Enter asks for a fresh random identifier.
package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"hashpix_backend/services"
)

// Layout, in screen cells.
const (
	gridLeft   = 2
	gridTop    = 3
	cellWidth  = 2
	swatchTop  = gridTop + services.GridSize + 3
	inputTop   = swatchTop + 4
	helpTop    = inputTop + 2
	inputLabel = "Input: "
)

var (
	titleStyle = tcell.StyleDefault.Bold(true)
	textStyle  = tcell.StyleDefault
	dimStyle   = tcell.StyleDefault.Dim(true)
	errorStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type Preview struct {
	screen  tcell.Screen
	service *services.AvatarService

	input  []rune
	avatar *services.Avatar
	err    error
}

// New prepares a preview on an initialised screen. Call SetInput or
// Regenerate before the first Draw.
func New(screen tcell.Screen, service *services.AvatarService) *Preview {
	return &Preview{screen: screen, service: service}
}

func (p *Preview) Input() string {
	return string(p.input)
}

// Avatar is the avatar currently shown, nil after a rejected input.
func (p *Preview) Avatar() *services.Avatar {
	return p.avatar
}

func (p *Preview) Err() error {
	return p.err
}

// SetInput replaces the input and rebuilds the avatar from scratch.
func (p *Preview) SetInput(s string) {
	p.input = []rune(s)
	p.refresh()
}

// Regenerate swaps the input for a random identifier.
func (p *Preview) Regenerate() {
	p.SetInput(p.service.NewIdentifier())
}

func (p *Preview) Type(r rune) {
	p.input = append(p.input, r)
	p.refresh()
}

func (p *Preview) Backspace() {
	if len(p.input) == 0 {
		return
	}
	p.input = p.input[:len(p.input)-1]
	p.refresh()
}

func (p *Preview) Clear() {
	p.SetInput("")
}

func (p *Preview) refresh() {
	p.avatar, p.err = p.service.Generate(context.Background(), string(p.input))
}

// HandleEvent applies one terminal event and reports whether the preview
// should keep running.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter, tcell.KeyCtrlR:
			p.Regenerate()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			p.Backspace()
		case tcell.KeyCtrlU:
			p.Clear()
		case tcell.KeyRune:
			p.Type(ev.Rune())
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// Run draws and processes events until the user quits or ctx is done.
func (p *Preview) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !p.HandleEvent(ev) {
				return nil
			}
			p.Draw()
		}
	}
}

func (p *Preview) Draw() {
	p.screen.Clear()
	p.drawText(gridLeft, 0, "Hash Pix", titleStyle)
	p.drawText(gridLeft, 1, "GitHub-style pixel avatars with bi-color scheme", dimStyle)

	switch {
	case p.err != nil:
		p.drawText(gridLeft, gridTop+1, p.err.Error(), errorStyle)
	case p.avatar == nil || p.avatar.Placeholder():
		p.drawText(gridLeft, gridTop+1, "Enter a UUID or any text", dimStyle)
	default:
		p.drawGrid()
	}
	if p.avatar != nil {
		p.drawSwatches()
	}

	x := p.drawText(gridLeft, inputTop, inputLabel, textStyle)
	x = p.drawText(x, inputTop, string(p.input), textStyle)
	p.screen.SetContent(x, inputTop, ' ', nil, textStyle.Reverse(true))
	p.drawText(gridLeft, helpTop, "Enter/Ctrl-R: random  Ctrl-U: clear  Esc: quit", dimStyle)

	p.screen.Show()
}

// drawGrid paints the grid on a one-cell background frame.
func (p *Preview) drawGrid() {
	palette := p.avatar.Palette
	bg := fill(palette.Background)
	width := (services.GridSize + 2) * cellWidth
	for y := gridTop; y < gridTop+services.GridSize+2; y++ {
		for x := gridLeft; x < gridLeft+width; x++ {
			p.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
	for r, row := range p.avatar.Grid {
		for c, cell := range row {
			style := fill(palette.ColorFor(cell))
			x := gridLeft + (c+1)*cellWidth
			for i := 0; i < cellWidth; i++ {
				p.screen.SetContent(x+i, gridTop+1+r, ' ', nil, style)
			}
		}
	}
}

func (p *Preview) drawSwatches() {
	palette := p.avatar.Palette
	swatches := []struct {
		label string
		color services.Color
	}{
		{"Primary", palette.Primary},
		{"Secondary", palette.Secondary},
		{"Background", palette.Background},
	}
	for i, sw := range swatches {
		y := swatchTop + i
		for x := gridLeft; x < gridLeft+cellWidth; x++ {
			p.screen.SetContent(x, y, ' ', nil, fill(sw.color))
		}
		p.drawText(gridLeft+cellWidth+1, y, fmt.Sprintf("%-10s %-18s %s", sw.label, sw.color, sw.color.Hex()), textStyle)
	}
}

// drawText writes s from (x, y) and returns the column after it.
func (p *Preview) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func fill(c services.Color) tcell.Style {
	r, g, b := c.RGB()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}
