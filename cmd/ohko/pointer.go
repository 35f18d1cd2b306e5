package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ohko/common"
	"github.com/milk9111/ohko/ecs/component"
	"github.com/milk9111/ohko/fighter"
)

// padArea is the bottom strip of the screen holding the 3x3 pad.
func padArea() fighter.Rect {
	h := float64(common.BaseHeight) * 0.4
	return fighter.Rect{X: 0, Y: float64(common.BaseHeight) - h, W: common.BaseWidth, H: h}
}

// padPosition maps a screen point to a pad cell, or PositionUnknown when
// the point lies outside area.
func padPosition(area fighter.Rect, x, y int) fighter.Position {
	fx, fy := float64(x)-area.X, float64(y)-area.Y
	if fx < 0 || fy < 0 || fx >= area.W || fy >= area.H {
		return fighter.PositionUnknown
	}
	return fighter.PositionAt(int(fx*3/area.W), int(fy*3/area.H))
}

// pointer follows either the left mouse button or the first touch and
// turns it into pad events.
type pointer struct {
	area fighter.Rect

	active   bool
	touching bool
	touch    ebiten.TouchID
	ids      []ebiten.TouchID
}

func newPointer(area fighter.Rect) *pointer {
	return &pointer{area: area}
}

func (p *pointer) Update(pad *component.PadInput) {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.release(pad)
			return
		}
		x, y := ebiten.TouchPosition(p.touch)
		p.move(pad, x, y)
		return
	}

	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	if len(p.ids) > 0 && !p.active {
		x, y := ebiten.TouchPosition(p.ids[0])
		if p.press(pad, x, y) {
			p.touching = true
			p.touch = p.ids[0]
		}
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.press(pad, x, y)
	case p.active && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.release(pad)
	case p.active:
		p.move(pad, x, y)
	}
}

func (p *pointer) press(pad *component.PadInput, x, y int) bool {
	pos := padPosition(p.area, x, y)
	if pos == fighter.PositionUnknown {
		return false
	}
	p.active = true
	pad.Events = append(pad.Events, component.PadEvent{Kind: component.PadPress, Position: pos})
	return true
}

func (p *pointer) move(pad *component.PadInput, x, y int) {
	if pos := padPosition(p.area, x, y); pos != fighter.PositionUnknown {
		pad.Events = append(pad.Events, component.PadEvent{Kind: component.PadMove, Position: pos})
	}
}

func (p *pointer) release(pad *component.PadInput) {
	p.active = false
	p.touching = false
	pad.Events = append(pad.Events, component.PadEvent{Kind: component.PadRelease})
}
