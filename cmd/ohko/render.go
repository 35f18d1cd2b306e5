package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ohko/arena"
	"github.com/milk9111/ohko/ecs"
	"github.com/milk9111/ohko/ecs/component"
	"github.com/milk9111/ohko/fighter"
	"golang.org/x/image/colornames"
)

var regionColors = map[fighter.BoxKind]color.Color{
	fighter.BoxCollision: colornames.Lime,
	fighter.BoxHurt:      colornames.Yellow,
	fighter.BoxHit:       colornames.Red,
}

func drawArena(screen *ebiten.Image, a *arena.Arena, debug bool) {
	screen.Fill(colornames.Midnightblue)
	w := a.World()

	ecs.ForEach(w, component.TerrainComponent.Kind(), func(_ ecs.Entity, t *component.Terrain) {
		fillRect(screen, t.Rect, colornames.Dimgray)
	})

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.AppearanceComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, app *component.Appearance) {
		if pb.Body == nil {
			return
		}
		clr := app.Color
		if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok && wf.On {
			clr = colornames.White
		}
		fillRect(screen, app.Hull.Translate(pb.Body.Position()), clr)
	})

	if !debug {
		return
	}
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(_ ecs.Entity, ch *component.Character) {
		if ch.Controller == nil {
			return
		}
		for _, r := range ch.Controller.Regions() {
			strokeRect(screen, r.Rect, regionColors[r.Kind])
		}
	})
}

func drawPad(screen *ebiten.Image, area fighter.Rect, pad *component.PadInput) {
	fillRect(screen, area, color.NRGBA{A: 160})
	cw, ch := area.W/3, area.H/3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			cell := fighter.Rect{X: area.X + float64(col)*cw, Y: area.Y + float64(row)*ch, W: cw, H: ch}
			inset := fighter.Rect{X: cell.X + 6, Y: cell.Y + 6, W: cell.W - 12, H: cell.H - 12}
			pos := fighter.PositionAt(col, row)
			switch {
			case pad != nil && pad.Pad != nil && pad.Pad.Lit(pos):
				fillRect(screen, inset, colornames.Orange)
			case pos == fighter.Center:
				fillRect(screen, inset, colornames.Darkslategray)
			}
			strokeRect(screen, inset, colornames.Gray)
		}
	}
}

func fillRect(screen *ebiten.Image, r fighter.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r fighter.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}
