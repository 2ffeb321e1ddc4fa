// Package snake is a small snake game built on the engine lifecycle hooks.
package snake

import (
	"errors"
	"fmt"
	"math"

	"ndengine/engine"
	"ndengine/hal"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type dir uint8

const (
	dirUp dir = iota
	dirRight
	dirDown
	dirLeft
)

type point struct {
	x int
	y int
}

const (
	stepIntervalBase = 0.15
	stepIntervalMin  = 0.06
	stepIntervalDec  = 0.005
)

var ErrScreenTooSmall = errors.New("snake: screen too small for the grid")

// headModel is a unit diamond pointing up; it is rotated to the heading.
var headModel = []engine.Vec2{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Game is a cells x cells snake board.
type Game struct {
	engine.BaseGame

	cells int
	cell  int
	ox    int
	oy    int

	body    []point
	headDir dir
	nextDir dir

	food point
	rng  uint32

	score  int
	alive  bool
	paused bool

	acc float32
}

// New returns a game on a cells x cells board.
func New(cells int) *Game {
	if cells < 8 {
		cells = 8
	}
	return &Game{cells: cells}
}

func (g *Game) OnCreate(e *engine.Engine) error {
	header := engine.TextHeight(1) + 2
	w, h := e.DrawTargetWidth(), e.DrawTargetHeight()
	cell := min((w-2)/g.cells, (h-2-header)/g.cells)
	if cell < 1 {
		return fmt.Errorf("%w: %dx%d for %d cells", ErrScreenTooSmall, w, h, g.cells)
	}
	g.cell = cell
	g.ox = (w - g.cells*cell) / 2
	g.oy = header + 1

	e.ConnectKeyPress(hal.KeyUp, func() { g.setDir(dirUp) })
	e.ConnectKeyPress(hal.KeyDown, func() { g.setDir(dirDown) })
	e.ConnectKeyPress(hal.KeyLeft, func() { g.setDir(dirLeft) })
	e.ConnectKeyPress(hal.KeyRight, func() { g.setDir(dirRight) })
	e.ConnectKeyPress(hal.KeyP, g.togglePause)
	e.ConnectKeyPress(hal.KeySpace, g.togglePause)
	e.ConnectKeyPress(hal.KeyR, g.reset)
	e.ConnectKeyPress(hal.KeyEscape, e.OnQuit)
	e.ConnectKeyPress(hal.KeyQ, e.OnQuit)

	g.reset()
	engine.Logger().Info("snake created", "cells", g.cells, "cell_px", g.cell)
	return nil
}

func (g *Game) OnUpdate(e *engine.Engine, elapsed float32) error {
	if g.alive && !g.paused {
		g.acc += elapsed
		for g.alive && g.acc >= g.stepInterval() {
			g.acc -= g.stepInterval()
			g.step(e)
		}
	}
	return g.render(e)
}

func (g *Game) OnDestroy(*engine.Engine) error {
	engine.Logger().Info("snake destroyed", "score", g.score)
	return nil
}

func (g *Game) Score() int  { return g.score }
func (g *Game) Alive() bool { return g.alive }

func (g *Game) reset() {
	start := point{x: g.cells / 2, y: g.cells / 2}
	g.body = []point{
		start,
		{x: start.x - 1, y: start.y},
		{x: start.x - 2, y: start.y},
	}
	g.headDir = dirRight
	g.nextDir = dirRight
	g.score = 0
	g.alive = true
	g.paused = false
	g.acc = 0
	g.rng = 0x12345678
	g.spawnFood()
}

func (g *Game) togglePause() {
	if g.alive {
		g.paused = !g.paused
	}
}

func (g *Game) setDir(d dir) {
	if !g.alive {
		return
	}
	if (g.headDir == dirUp && d == dirDown) ||
		(g.headDir == dirDown && d == dirUp) ||
		(g.headDir == dirLeft && d == dirRight) ||
		(g.headDir == dirRight && d == dirLeft) {
		return
	}
	g.nextDir = d
}

func (g *Game) stepInterval() float32 {
	interval := float32(stepIntervalBase - stepIntervalDec*float64(g.score))
	if interval < stepIntervalMin {
		interval = stepIntervalMin
	}
	return interval
}

func (g *Game) step(e *engine.Engine) {
	if !g.alive || len(g.body) == 0 {
		return
	}

	g.headDir = g.nextDir
	next := g.body[0]
	switch g.headDir {
	case dirUp:
		next.y--
	case dirDown:
		next.y++
	case dirLeft:
		next.x--
	case dirRight:
		next.x++
	}
	next.x = int(e.WrapX(float32(next.x), g.cells))
	next.y = int(e.WrapY(float32(next.y), g.cells))

	willEat := next == g.food
	check := g.body
	if !willEat && len(check) > 1 {
		check = check[:len(check)-1]
	}
	for _, p := range check {
		if p == next {
			g.alive = false
			return
		}
	}

	g.body = append([]point{next}, g.body...)
	if willEat {
		g.score++
		g.spawnFood()
		return
	}
	g.body = g.body[:len(g.body)-1]
}

func (g *Game) spawnFood() {
	for tries := 0; tries < 1024; tries++ {
		g.rng = xorshift32(g.rng)
		x := int(g.rng % uint32(g.cells))
		g.rng = xorshift32(g.rng)
		y := int(g.rng % uint32(g.cells))
		p := point{x: x, y: y}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}
	g.food = point{x: 0, y: 0}
}

func (g *Game) occupied(p point) bool {
	for _, s := range g.body {
		if s == p {
			return true
		}
	}
	return false
}

func xorshift32(x uint32) uint32 {
	if x == 0 {
		x = 0x6d2b79f5
	}
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	return x
}

func (g *Game) render(e *engine.Engine) error {
	if err := e.ClearScreen(engine.Black); err != nil {
		return err
	}
	size := g.cells * g.cell
	if err := e.DrawRectangle(g.ox-1, g.oy-1, size+1, size+1, engine.DarkGrey); err != nil {
		return err
	}

	if err := g.fillCell(e, g.food, engine.Red); err != nil {
		return err
	}
	for i := len(g.body) - 1; i >= 1; i-- {
		if err := g.fillCell(e, g.body[i], bodyColor(i)); err != nil {
			return err
		}
	}
	if err := g.drawHead(e); err != nil {
		return err
	}

	if err := e.DrawString(1, 1, fmt.Sprintf("SCORE %d", g.score), engine.White, 1); err != nil {
		return err
	}

	switch {
	case !g.alive:
		return g.banner(e, "GAME OVER (R)", engine.Yellow)
	case g.paused:
		return g.banner(e, "PAUSED", engine.Cyan)
	}
	return nil
}

func (g *Game) fillCell(e *engine.Engine, p point, c engine.Pixel) error {
	x0 := g.ox + p.x*g.cell
	y0 := g.oy + p.y*g.cell
	for y := y0; y < y0+g.cell; y++ {
		if err := e.DrawLine(x0, y, x0+g.cell-1, y, c); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) drawHead(e *engine.Engine) error {
	head := g.body[0]
	half := float32(g.cell) / 2
	if g.cell < 4 {
		return g.fillCell(e, head, engine.Cyan)
	}
	center := engine.Vec2{
		X: float32(g.ox+head.x*g.cell) + half,
		Y: float32(g.oy+head.y*g.cell) + half,
	}
	rot := float32(g.headDir) * math.Pi / 2
	return e.DrawWireFrame(headModel, center, rot, half-1, engine.Cyan)
}

// banner darkens a band across the board and writes msg over it.
func (g *Game) banner(e *engine.Engine, msg string, c engine.Pixel) error {
	size := g.cells * g.cell
	bandH := engine.TextHeight(1) + 4
	y0 := g.oy + (size-bandH)/2
	x0, x1 := g.ox, g.ox+size-1
	top, bottom := max(y0, g.oy), min(y0+bandH, g.oy+size)

	e.SetPixelMode(engine.ModeAlpha)
	e.SetPixelBlend(0.75)
	var err error
	for y := top; y < bottom && err == nil; y++ {
		err = e.DrawLine(x0, y, x1, y, engine.VeryDarkRed)
	}
	e.SetPixelMode(engine.ModeNormal)
	e.SetPixelBlend(1)
	if err != nil {
		return err
	}

	tx := g.ox + (size-engine.TextWidth(msg, 1))/2
	return e.DrawString(tx, y0+2, msg, c, 1)
}

// bodyColor fades the body from green toward blue along its length.
func bodyColor(i int) engine.Pixel {
	hue := 120 + math.Mod(float64(i)*6, 90)
	r, g, b := colorful.Hsv(hue, 0.7, 0.9).RGB255()
	return engine.RGB(r, g, b)
}
