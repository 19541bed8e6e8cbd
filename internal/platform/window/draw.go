package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

var (
	colorSky      = color.RGBA{0x8f, 0xd3, 0xff, 0xff}
	colorGround   = color.RGBA{0x6b, 0xd4, 0x6b, 0xff}
	colorStripe   = color.RGBA{0x00, 0x00, 0x00, 0x26}
	colorCloud    = color.RGBA{0xff, 0xff, 0xff, 0xe6}
	colorPipe     = color.RGBA{0x2e, 0xcc, 0x71, 0xff}
	colorPipeDark = color.RGBA{0x25, 0xb8, 0x62, 0xff}
	colorShine    = color.RGBA{0xff, 0xff, 0xff, 0x33}
	colorBird     = color.RGBA{0xff, 0xd4, 0x00, 0xff}
	colorWing     = color.RGBA{0xff, 0xef, 0x70, 0xe6}
	colorEye      = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorBeak     = color.RGBA{0xff, 0x8a, 0x00, 0xff}
	colorHeart    = color.RGBA{0xff, 0x2d, 0x55, 0xff}
	colorPanel    = color.RGBA{0x0f, 0x17, 0x2a, 0xd9}
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphW = 6
	glyphH = 16
)

const (
	pipeCapH   = 18
	pipeCapLip = 6
	shakePx    = 3
)

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// canvas offsets every primitive by the current shake.
type canvas struct {
	dst *ebiten.Image
	dx  float32
}

func (c canvas) rect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(x)+c.dx, float32(y), float32(w), float32(h), clr, false)
}

func (c canvas) circle(p mgl64.Vec2, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(p.X())+c.dx, float32(p.Y()), float32(r), clr, true)
}

// polygon fills a closed shape through the given points.
func (c canvas) polygon(pts []mgl64.Vec2, clr color.Color) {
	var path vector.Path
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X())+c.dx, float32(p.Y()))
			continue
		}
		path.LineTo(float32(p.X())+c.dx, float32(p.Y()))
	}
	path.Close()
	c.fillPath(&path, clr)
}

func (c canvas) fillPath(path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawSky(dst *ebiten.Image, cfg config.ValentineConfig) {
	dst.Fill(colorSky)
	c := canvas{dst: dst}
	c.rect(0, cfg.World.FloorY, cfg.World.Width, cfg.World.Height-cfg.World.FloorY, colorGround)
}

// drawWorld draws the state at pixel scale. Like game.Render it only reads s.
func drawWorld(dst *ebiten.Image, s *game.State, cfg config.ValentineConfig) {
	c := canvas{dst: dst, dx: float32(game.ShakeOffset(s) * shakePx)}

	dst.Fill(colorSky)
	for _, cl := range s.Clouds {
		drawCloud(c, cl)
	}
	drawGround(c, s.Tick, cfg)
	for _, p := range s.Pipes {
		drawPipe(c, p, cfg)
	}
	for _, h := range s.Pickups {
		if !h.Collected {
			drawHeart(c, h.Pos, h.Radius)
		}
	}
	drawBird(c, s.Bird)

	drawHUD(dst, s, cfg)
	if game.Encouraging(s, cfg) {
		drawCentered(dst, cfg, 70, ascii(game.AlmostThere))
	}
}

func drawCloud(c canvas, cl game.Cloud) {
	k := cl.Scale
	base := mgl64.Vec2{cl.X, cl.Y}
	c.circle(base, 22*k, colorCloud)
	c.circle(base.Add(mgl64.Vec2{22 * k, 4 * k}), 18*k, colorCloud)
	c.circle(base.Add(mgl64.Vec2{-18 * k, 6 * k}), 16*k, colorCloud)
	c.circle(base.Add(mgl64.Vec2{6 * k, -10 * k}), 18*k, colorCloud)
}

func drawGround(c canvas, tick int, cfg config.ValentineConfig) {
	floorY := cfg.World.FloorY
	c.rect(0, floorY, cfg.World.Width, cfg.World.Height-floorY, colorGround)

	for x := -float64((tick * 2) % 40); x < cfg.World.Width; x += 40 {
		c.rect(x, floorY+12, 20, 6, colorStripe)
	}
}

func drawPipe(c canvas, p game.Pipe, cfg config.ValentineConfig) {
	w := cfg.Pipes.Width

	top := p.TopBox(w)
	c.rect(top.Min.X(), top.Min.Y(), w, p.GapTop, colorPipe)
	c.rect(p.X-pipeCapLip, p.GapTop-pipeCapH, w+2*pipeCapLip, pipeCapH, colorPipeDark)
	c.rect(p.X+10, 0, 10, p.GapTop, colorShine)

	bottom := p.BottomBox(w, cfg.World.FloorY)
	h := bottom.Max.Y() - bottom.Min.Y()
	c.rect(bottom.Min.X(), bottom.Min.Y(), w, h, colorPipe)
	c.rect(p.X-pipeCapLip, bottom.Min.Y(), w+2*pipeCapLip, pipeCapH, colorPipeDark)
	c.rect(p.X+10, bottom.Min.Y(), 10, h, colorShine)
}

// drawHeart draws a heart centered on its collision circle at pos.
func drawHeart(c canvas, pos mgl64.Vec2, r float64) {
	fr := float32(r)
	x, y := float32(pos.X())+c.dx, float32(pos.Y())-fr*1.5
	top := fr * 0.9

	var path vector.Path
	path.MoveTo(x, y+top)
	path.CubicTo(x, y, x-fr, y, x-fr, y+top)
	path.CubicTo(x-fr, y+fr*2, x, y+fr*2.2, x, y+fr*3)
	path.CubicTo(x, y+fr*2.2, x+fr, y+fr*2, x+fr, y+top)
	path.CubicTo(x+fr, y, x, y, x, y+top)
	path.Close()
	c.fillPath(&path, colorHeart)

	c.circle(pos.Add(mgl64.Vec2{-r * 0.35, -r * 0.6}), r*0.35, colorShine)
}

// drawBird draws the bird rotated by its tilt around its center.
func drawBird(c canvas, b game.Bird) {
	rot := mgl64.Rotate2D(game.BirdTilt(b.VY))
	at := func(x, y float64) mgl64.Vec2 {
		return b.Pos.Add(rot.Mul2x1(mgl64.Vec2{x, y}))
	}

	c.circle(b.Pos, b.Radius, colorBird)
	c.circle(at(-4, 4), 8, colorWing)
	c.circle(at(6, -4), 3, colorEye)
	c.polygon([]mgl64.Vec2{at(14, 2), at(26, 6), at(14, 10)}, colorBeak)
}

func drawHUD(dst *ebiten.Image, s *game.State, cfg config.ValentineConfig) {
	hud := fmt.Sprintf("Hearts: %d/%d   Lives: %d", s.Hearts, cfg.Gameplay.TargetHearts, s.Lives)
	vector.DrawFilledRect(dst, 4, 4, float32(len(hud)*glyphW+12), glyphH+8, colorPanel, false)
	ebitenutil.DebugPrintAt(dst, hud, 10, 8)
}

func drawCentered(dst *ebiten.Image, cfg config.ValentineConfig, y int, text string) {
	x := (int(cfg.World.Width) - len(text)*glyphW) / 2
	ebitenutil.DebugPrintAt(dst, text, x, y)
}

// drawMessage draws centered lines on a dark panel.
func drawMessage(dst *ebiten.Image, cfg config.ValentineConfig, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	panelW := float32(width*glyphW + 40)
	panelH := float32(len(lines)*glyphH + 32)
	px := (float32(cfg.World.Width) - panelW) / 2
	py := (float32(cfg.World.Height) - panelH) / 2

	vector.DrawFilledRect(dst, px, py, panelW, panelH, colorPanel, true)
	vector.StrokeRect(dst, px, py, panelW, panelH, 2, colorHeart, true)

	for i, l := range lines {
		drawCentered(dst, cfg, int(py)+16+i*glyphH, l)
	}
}
