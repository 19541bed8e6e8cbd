// Package window runs the game in a desktop window with Ebitengine, drawing
// the world 1:1 in world units.
package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

// Game adapts a game.Session to ebiten.Game.
type Game struct {
	session *game.Session
	cfg     config.ValentineConfig
}

// New creates a window frontend for the session.
func New(session *game.Session) *Game {
	return &Game{
		session: session,
		cfg:     session.Config(),
	}
}

// Update reads input and steps the session once. Ebitengine calls it at
// the configured TPS on a single goroutine.
func (g *Game) Update() error {
	in := mapInput(g.session.Phase(), g.session.Reveal().Stage(), inpututil.IsKeyJustPressed,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.session.Step(in)
	return nil
}

// Draw renders the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.session.Phase() {
	case game.PhaseRunning:
		drawWorld(screen, g.session.World().State(), g.cfg)
		if g.session.Paused() {
			drawMessage(screen, g.cfg, []string{"PAUSED", "", "Press P to resume"})
		}
	case game.PhaseEnded:
		drawSky(screen, g.cfg)
		drawMessage(screen, g.cfg, g.endLines())
	default:
		drawSky(screen, g.cfg)
		drawMessage(screen, g.cfg, []string{
			"Flappy Valentine",
			"",
			fmt.Sprintf("Catch %d hearts <3", g.cfg.Gameplay.TargetHearts),
			fmt.Sprintf("You have %d lives", g.cfg.Gameplay.MaxLives),
			"",
			"Click or press Space to start",
		})
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.World.Width), int(g.cfg.World.Height)
}

func (g *Game) endLines() []string {
	s := g.session
	lines := []string{
		ascii(game.EndTitle(s.Ending())),
		"",
		fmt.Sprintf("Hearts: %d/%d   Lives: %d", s.Hearts(), g.cfg.Gameplay.TargetHearts, s.Lives()),
		"",
	}
	switch s.Reveal().Stage() {
	case game.RevealClosed:
		lines = append(lines, "[ G ] or click: open your gift")
	case game.RevealQuestion:
		lines = append(lines, game.Question, "", "[ Y ] YES   [ O ] Oh YEAH")
	case game.RevealAnswered:
		lines = append(lines, game.Question, "", ascii(s.Reveal().Answer().Text()))
		return append(lines, "", "Click or press R to play again")
	}
	return append(lines, "", "Press R to play again")
}

// ascii swaps the heart glyph for text the debug font can draw.
func ascii(s string) string {
	return strings.ReplaceAll(s, string(game.HeartChar), "<3")
}

// mapInput turns this frame's presses into actions for the phase.
// Space and clicks start on the title screen and flap during play. On the
// end screen a click takes the next reveal step: open the gift, answer,
// then play again.
func mapInput(phase game.Phase, stage game.RevealStage, justPressed func(ebiten.Key) bool, clicked bool) core.InputFrame {
	in := core.NewInputFrame()

	if justPressed(ebiten.KeyQ) || justPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
		return in
	}

	switch phase {
	case game.PhaseIdle:
		if clicked || justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyEnter) {
			in.Set(core.ActionStart)
		}
	case game.PhaseRunning:
		if clicked || justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyArrowUp) || justPressed(ebiten.KeyW) {
			in.Set(core.ActionFlap)
		}
		if justPressed(ebiten.KeyP) {
			in.Set(core.ActionPause)
		}
	case game.PhaseEnded:
		switch {
		case clicked:
			in.Set(clickAction(stage))
		case justPressed(ebiten.KeyG) || justPressed(ebiten.KeyEnter):
			in.Set(core.ActionGift)
		case justPressed(ebiten.KeyY):
			in.Set(core.ActionAnswerYes)
		case justPressed(ebiten.KeyO):
			in.Set(core.ActionAnswerOhYeah)
		case justPressed(ebiten.KeyR):
			in.Set(core.ActionRestart)
		}
	}
	return in
}

// clickAction is what a click does on the end screen at each reveal stage.
func clickAction(stage game.RevealStage) core.Action {
	switch stage {
	case game.RevealClosed:
		return core.ActionGift
	case game.RevealQuestion:
		return core.ActionAnswerYes
	default:
		return core.ActionRestart
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(session *game.Session, tps int) error {
	cfg := session.Config()
	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Flappy Valentine")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(New(session)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
