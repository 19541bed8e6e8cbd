package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/valentine-flappy/internal/config"
	"github.com/vovakirdan/valentine-flappy/internal/core"
	"github.com/vovakirdan/valentine-flappy/internal/game"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestMapInput(t *testing.T) {
	tests := []struct {
		name    string
		phase   game.Phase
		stage   game.RevealStage
		keys    []ebiten.Key
		clicked bool
		want    core.Action
	}{
		{"space starts", game.PhaseIdle, game.RevealClosed, []ebiten.Key{ebiten.KeySpace}, false, core.ActionStart},
		{"click starts", game.PhaseIdle, game.RevealClosed, nil, true, core.ActionStart},
		{"click flaps", game.PhaseRunning, game.RevealClosed, nil, true, core.ActionFlap},
		{"space flaps", game.PhaseRunning, game.RevealClosed, []ebiten.Key{ebiten.KeySpace}, false, core.ActionFlap},
		{"up flaps", game.PhaseRunning, game.RevealClosed, []ebiten.Key{ebiten.KeyArrowUp}, false, core.ActionFlap},
		{"p pauses", game.PhaseRunning, game.RevealClosed, []ebiten.Key{ebiten.KeyP}, false, core.ActionPause},
		{"g opens gift", game.PhaseEnded, game.RevealClosed, []ebiten.Key{ebiten.KeyG}, false, core.ActionGift},
		{"y answers", game.PhaseEnded, game.RevealClosed, []ebiten.Key{ebiten.KeyY}, false, core.ActionAnswerYes},
		{"o answers", game.PhaseEnded, game.RevealClosed, []ebiten.Key{ebiten.KeyO}, false, core.ActionAnswerOhYeah},
		{"r restarts", game.PhaseEnded, game.RevealClosed, []ebiten.Key{ebiten.KeyR}, false, core.ActionRestart},
		{"q quits", game.PhaseRunning, game.RevealClosed, []ebiten.Key{ebiten.KeyQ}, false, core.ActionQuit},
		{"click opens gift", game.PhaseEnded, game.RevealClosed, nil, true, core.ActionGift},
		{"click answers", game.PhaseEnded, game.RevealQuestion, nil, true, core.ActionAnswerYes},
		{"click plays again", game.PhaseEnded, game.RevealAnswered, nil, true, core.ActionRestart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mapInput(tt.phase, tt.stage, pressed(tt.keys...), tt.clicked)
			if !in.Has(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, in.Actions)
			}
		})
	}
}

func TestMapInputIgnoresOtherPhases(t *testing.T) {
	in := mapInput(game.PhaseIdle, game.RevealClosed, pressed(ebiten.KeyR), false)
	if len(in.Actions) != 0 {
		t.Errorf("r on title screen produced %v", in.Actions)
	}

	in = mapInput(game.PhaseRunning, game.RevealClosed, pressed(ebiten.KeyG), false)
	if len(in.Actions) != 0 {
		t.Errorf("g during play produced %v", in.Actions)
	}
}

func TestEndScreenClicksWalkTheReveal(t *testing.T) {
	cfg := config.DefaultValentineConfig()
	session := game.NewSession(cfg, core.RuntimeConfig{Seed: 3})
	session.Start()
	st := session.World().State()
	st.Lives = 1
	st.Bird.Pos[1] = cfg.World.FloorY - cfg.Bird.Radius
	session.Step(core.NewInputFrame())
	if session.Phase() != game.PhaseEnded {
		t.Fatalf("Phase = %v, expected ended", session.Phase())
	}

	click := func() {
		session.Step(mapInput(session.Phase(), session.Reveal().Stage(), pressed(), true))
	}

	click()
	if session.Reveal().Stage() != game.RevealQuestion {
		t.Fatalf("first click: stage = %v, expected question", session.Reveal().Stage())
	}
	click()
	if session.Reveal().Stage() != game.RevealAnswered || session.Reveal().Answer() != game.AnswerYes {
		t.Fatalf("second click: stage = %v, expected answered yes", session.Reveal().Stage())
	}
	click()
	if session.Phase() != game.PhaseIdle {
		t.Errorf("third click: phase = %v, expected idle", session.Phase())
	}
}

func TestAscii(t *testing.T) {
	if got := ascii(game.EndTitle(game.EndingWin)); got != "You did it! <3" {
		t.Errorf("ascii = %q", got)
	}
}
