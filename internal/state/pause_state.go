// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-waypoint-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

var pauseOverlay = color.RGBA{0, 0, 0, 140}

// PauseState замораживает часы симуляции и рисует игру под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	clock         *utils.PausableClock
}

func NewPauseState(sm *StateMachine, prevState State, clock *utils.PausableClock) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		clock:         clock,
	}
}

func (s *PauseState) Enter() {
	s.clock.Pause()
}

func (s *PauseState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), pauseOverlay, false)
	text.Draw(screen, "PAUSED - press P to resume", basicfont.Face7x13, b.Dx()/2-90, b.Dy()/2, color.White)
}

func (s *PauseState) Exit() {
	s.clock.Resume()
}
