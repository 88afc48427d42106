// internal/sound/shot.go
package sound

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"go-waypoint-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate   = 44100
	shotDuration = 80 * time.Millisecond
	shotFreq     = 880.0
	shotVolume   = 0.3
)

// ShotPlayer проигрывает звук выстрела на каждое событие TurretFired.
type ShotPlayer struct {
	player *audio.Player
}

// NewShotPlayer синтезирует короткий звук и подписывается на выстрелы.
func NewShotPlayer(ctx *audio.Context, dispatcher *event.Dispatcher) *ShotPlayer {
	p := ctx.NewPlayerFromBytes(ShotPCM(SampleRate, shotDuration, shotFreq))
	p.SetVolume(shotVolume)
	sp := &ShotPlayer{player: p}
	dispatcher.Subscribe(sp, event.TurretFired)
	return sp
}

func (s *ShotPlayer) OnEvent(e event.Event) {
	if e.Type != event.TurretFired {
		return
	}
	if err := s.player.Rewind(); err != nil {
		log.Printf("ShotPlayer: rewind: %v", err)
		return
	}
	s.player.Play()
}

// ShotPCM: затухающая синусоида, 16 бит, стерео, little-endian.
func ShotPCM(sampleRate int, d time.Duration, freq float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		decay := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * decay * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
