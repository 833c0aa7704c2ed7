package ui

import (
	"os"
	"path/filepath"

	"retro-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

const (
	eatSoundFile     = "pointSound.mp3"
	collideSoundFile = "collidingSound.mp3"
)

// SoundPlayer plays a sound for food and collision events. It owns the
// audio device.
type SoundPlayer struct {
	eat, collide       rl.Sound
	hasEat, hasCollide bool
	closed             bool
}

// NewSoundPlayer opens the audio device and loads the sounds found in dir.
// Missing files are logged and stay silent.
func NewSoundPlayer(dir string) *SoundPlayer {
	rl.InitAudioDevice()

	sp := &SoundPlayer{}
	sp.eat, sp.hasEat = loadSound(filepath.Join(dir, eatSoundFile))
	sp.collide, sp.hasCollide = loadSound(filepath.Join(dir, collideSoundFile))
	return sp
}

func loadSound(path string) (rl.Sound, bool) {
	if _, err := os.Stat(path); err != nil {
		glog.Warningf("Sound %s unavailable: %v", path, err)
		return rl.Sound{}, false
	}
	return rl.LoadSound(path), true
}

func (sp *SoundPlayer) Notify(e game.Event) {
	if sp.closed {
		return
	}
	switch e.Type {
	case game.EventFoodEaten:
		if sp.hasEat {
			rl.PlaySound(sp.eat)
		}
	case game.EventCollided, game.EventBoardFull:
		if sp.hasCollide {
			rl.PlaySound(sp.collide)
		}
	}
}

// Close unloads the sounds and closes the audio device. Later calls do
// nothing.
func (sp *SoundPlayer) Close() {
	if sp.closed {
		return
	}
	sp.closed = true

	if sp.hasEat {
		rl.UnloadSound(sp.eat)
	}
	if sp.hasCollide {
		rl.UnloadSound(sp.collide)
	}
	rl.CloseAudioDevice()
}
