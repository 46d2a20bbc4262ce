package assets

import (
	"bytes"
	"fmt"

	"github.com/automoto/tilegarden/assets/placeholders"
	"github.com/automoto/tilegarden/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader handles synthesis and caching of sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := config.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = placeholders.Tone(l.context.SampleRate(), tone.Frequency, tone.DurationMs)
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}
