package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPaint
	SoundSpawn
	SoundToggle
	SoundSelect
)

// Tone is a synthesized blip: a decaying sine.
type Tone struct {
	Frequency  float64 // Hz
	DurationMs int
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	VolumeStep    float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
		VolumeStep:    0.1,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPaint:  {Frequency: 880, DurationMs: 40},
			SoundSpawn:  {Frequency: 523, DurationMs: 120},
			SoundToggle: {Frequency: 330, DurationMs: 80},
			SoundSelect: {Frequency: 660, DurationMs: 60},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPaint: 0.4,
		},
	}
}
