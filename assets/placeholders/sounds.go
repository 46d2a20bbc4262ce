package placeholders

import (
	"encoding/binary"
	"math"
)

// Tone renders a sine blip with a linear fade-out as 16-bit little-endian
// stereo PCM, the format ebiten's audio players read.
func Tone(sampleRate int, frequency float64, durationMs int) []byte {
	n := sampleRate * durationMs / 1000
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*frequency*t) * fade * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(v))
	}
	return pcm
}
