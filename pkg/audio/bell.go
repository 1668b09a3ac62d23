package audio

import (
	"encoding/binary"
	"math"
)

const (
	bellSampleRate = 44100
	bellSeconds    = 0.8
)

// Bell synthesizes the built-in kitchen bell: two partials with an
// exponential decay, mono 16-bit at 44.1kHz.
func Bell() *Sound {
	samples := int(bellSampleRate * bellSeconds)
	data := make([]byte, samples*2)

	for i := 0; i < samples; i++ {
		t := float64(i) / bellSampleRate
		envelope := math.Exp(-5 * t)
		v := 0.6*math.Sin(2*math.Pi*880*t) + 0.3*math.Sin(2*math.Pi*1320*t)
		sample := int16(v * envelope * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(data[i*2:], uint16(sample))
	}

	return &Sound{
		Format: Format{SampleRate: bellSampleRate, Channels: 1, BitDepth: 16},
		Data:   data,
	}
}
