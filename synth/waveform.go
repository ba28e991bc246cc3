package synth

import (
    "fmt"
)

// NoiseSource supplies uniformly distributed values in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it, tests pass a seeded one.
type NoiseSource interface {
    Float64() float64
}

// Sawtooth is a linear ramp from -0.5 at phase 0 up to +0.5 at phase 1.
func Sawtooth(phase float64) float64 {
    phase = min(max(phase, 0), 1)
    return phase - 0.5
}

// Noise draws a single value in [-0.5, 0.5) from source
func Noise(source NoiseSource) float64 {
    return source.Float64() - 0.5
}

// Triangle climbs from -0.5 at phase 0 to +0.5 at phase 0.5 and falls back to
// -0.5 at phase 1
func Triangle(phase float64) float64 {
    phase = min(max(phase, 0), 1)
    if phase < 0.5 {
        return phase * 2 - 0.5
    }
    return (1 - phase) * 2 - 0.5
}

// Waveform picks the oscillator shape every voice plays
type Waveform int

const (
    WaveformSawtooth Waveform = iota
    WaveformTriangle
)

func ParseWaveform(name string) (Waveform, error) {
    switch name {
        case "saw", "sawtooth": return WaveformSawtooth, nil
        case "triangle": return WaveformTriangle, nil
    }
    return WaveformSawtooth, fmt.Errorf("%w: unknown waveform '%v'", ErrInvalidConfig, name)
}

func (waveform Waveform) String() string {
    switch waveform {
        case WaveformSawtooth: return "saw"
        case WaveformTriangle: return "triangle"
    }
    return "unknown"
}

func (waveform Waveform) Sample(phase float64) float64 {
    switch waveform {
        case WaveformTriangle: return Triangle(phase)
        default: return Sawtooth(phase)
    }
}
