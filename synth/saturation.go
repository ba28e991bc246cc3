package synth

import (
    "fmt"
    "math"
)

// Saturation decides what happens to a mixed sample that does not fit in 16 bits
type Saturation int

const (
    // clamp to the int16 range
    SaturationClip Saturation = iota
    // two's complement wraparound, loud voices fold over into harsh distortion
    SaturationWrap
)

func ParseSaturation(name string) (Saturation, error) {
    switch name {
        case "clip": return SaturationClip, nil
        case "wrap": return SaturationWrap, nil
    }
    return SaturationClip, fmt.Errorf("%w: unknown saturation policy '%v'", ErrInvalidConfig, name)
}

func (saturation Saturation) String() string {
    switch saturation {
        case SaturationClip: return "clip"
        case SaturationWrap: return "wrap"
    }
    return "unknown"
}

// Convert truncates value toward zero into an int16 according to the policy
func (saturation Saturation) Convert(value float64) int16 {
    if math.IsNaN(value) {
        return 0
    }

    switch saturation {
        case SaturationWrap:
            value = min(max(value, math.MinInt64 / 2), math.MaxInt64 / 2)
            return int16(int64(value))
        default:
            value = min(max(value, math.MinInt16), math.MaxInt16)
            return int16(value)
    }
}
