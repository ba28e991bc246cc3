package synth

// Advance moves phase forward by one sample of a wave at frequency hz. The
// result stays in [0, 1). On wraparound exactly 1.0 is subtracted so the
// fractional part carries into the next period.
func Advance(phase float64, frequency float64, sampleRate float64) float64 {
    phase += frequency / sampleRate
    for phase >= 1.0 {
        phase -= 1.0
    }
    for phase < 0 {
        phase += 1.0
    }
    return phase
}
