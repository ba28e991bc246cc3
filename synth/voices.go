package synth

// StepVoiceCount moves count by delta inside [1, maxCount], wrapping at both
// ends: maxCount+1 becomes 1 and 0 becomes maxCount.
func StepVoiceCount(count int, delta int, maxCount int) int {
    if maxCount < 1 {
        return 1
    }
    // shift to 0-based so the modulo wraps cleanly in both directions
    next := (count - 1 + delta) % maxCount
    if next < 0 {
        next += maxCount
    }
    return next + 1
}

// VoiceBank holds one oscillator per harmonic of the fundamental.
// Voice i plays harmonic i+1. Phases of voices above the active count are
// left untouched until they are switched back on.
type VoiceBank struct {
    Phases []float64
    Waveform Waveform
}

func MakeVoiceBank(maxVoices int, waveform Waveform) VoiceBank {
    return VoiceBank{
        Phases: make([]float64, maxVoices),
        Waveform: waveform,
    }
}

// Mix sums one sample of the first count voices, each scaled by amplitude,
// then advances every active phase.
func (bank *VoiceBank) Mix(count int, fundamental float64, amplitude float64, sampleRate float64) float64 {
    count = min(count, len(bank.Phases))

    var sum float64
    for voice := range count {
        harmonic := float64(voice + 1)
        sum += bank.Waveform.Sample(bank.Phases[voice]) * amplitude
        bank.Phases[voice] = Advance(bank.Phases[voice], fundamental * harmonic, sampleRate)
    }

    return sum
}
