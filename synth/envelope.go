package synth

// StraightRelease is a linear fade from 1 at phase 0 to 0 at phase 1
func StraightRelease(phase float64) float64 {
    return 1 - min(max(phase, 0), 1)
}

// Envelope is a one-shot release. Once the phase reaches 1 the envelope
// disables itself and stays silent until the next Trigger.
type Envelope struct {
    Enabled bool
    Phase float64
    // seconds
    Period float64
}

// a fresh envelope sits at its terminal value
func MakeEnvelope() Envelope {
    return Envelope{
        Enabled: false,
        Phase: 1,
    }
}

func (envelope *Envelope) Trigger(period float64) {
    envelope.Period = period
    envelope.Phase = 0
    envelope.Enabled = true
}

func (envelope *Envelope) Value() float64 {
    return StraightRelease(envelope.Phase)
}

// Advance steps the envelope by one sample. Unlike the oscillators the phase
// clamps at 1 instead of wrapping.
func (envelope *Envelope) Advance(sampleRate float64) {
    if !envelope.Enabled {
        return
    }

    if envelope.Period <= 0 {
        envelope.Phase = 1
        envelope.Enabled = false
        return
    }

    envelope.Phase += (1 / envelope.Period) / sampleRate
    if envelope.Phase >= 1.0 {
        envelope.Phase = 1.0
        envelope.Enabled = false
    }
}
