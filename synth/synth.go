package synth

import (
    "encoding/binary"
    "fmt"
    "math"
    "sync/atomic"

    "github.com/kazzmir/tapesynth/meter"
)

// Synth turns the current controls into 16-bit mono PCM. Oscillator and
// envelope state belong to whoever calls WriteSamples, normally the audio
// callback; the UI only talks to Controls.
type Synth struct {
    Config Config
    Controls *Controls

    voices VoiceBank
    envelope Envelope
    noise NoiseSource
    meter *meter.Meter

    sampleRate float64
    // envelope multiplier at the end of the last fill, for display
    envelopeLevel atomic.Uint64
}

func MakeSynth(config Config, noise NoiseSource) (*Synth, error) {
    if err := config.Validate(); err != nil {
        return nil, err
    }
    if noise == nil {
        return nil, fmt.Errorf("%w: no noise source", ErrInvalidConfig)
    }

    return &Synth{
        Config: config,
        Controls: MakeControls(config.MaxVoices),
        voices: MakeVoiceBank(config.MaxVoices, config.Waveform),
        envelope: MakeEnvelope(),
        noise: noise,
        sampleRate: float64(config.SampleRate),
    }, nil
}

// SetMeter attaches a level meter that sees every chunk the synth produces.
// Must be called before audio starts.
func (synth *Synth) SetMeter(level *meter.Meter) {
    synth.meter = level
}

// Envelope returns the envelope state. Only safe on the goroutine that calls
// WriteSamples; other goroutines use EnvelopeLevel.
func (synth *Synth) Envelope() Envelope {
    return synth.envelope
}

func (synth *Synth) EnvelopeLevel() float64 {
    if synth.Config.Drone {
        return 1
    }
    return math.Float64frombits(synth.envelopeLevel.Load())
}

// NextSample mixes one sample from snapshot, advancing voice and envelope phases
func (synth *Synth) NextSample(snapshot *Snapshot) float64 {
    fundamental := snapshot.Height * synth.Config.FrequencyBase
    value := synth.voices.Mix(snapshot.Voices, fundamental, synth.Config.AmplitudeMax, synth.sampleRate)

    if !synth.Config.Drone {
        value *= synth.envelope.Value()
        synth.envelope.Advance(synth.sampleRate)
    }

    value += Noise(synth.noise) * snapshot.CenterDistance * synth.Config.AmplitudeMax / 2
    return value
}

// WriteSamples synthesizes count samples and stores them little endian at
// buffer[position:]. Every call advances the oscillators, so two calls with
// the same arguments produce different audio.
func (synth *Synth) WriteSamples(buffer []byte, position int, count int) {
    if position % 2 != 0 {
        panic(fmt.Sprintf("unaligned tape write at %v", position))
    }
    if count < 0 || position < 0 || position + count * 2 > len(buffer) {
        panic(fmt.Sprintf("tape write out of range: %v samples at %v, tape is %v bytes", count, position, len(buffer)))
    }

    snapshot := synth.Controls.Snapshot()
    if snapshot.Trigger != TriggerNone {
        synth.envelope.Trigger(synth.Config.period(snapshot.Trigger))
    }

    var scratch []float64
    if synth.meter != nil {
        scratch = synth.meter.Scratch(count)
    }

    for i := range count {
        sample := synth.Config.Saturation.Convert(synth.NextSample(&snapshot))
        binary.LittleEndian.PutUint16(buffer[position + i * 2:], uint16(sample))
        if i < len(scratch) {
            scratch[i] = float64(sample)
        }
    }

    if synth.meter != nil {
        synth.meter.Commit(len(scratch))
    }

    synth.envelopeLevel.Store(math.Float64bits(synth.envelope.Value()))
}
