package synth

import (
    "math"
    "sync/atomic"
)

type Trigger int32

const (
    TriggerNone Trigger = iota
    // short release, bound to trigger_envelope
    TriggerPluck
    // long release, bound to trigger_sustain
    TriggerSustain
)

func (trigger Trigger) String() string {
    switch trigger {
        case TriggerNone: return "none"
        case TriggerPluck: return "pluck"
        case TriggerSustain: return "sustain"
    }
    return "unknown"
}

// Controls carries the UI scalars over to the audio callback. The UI frame
// loop is the only writer and the callback the only reader of each value, so
// plain atomic loads and stores are enough.
type Controls struct {
    height atomic.Uint64
    centerDistance atomic.Uint64
    voices atomic.Int32
    pending atomic.Int32

    maxVoices int32
}

// Snapshot is what the writer sees for the duration of one fill
type Snapshot struct {
    Height float64
    CenterDistance float64
    Voices int
    Trigger Trigger
}

func MakeControls(maxVoices int) *Controls {
    controls := &Controls{
        maxVoices: int32(max(maxVoices, 1)),
    }
    controls.voices.Store(1)
    return controls
}

func clampUnit(value float64) float64 {
    if math.IsNaN(value) {
        return 0
    }
    return min(max(value, 0), 1)
}

func (controls *Controls) SetHeight(height float64) {
    controls.height.Store(math.Float64bits(clampUnit(height)))
}

func (controls *Controls) SetCenterDistance(distance float64) {
    controls.centerDistance.Store(math.Float64bits(clampUnit(distance)))
}

func (controls *Controls) Height() float64 {
    return math.Float64frombits(controls.height.Load())
}

func (controls *Controls) CenterDistance() float64 {
    return math.Float64frombits(controls.centerDistance.Load())
}

func (controls *Controls) Voices() int {
    return int(controls.voices.Load())
}

// StepVoices applies a +1/-1 voice count change and returns the new count
func (controls *Controls) StepVoices(delta int) int {
    for {
        old := controls.voices.Load()
        next := int32(StepVoiceCount(int(old), delta, int(controls.maxVoices)))
        if controls.voices.CompareAndSwap(old, next) {
            return int(next)
        }
    }
}

// Trigger arms an envelope retrigger. Several triggers between two fills
// collapse into the last one.
func (controls *Controls) Trigger(trigger Trigger) {
    controls.pending.Store(int32(trigger))
}

// Snapshot reads every scalar once and consumes the pending trigger
func (controls *Controls) Snapshot() Snapshot {
    return Snapshot{
        Height: controls.Height(),
        CenterDistance: controls.CenterDistance(),
        Voices: controls.Voices(),
        Trigger: Trigger(controls.pending.Swap(int32(TriggerNone))),
    }
}
