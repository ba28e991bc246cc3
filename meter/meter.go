package meter

import (
    "math"
    "sync/atomic"

    "gonum.org/v1/gonum/floats"
)

// Meter keeps the level of the most recently synthesized chunk. The audio side
// fills Scratch and calls Commit; the UI reads Level from any goroutine.
type Meter struct {
    scratch []float64
    rms atomic.Uint64
    peak atomic.Uint64
    chunks atomic.Uint64
}

// capacity is the largest chunk, in samples, the meter will ever look at
func MakeMeter(capacity int) *Meter {
    return &Meter{
        scratch: make([]float64, max(capacity, 1)),
    }
}

// Scratch returns room for up to n samples. Longer chunks are cut to the
// meter's capacity.
func (meter *Meter) Scratch(n int) []float64 {
    return meter.scratch[:min(n, len(meter.scratch))]
}

// Commit measures the first n samples written into Scratch
func (meter *Meter) Commit(n int) {
    n = min(n, len(meter.scratch))
    if n <= 0 {
        return
    }

    samples := meter.scratch[:n]
    rms := floats.Norm(samples, 2) / math.Sqrt(float64(n))
    peak := max(floats.Max(samples), -floats.Min(samples))

    meter.rms.Store(math.Float64bits(rms))
    meter.peak.Store(math.Float64bits(peak))
    meter.chunks.Add(1)
}

type Level struct {
    RMS float64
    Peak float64
    // number of chunks measured so far
    Chunks uint64
}

// Level as a fraction of int16 full scale
func (level Level) RMSFullScale() float64 {
    return level.RMS / math.MaxInt16
}

func (level Level) PeakFullScale() float64 {
    return level.Peak / math.MaxInt16
}

func (meter *Meter) Level() Level {
    return Level{
        RMS: math.Float64frombits(meter.rms.Load()),
        Peak: math.Float64frombits(meter.peak.Load()),
        Chunks: meter.chunks.Load(),
    }
}
