package meter

import (
    "math"
    "testing"
)

func TestMeterLevel(t *testing.T) {
    meter := MakeMeter(4)

    scratch := meter.Scratch(2)
    scratch[0] = 3
    scratch[1] = -4
    meter.Commit(2)

    level := meter.Level()
    expected := math.Sqrt((9.0 + 16.0) / 2)
    if math.Abs(level.RMS - expected) > 1e-9 {
        t.Errorf("rms %v, expected %v", level.RMS, expected)
    }
    if level.Peak != 4 {
        t.Errorf("peak %v, expected 4", level.Peak)
    }
    if level.Chunks != 1 {
        t.Errorf("chunks %v", level.Chunks)
    }
}

func TestMeterCapacity(t *testing.T) {
    meter := MakeMeter(4)
    if len(meter.Scratch(100)) != 4 {
        t.Errorf("scratch should be cut to capacity")
    }

    // nothing measured keeps the old level
    meter.Commit(0)
    if meter.Level().Chunks != 0 {
        t.Errorf("empty commit counted as a chunk")
    }
}

func TestMeterFullScale(t *testing.T) {
    level := Level{RMS: math.MaxInt16, Peak: math.MaxInt16 / 2}
    if level.RMSFullScale() != 1 {
        t.Errorf("full scale rms %v", level.RMSFullScale())
    }
    if level.PeakFullScale() > 0.5 {
        t.Errorf("half scale peak %v", level.PeakFullScale())
    }
}
