package synth

import (
    "math"
    "sync"
    "testing"
)

func TestControlsClamp(t *testing.T) {
    controls := MakeControls(4)

    controls.SetHeight(2)
    controls.SetCenterDistance(-1)
    if controls.Height() != 1 || controls.CenterDistance() != 0 {
        t.Errorf("controls not clamped: %v %v", controls.Height(), controls.CenterDistance())
    }

    controls.SetHeight(math.NaN())
    if controls.Height() != 0 {
        t.Errorf("nan height stored as %v", controls.Height())
    }
}

func TestControlsVoices(t *testing.T) {
    controls := MakeControls(3)
    if controls.Voices() != 1 {
        t.Fatalf("expected 1 voice at start, got %v", controls.Voices())
    }

    controls.StepVoices(1)
    controls.StepVoices(1)
    if controls.StepVoices(1) != 1 {
        t.Errorf("voices should wrap to 1 after the max")
    }
    if controls.StepVoices(-1) != 3 {
        t.Errorf("voices should wrap to the max below 1")
    }
}

func TestControlsTriggerEdge(t *testing.T) {
    controls := MakeControls(1)

    controls.Trigger(TriggerPluck)
    if snapshot := controls.Snapshot(); snapshot.Trigger != TriggerPluck {
        t.Errorf("expected pluck, got %v", snapshot.Trigger)
    }
    if snapshot := controls.Snapshot(); snapshot.Trigger != TriggerNone {
        t.Errorf("trigger should be consumed once, got %v", snapshot.Trigger)
    }
}

func TestControlsConcurrent(t *testing.T) {
    controls := MakeControls(16)

    var wait sync.WaitGroup
    wait.Add(1)
    go func(){
        defer wait.Done()
        for i := range 1000 {
            controls.SetHeight(float64(i % 2))
            controls.SetCenterDistance(float64(i % 2))
            controls.StepVoices(1)
        }
    }()

    for range 1000 {
        snapshot := controls.Snapshot()
        if snapshot.Height != 0 && snapshot.Height != 1 {
            t.Fatalf("torn height %v", snapshot.Height)
        }
        if snapshot.Voices < 1 || snapshot.Voices > 16 {
            t.Fatalf("voices out of range %v", snapshot.Voices)
        }
    }

    wait.Wait()
}
