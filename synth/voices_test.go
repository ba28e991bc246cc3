package synth

import (
    "testing"
)

func TestStepVoiceCount(t *testing.T) {
    cases := []struct {
        count int
        delta int
        expected int
    }{
        {1, 1, 2},
        {15, 1, 16},
        {16, 1, 1},
        {1, -1, 16},
        {2, -1, 1},
        {8, -1, 7},
    }

    for _, test := range cases {
        if next := StepVoiceCount(test.count, test.delta, 16); next != test.expected {
            t.Errorf("step(%v, %v) = %v, expected %v", test.count, test.delta, next, test.expected)
        }
    }

    if StepVoiceCount(1, 1, 1) != 1 || StepVoiceCount(1, -1, 1) != 1 {
        t.Errorf("a single voice bank should stay at 1")
    }
}

func TestVoiceBankMix(t *testing.T) {
    bank := MakeVoiceBank(4, WaveformSawtooth)

    // all phases at 0, every saw contributes -0.5
    if value := bank.Mix(3, 0, 1000, 44100); value != -1500 {
        t.Errorf("expected -1500, got %v", value)
    }

    bank.Mix(2, 100, 1000, 1000)
    // harmonic 1 moves 0.1, harmonic 2 moves 0.2, the rest stay put
    expected := []float64{0.1, 0.2, 0, 0}
    for i, phase := range bank.Phases {
        if phase < expected[i] - 1e-9 || phase > expected[i] + 1e-9 {
            t.Errorf("voice %v phase %v, expected %v", i, phase, expected[i])
        }
    }
}

func TestVoiceBankMixClampsCount(t *testing.T) {
    bank := MakeVoiceBank(2, WaveformSawtooth)
    if value := bank.Mix(10, 0, 1, 44100); value != -1 {
        t.Errorf("expected only 2 voices to play, got %v", value)
    }
}

func TestVoiceBankTriangle(t *testing.T) {
    bank := MakeVoiceBank(1, WaveformTriangle)
    bank.Phases[0] = 0.5

    // the triangle peaks half way through the period where the saw sits at 0
    if value := bank.Mix(1, 0, 1000, 44100); value != 500 {
        t.Errorf("expected 500 at the triangle peak, got %v", value)
    }
}
