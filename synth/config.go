package synth

import (
    "errors"
    "fmt"
    "strconv"
)

var ErrInvalidConfig = errors.New("invalid synth config")

const (
    DefaultSampleRate = 44100
    // A_MAX, per-voice amplitude. Leaves headroom for a handful of voices before 16 bits overflow
    DefaultAmplitudeMax = 1000
    // FREQ_BASE in hz, pitch of the fundamental with the pointer at the top of the field
    DefaultFrequencyBase = 220
    // MAX_COUNT
    DefaultMaxVoices = 16

    // amplitude presets, speakers need far more level than headphones
    AmplitudeHeadphones = (1 << 11) - 1
    AmplitudeSpeaker = (1 << 14) - 1
)

type Config struct {
    SampleRate int
    AmplitudeMax float64
    FrequencyBase float64
    MaxVoices int
    Waveform Waveform

    // release time in seconds of each trigger kind
    PluckPeriod float64
    SustainPeriod float64

    Saturation Saturation

    // bypass the envelope, the voices play continuously
    Drone bool
}

func DefaultConfig() Config {
    return Config{
        SampleRate: DefaultSampleRate,
        AmplitudeMax: DefaultAmplitudeMax,
        FrequencyBase: DefaultFrequencyBase,
        MaxVoices: DefaultMaxVoices,
        Waveform: WaveformSawtooth,
        PluckPeriod: 0.5,
        SustainPeriod: 3,
        Saturation: SaturationClip,
    }
}

// ParseAmplitude accepts a preset name or a number
func ParseAmplitude(value string) (float64, error) {
    switch value {
        case "headphones": return AmplitudeHeadphones, nil
        case "speaker": return AmplitudeSpeaker, nil
    }

    amplitude, err := strconv.ParseFloat(value, 64)
    if err != nil || amplitude <= 0 {
        return 0, fmt.Errorf("%w: amplitude '%v'", ErrInvalidConfig, value)
    }
    return amplitude, nil
}

func (config Config) Validate() error {
    if config.SampleRate <= 0 {
        return fmt.Errorf("%w: sample rate %v", ErrInvalidConfig, config.SampleRate)
    }
    if config.AmplitudeMax <= 0 {
        return fmt.Errorf("%w: amplitude %v", ErrInvalidConfig, config.AmplitudeMax)
    }
    if config.FrequencyBase <= 0 {
        return fmt.Errorf("%w: base frequency %v", ErrInvalidConfig, config.FrequencyBase)
    }
    if config.MaxVoices < 1 {
        return fmt.Errorf("%w: max voices %v", ErrInvalidConfig, config.MaxVoices)
    }
    if config.PluckPeriod <= 0 || config.SustainPeriod <= 0 {
        return fmt.Errorf("%w: envelope periods %v/%v", ErrInvalidConfig, config.PluckPeriod, config.SustainPeriod)
    }
    if config.Waveform != WaveformSawtooth && config.Waveform != WaveformTriangle {
        return fmt.Errorf("%w: waveform %v", ErrInvalidConfig, config.Waveform)
    }
    if config.Saturation != SaturationClip && config.Saturation != SaturationWrap {
        return fmt.Errorf("%w: saturation %v", ErrInvalidConfig, config.Saturation)
    }
    return nil
}

// period returns the release time that goes with a trigger
func (config Config) period(trigger Trigger) float64 {
    if trigger == TriggerSustain {
        return config.SustainPeriod
    }
    return config.PluckPeriod
}
