package host

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
)

// Waveform synthesizes one input signal value per tick. Implementations are
// deterministic given the scenario seed; the tick loop calls At exactly once
// per tick in increasing tick order.
type Waveform interface {
	At(tick uint64) float64
}

// NewWaveform builds the generator described by spec. Stochastic shapes draw
// from a rand.Rand derived from the scenario seed and the signal's name, so
// runs with the same seed reproduce the same drive.
func NewWaveform(spec WaveformSpec, rng *rand.Rand) (Waveform, error) {
	switch spec.Shape {
	case "constant":
		return constantWave{level: spec.Value}, nil
	case "sine":
		return sineWave{offset: spec.Value, amplitude: spec.Amplitude, period: spec.PeriodTicks}, nil
	case "pulse":
		return pulseWave{low: spec.Value, high: spec.Amplitude, period: spec.PeriodTicks, highTicks: spec.HighTicks}, nil
	case "noise":
		return &noiseWave{rng: rng, min: spec.Min, max: spec.Max}, nil
	default:
		return nil, fmt.Errorf("unknown waveform shape %q", spec.Shape)
	}
}

func (ws WaveformSpec) validate() error {
	switch ws.Shape {
	case "constant":
	case "sine", "pulse":
		if ws.PeriodTicks == 0 {
			return fmt.Errorf("period_ticks must be > 0 for shape %q", ws.Shape)
		}
	case "noise":
		if ws.Max < ws.Min {
			return fmt.Errorf("noise bounds inverted: max %v < min %v", ws.Max, ws.Min)
		}
	default:
		return fmt.Errorf("unknown waveform shape %q", ws.Shape)
	}
	return nil
}

type constantWave struct {
	level float64
}

func (w constantWave) At(uint64) float64 { return w.level }

type sineWave struct {
	offset    float64
	amplitude float64
	period    uint64
}

func (w sineWave) At(tick uint64) float64 {
	phase := 2 * math.Pi * float64(tick%w.period) / float64(w.period)
	return w.offset + w.amplitude*math.Sin(phase)
}

type pulseWave struct {
	low       float64
	high      float64
	period    uint64
	highTicks uint64
}

func (w pulseWave) At(tick uint64) float64 {
	if tick%w.period < w.highTicks {
		return w.high
	}
	return w.low
}

type noiseWave struct {
	rng *rand.Rand
	min float64
	max float64
}

func (w *noiseWave) At(uint64) float64 {
	return w.min + w.rng.Float64()*(w.max-w.min)
}

// derivedSeed isolates per-signal RNG streams: the master seed is XORed with
// a hash of the signal's name so adding or removing one noisy input does not
// shift the draws of the others.
func derivedSeed(master int64, name string) int64 {
	return master ^ fnv1a64(name)
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
