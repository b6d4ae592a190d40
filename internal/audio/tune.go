package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tuneNotes is an A minor arpeggio, one entry per step, in Hz.
var tuneNotes = []float64{
	220.00, 261.63, 329.63, 440.00, 329.63, 261.63,
	196.00, 246.94, 293.66, 392.00, 293.66, 246.94,
	174.61, 220.00, 261.63, 349.23, 261.63, 220.00,
	164.81, 207.65, 246.94, 329.63, 246.94, 207.65,
}

const (
	tuneStep     = 160 * time.Millisecond
	tuneLeadAmp  = 0.18
	tuneBassAmp  = 0.22
	tuneDecayPer = 6.0 // Envelope decay rate per second within a step
)

// Tune is an endless chiptune loop: a square-wave lead over a sine bass
// that follows the first note of each bar.
type Tune struct {
	sr        beep.SampleRate
	pos       int
	stepLen   int
	leadPhase float64
	bassPhase float64
}

// NewTune creates the built-in background loop.
func NewTune(sr beep.SampleRate) *Tune {
	return &Tune{sr: sr, stepLen: sr.N(tuneStep)}
}

func (g *Tune) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(g.sr)
	for i := range samples {
		step := (g.pos / g.stepLen) % len(tuneNotes)
		inStep := float64(g.pos%g.stepLen) / rate

		lead := tuneNotes[step]
		bass := tuneNotes[step-step%6] / 2

		sq := 1.0
		if g.leadPhase >= 0.5 {
			sq = -1.0
		}
		env := math.Exp(-inStep * tuneDecayPer)
		sample := tuneLeadAmp*env*sq + tuneBassAmp*math.Sin(2*math.Pi*g.bassPhase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.leadPhase += lead / rate
		g.leadPhase -= math.Floor(g.leadPhase)
		g.bassPhase += bass / rate
		g.bassPhase -= math.Floor(g.bassPhase)
		g.pos++
	}
	return len(samples), true
}

func (g *Tune) Err() error {
	return nil
}
