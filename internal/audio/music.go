// Package audio plays the looping background track.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate    = beep.SampleRate(44100)
	resampleQual  = 4
	DefaultVolume = 0.5
)

var (
	speakerMu    sync.Mutex
	speakerReady bool
)

// initSpeaker opens the output device once. A failed attempt may be retried.
func initSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerReady {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speakerReady = true
	return nil
}

// Music loops a WAV file, or the built-in tune when no file is configured.
// Start may fail (no device, unreadable file); callers retry later.
type Music struct {
	mu      sync.Mutex
	path    string
	volume  float64
	started bool
	ctrl    *beep.Ctrl
	closer  io.Closer
}

// NewMusic creates a player for path. An empty path selects the built-in tune.
func NewMusic(path string, volume float64) *Music {
	return &Music{path: path, volume: volume}
}

// Start begins playback. Calling it again after a success does nothing.
func (m *Music) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return nil
	}

	src, closer, err := m.open()
	if err != nil {
		return fmt.Errorf("open music: %w", err)
	}
	if err := initSpeaker(); err != nil {
		if closer != nil {
			closer.Close()
		}
		return fmt.Errorf("init speaker: %w", err)
	}

	m.ctrl = &beep.Ctrl{Streamer: newVolume(src, m.volume)}
	m.closer = closer
	speaker.Play(m.ctrl)
	m.started = true
	return nil
}

// Started reports whether playback is running.
func (m *Music) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}

// Close stops playback and releases the file.
func (m *Music) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return nil
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	m.started = false

	if m.closer != nil {
		err := m.closer.Close()
		m.closer = nil
		return err
	}
	return nil
}

// open builds the endless source stream at the speaker's sample rate.
func (m *Music) open() (beep.Streamer, io.Closer, error) {
	if m.path == "" {
		return NewTune(sampleRate), nil, nil
	}

	f, err := os.Open(m.path)
	if err != nil {
		return nil, nil, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("decode %s: %w", m.path, err)
	}

	var s beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQual, format.SampleRate, sampleRate, s)
	}
	return s, stream, nil
}

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
