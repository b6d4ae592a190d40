package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

func TestTuneStreamsInRange(t *testing.T) {
	tune := NewTune(sampleRate)
	samples := make([][2]float64, sampleRate.N(tuneStep)*3)

	n, ok := tune.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	peak := 0.0
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
		if samples[i][1] != v {
			t.Fatalf("sample %d not mono", i)
		}
		peak = max(peak, v)
	}
	if peak == 0 {
		t.Error("tune is silent")
	}
	if tune.Err() != nil {
		t.Errorf("Err() = %v", tune.Err())
	}
}

func TestStartMissingFile(t *testing.T) {
	m := NewMusic(filepath.Join(t.TempDir(), "missing.wav"), DefaultVolume)
	if err := m.Start(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if m.Started() {
		t.Error("Started() after a failed start")
	}
}

func TestStartInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewMusic(path, DefaultVolume)
	if err := m.Start(); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestOpenLoopsAndResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(100, NewTune(format.SampleRate)), format); err != nil {
		t.Fatal(err)
	}
	f.Close()

	m := NewMusic(path, DefaultVolume)
	s, closer, err := m.open()
	if err != nil {
		t.Fatalf("open() error = %v", err)
	}
	defer closer.Close()

	// Far more than the file holds: the loop never ends.
	buf := make([][2]float64, 1000)
	if n, ok := s.Stream(buf); !ok || n != len(buf) {
		t.Errorf("Stream() = %d, %v", n, ok)
	}
}

func TestNewVolume(t *testing.T) {
	silent := newVolume(NewTune(sampleRate), 0).(*effects.Volume)
	if !silent.Silent {
		t.Error("zero volume should be silent")
	}
	half := newVolume(NewTune(sampleRate), 0.5).(*effects.Volume)
	if half.Silent || half.Volume != -1 {
		t.Errorf("half volume = %+v", half)
	}
}

func TestCloseBeforeStart(t *testing.T) {
	if err := NewMusic("", DefaultVolume).Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
