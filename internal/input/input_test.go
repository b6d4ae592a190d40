package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseKeys(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"restart lower", "r", Input{Restart: true}},
		{"restart upper", "R", Input{Restart: true}},
		{"quit", "q", Input{Quit: true}},
		{"left arrow", "\x1b[D", Input{Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"wasd", "ad", Input{Left: true, Right: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st keyState
			got := parse([]byte(tt.in), &st, now)
			if got.Restart != tt.want.Restart || got.Quit != tt.want.Quit ||
				got.Left != tt.want.Left || got.Right != tt.want.Right {
				t.Errorf("parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if !got.KeyPressed() {
				t.Error("keyboard input should count as a key press")
			}
		})
	}
}

func TestParseMouseMotion(t *testing.T) {
	var st keyState
	got := parse([]byte("\x1b[<35;42;7M\x1b[<35;50;8M"), &st, time.Now())
	if !got.PointerMoved {
		t.Fatal("expected pointer motion")
	}
	if got.PointerCol != 50 || got.PointerRow != 8 {
		t.Errorf("pointer = (%d,%d), want last report (50,8)", got.PointerCol, got.PointerRow)
	}
	if got.KeyPressed() {
		t.Errorf("mouse reports must not count as key presses, got %q", got.Pressed)
	}
}

func TestParseMalformedMouseFallsBackToBytes(t *testing.T) {
	var st keyState
	got := parse([]byte("\x1b[<35;x"), &st, time.Now())
	if got.PointerMoved {
		t.Error("malformed report should not move the pointer")
	}
	if !got.KeyPressed() {
		t.Error("unparsed bytes should be reported as pressed")
	}
}

func TestHeldKeyExpires(t *testing.T) {
	var st keyState
	now := time.Now()
	parse([]byte("a"), &st, now)
	if got := parse(nil, &st, now.Add(10*time.Millisecond)); !got.Left {
		t.Error("key should still be held within the hold duration")
	}
	if got := parse(nil, &st, now.Add(keyHoldDuration)); got.Left {
		t.Error("key should be released after the hold duration")
	}
}

func TestStreamDeliversBytes(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("r")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if in := ReadInput(s); in.Restart {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("restart key never arrived")
}

func TestStreamReportsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("")))
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		ReadInput(s)
		if s.Closed() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("stream never reported close")
}

func TestSplitMouseReportAcrossReads(t *testing.T) {
	s := &Stream{ch: make(chan byte, 64)}
	send := func(str string) {
		for i := 0; i < len(str); i++ {
			s.ch <- str[i]
		}
	}

	send("\x1b[<35;10")
	in := ReadInput(s)
	if in.PointerMoved || in.KeyPressed() {
		t.Fatalf("partial report decoded as %+v", in)
	}

	send(";5M")
	in = ReadInput(s)
	if !in.PointerMoved || in.PointerCol != 10 || in.PointerRow != 5 {
		t.Errorf("completed report = %+v, want pointer at 10,5", in)
	}
	if in.KeyPressed() {
		t.Errorf("mouse report counted as a key press: %q", in.Pressed)
	}
}

func TestSplitArrowAcrossReads(t *testing.T) {
	s := &Stream{ch: make(chan byte, 64)}
	s.ch <- '\x1b'
	if in := ReadInput(s); in.KeyPressed() {
		t.Fatalf("lone ESC reported before the sequence finished: %+v", in)
	}
	s.ch <- '['
	s.ch <- 'D'
	if in := ReadInput(s); !in.Left {
		t.Errorf("split arrow not decoded: %+v", in)
	}
}

func TestSplitIncomplete(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		complete string
	}{
		{"plain keys", "ab", "ab"},
		{"complete mouse", "a\x1b[<35;1;2M", "a\x1b[<35;1;2M"},
		{"cut mouse", "a\x1b[<35;1", "a"},
		{"cut csi", "a\x1b[", "a"},
		{"lone esc", "a\x1b", "a"},
		{"complete arrow", "\x1b[C", "\x1b[C"},
		{"not a csi", "\x1bx", "\x1bx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complete, tail := splitIncomplete([]byte(tt.in))
			if string(complete) != tt.complete {
				t.Errorf("complete = %q, want %q", complete, tt.complete)
			}
			if string(complete)+string(tail) != tt.in {
				t.Errorf("bytes lost: %q + %q", complete, tail)
			}
		})
	}
}
