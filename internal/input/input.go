// Package input turns raw terminal bytes into per-frame input state.
package input

import (
	"bufio"
	"bytes"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// maxEscapeLen bounds how long an unterminated escape sequence is held
// back waiting for the rest of its bytes.
const maxEscapeLen = 32

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Restart bool // R or r pressed this frame

	// PointerMoved is set when the terminal reported mouse motion this frame.
	// PointerCol and PointerRow are the last reported 1-based cell.
	PointerMoved bool
	PointerCol   int
	PointerRow   int

	// Pressed holds the raw bytes read this frame. Non-empty means a key was pressed.
	Pressed []byte
}

// KeyPressed reports whether any keyboard input (not mouse motion) arrived this frame.
func (in Input) KeyPressed() bool {
	return len(in.Pressed) > 0
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state for held keys.
type Stream struct {
	ch      chan byte
	state   keyState
	closed  bool
	pending []byte // Escape sequence cut off by the previous read
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 512),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	buf := append([]byte(nil), s.pending...)
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	var tail []byte
	if !s.closed {
		buf, tail = splitIncomplete(buf)
	}
	s.pending = append(s.pending[:0], tail...)
	return parse(buf, &s.state, time.Now())
}

// splitIncomplete separates a trailing escape sequence that has not been
// fully received yet, so it can be completed by the next read.
func splitIncomplete(buf []byte) (complete, tail []byte) {
	i := bytes.LastIndexByte(buf, '\x1b')
	if i < 0 || len(buf)-i > maxEscapeLen {
		return buf, nil
	}
	if incompleteEscape(buf[i:]) {
		return buf[:i], buf[i:]
	}
	return buf, nil
}

// incompleteEscape reports whether seq, starting with ESC, is a prefix of a
// CSI or SGR mouse sequence still missing its final byte.
func incompleteEscape(seq []byte) bool {
	switch {
	case len(seq) == 1:
		return true
	case seq[1] != '[':
		return false
	case len(seq) == 2:
		return true
	case seq[2] != '<':
		return false
	}
	for _, c := range seq[3:] {
		if (c < '0' || c > '9') && c != ';' {
			return false
		}
	}
	return true
}

// parse interprets one frame's bytes, updating held-key timestamps in state.
// Mouse reports are consumed and do not count as key presses.
func parse(buf []byte, state *keyState, now time.Time) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				state.right = now
				in.Pressed = append(in.Pressed, buf[i:i+3]...)
				i += 2
				continue
			case 'D':
				state.left = now
				in.Pressed = append(in.Pressed, buf[i:i+3]...)
				i += 2
				continue
			case '<':
				if col, row, n, ok := parseSGRMouse(buf[i:]); ok {
					in.PointerMoved = true
					in.PointerCol = col
					in.PointerRow = row
					i += n - 1
					continue
				}
			}
		}

		in.Pressed = append(in.Pressed, b)
		switch b {
		case 'q', 'Q', 3: // Ctrl+C arrives as a byte in raw mode
			state.quit = now
		case 'a', 'A':
			state.left = now
		case 'd', 'D':
			state.right = now
		case 'r', 'R':
			in.Restart = true
		}
	}

	in.Quit = now.Sub(state.quit) < keyHoldDuration
	in.Left = now.Sub(state.left) < keyHoldDuration
	in.Right = now.Sub(state.right) < keyHoldDuration
	return in
}

// parseSGRMouse parses "ESC [ < b ; col ; row (M|m)" at the start of buf.
// Returns the cell and the number of bytes consumed.
func parseSGRMouse(buf []byte) (col, row, n int, ok bool) {
	if len(buf) < 3 || buf[0] != '\x1b' || buf[1] != '[' || buf[2] != '<' {
		return 0, 0, 0, false
	}
	var fields [3]int
	field := 0
	digits := 0
	for i := 3; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
			digits++
		case c == ';':
			if digits == 0 || field == 2 {
				return 0, 0, 0, false
			}
			field++
			digits = 0
		case c == 'M' || c == 'm':
			if field != 2 || digits == 0 {
				return 0, 0, 0, false
			}
			return fields[1], fields[2], i + 1, true
		default:
			return 0, 0, 0, false
		}
	}
	return 0, 0, 0, false
}
