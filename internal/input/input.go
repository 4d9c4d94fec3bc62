// Package input turns raw terminal bytes into discrete key events.
package input

import (
	"io"
)

// Key is a recognized key press.
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyRestart
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyRestart:
		return "restart"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Stream delivers input bytes via a channel so the frame loop never blocks on reads.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence carried to the next Read
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r returns an error; Closed reports that afterwards.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
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

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes (non-blocking) and returns the keys they encode,
// in order, plus the number of bytes received. Bytes that do not map to a key
// are dropped but still counted.
func (s *Stream) Read() (keys []Key, n int) {
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			n++
		default:
			break drain
		}
	}

	keys, rest := Parse(buf)
	if !s.closed && len(rest) > 0 {
		s.pending = append(s.pending[:0], rest...)
	}
	return keys, n
}

// Parse decodes keys from buf. It returns the keys and any trailing bytes that
// may be the start of an escape sequence split across reads.
func Parse(buf []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI "ESC [" or SS3 "ESC O" followed by the cursor key code
			if i+1 >= len(buf) {
				return keys, buf[i:]
			}
			if buf[i+1] == '[' || buf[i+1] == 'O' {
				if i+2 >= len(buf) {
					return keys, buf[i:]
				}
				switch buf[i+2] {
				case 'C':
					keys = append(keys, KeyRight)
				case 'D':
					keys = append(keys, KeyLeft)
				}
				i += 2
			}
			continue
		}

		if k, ok := byteKey(b); ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// byteKey maps single-byte keys.
func byteKey(b byte) (Key, bool) {
	switch b {
	case 'a', 'A', 'h', 'H':
		return KeyLeft, true
	case 'd', 'D', 'l', 'L':
		return KeyRight, true
	case 'r', 'R', ' ', '\n', '\r':
		return KeyRestart, true
	case 'q', 'Q', '\x03':
		return KeyQuit, true
	}
	return 0, false
}
