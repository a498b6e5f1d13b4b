package listener

import (
	"io"
)

// lineEndings normalizes line endings on a terminal connection. Reads turn "\r\n", "\r\x00"
// and a lone "\r" into "\n"; writes turn "\n" into "\r\n".
type lineEndings struct {
	rw io.ReadWriter

	// afterCR is set when the previous read ended in a carriage return, so a "\n" or NUL
	// opening the next read belongs to the same line ending.
	afterCR bool
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &lineEndings{rw: rw}
}

func (l *lineEndings) Read(p []byte) (int, error) {
	for {
		n, err := l.rw.Read(p)
		out := 0
		for _, b := range p[:n] {
			switch {
			case l.afterCR && (b == '\n' || b == 0):
				l.afterCR = false
				continue
			case b == '\r':
				l.afterCR = true
				b = '\n'
			default:
				l.afterCR = false
			}
			p[out] = b
			out++
		}
		// A read that was only the tail of a line ending would look like EOF to callers.
		if out == 0 && n > 0 && err == nil {
			continue
		}
		return out, err
	}
}

func (l *lineEndings) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(p)+8)
	for _, b := range p {
		if b == '\n' {
			buf = append(buf, '\r')
		}
		buf = append(buf, b)
	}
	_, err := l.rw.Write(buf)
	return len(p), err
}
