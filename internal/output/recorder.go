package output

import "strings"

// LineRecorder is an io.Writer that collects written bytes into
// complete lines. Incomplete trailing data stays buffered until the
// next write or Flush, so writers that emit partial lines still
// record whole lines in order.
type LineRecorder struct {
	lines  []string
	buffer []byte
}

// NewLineRecorder creates an empty recorder.
func NewLineRecorder() *LineRecorder {
	return &LineRecorder{
		buffer: make([]byte, 0),
	}
}

// Write appends p, splitting completed lines off the buffer.
func (r *LineRecorder) Write(p []byte) (n int, err error) {
	r.buffer = append(r.buffer, p...)

	parts := strings.Split(string(r.buffer), "\n")

	// The final element is an incomplete line; keep it buffered.
	r.buffer = []byte(parts[len(parts)-1])
	r.lines = append(r.lines, parts[:len(parts)-1]...)

	return len(p), nil
}

// Flush records any buffered partial line as a final line.
func (r *LineRecorder) Flush() {
	if len(r.buffer) > 0 {
		r.lines = append(r.lines, string(r.buffer))
		r.buffer = r.buffer[:0]
	}
}

// Lines returns the recorded lines in write order.
func (r *LineRecorder) Lines() []string {
	return append([]string(nil), r.lines...)
}
