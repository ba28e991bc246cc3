package tape

import (
    "errors"
    "fmt"
    "sync/atomic"
)

const BytesPerSample = 2

var ErrBadTape = errors.New("bad tape size")

// Writer produces count fresh samples at buffer[position:]. The tape never
// asks for a write that crosses its end.
type Writer interface {
    WriteSamples(buffer []byte, position int, count int)
}

// Tape is a fixed circular buffer of 16-bit mono samples that the audio
// device drains from. Each pull refills the bytes it just drained, so a region
// is always rewritten before the cursor comes back around to it.
//
// The cursor and buffer belong to the goroutine calling Pull/Read.
type Tape struct {
    buffer []byte
    cursor int
    writer Writer

    drained atomic.Uint64
}

// MakeTape allocates a tape of size bytes. The tape starts out silent.
func MakeTape(size int, writer Writer) (*Tape, error) {
    if size <= 0 || size % BytesPerSample != 0 {
        return nil, fmt.Errorf("%w: %v bytes is not a whole number of samples", ErrBadTape, size)
    }
    if writer == nil {
        return nil, fmt.Errorf("%w: no writer", ErrBadTape)
    }

    return &Tape{
        buffer: make([]byte, size),
        writer: writer,
    }, nil
}

func (tape *Tape) Len() int {
    return len(tape.buffer)
}

func (tape *Tape) Cursor() int {
    return tape.cursor
}

// total bytes handed to the device, safe to read from any goroutine
func (tape *Tape) Drained() uint64 {
    return tape.drained.Load()
}

// Prime fills the whole tape from the writer, starting at the cursor
func (tape *Tape) Prime() {
    tape.refill(tape.cursor, len(tape.buffer))
}

// drain copies len(out) bytes starting at the cursor, wrapping to the top of
// the tape at most once. It returns where the copy started.
func (tape *Tape) drain(out []byte) int {
    start := tape.cursor
    requested := len(out)

    remaining := len(tape.buffer) - tape.cursor
    if remaining <= requested {
        copy(out, tape.buffer[tape.cursor:])
        out = out[remaining:]
        requested -= remaining
        tape.cursor = 0
    }

    tape.cursor += copy(out, tape.buffer[tape.cursor:tape.cursor + requested])

    return start
}

// refill rewrites size bytes starting at start, split in two at the tape end
func (tape *Tape) refill(start int, size int) {
    end := start + size
    if end > len(tape.buffer) {
        first := len(tape.buffer) - start
        tape.writer.WriteSamples(tape.buffer, start, first / BytesPerSample)
        tape.writer.WriteSamples(tape.buffer, 0, (size - first) / BytesPerSample)
    } else {
        tape.writer.WriteSamples(tape.buffer, start, size / BytesPerSample)
    }
}

// Pull is the device callback: drain len(out) bytes then regenerate the
// region that was just drained. Requests longer than the tape are served in
// tape sized cycles.
func (tape *Tape) Pull(out []byte) {
    if tape.buffer == nil {
        panic("pull from a released tape")
    }
    if len(out) % BytesPerSample != 0 {
        panic(fmt.Sprintf("unaligned pull of %v bytes", len(out)))
    }

    for len(out) > 0 {
        size := min(len(out), len(tape.buffer))
        start := tape.drain(out[:size])
        tape.refill(start, size)
        tape.drained.Add(uint64(size))
        out = out[size:]
    }
}

// Read lets an audio player pull from the tape directly. It always fills p
// and never fails.
func (tape *Tape) Read(p []byte) (int, error) {
    tape.Pull(p)
    return len(p), nil
}

// Release drops the sample memory. The device must be stopped first.
func (tape *Tape) Release() {
    tape.buffer = nil
    tape.cursor = 0
}
