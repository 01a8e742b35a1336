package movio

import (
	"errors"
	"io"

	"github.com/ugparu/gomovie/utils/bits/pio"
)

// Reader adapts a seekable byte source to the access pattern of the atom
// decoders: exact-size reads, relative seeks and a non-consuming header
// peek. A clean end of input is reported as io.EOF; truncation inside a
// structure as io.ErrUnexpectedEOF; every other stream fault is wrapped in
// an IOError.
type Reader struct {
	rs io.ReadSeeker
}

func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{rs: rs}
}

// Offset reports the current stream position.
func (r *Reader) Offset() int64 {
	off, _ := r.rs.Seek(0, io.SeekCurrent)
	return off
}

// ReadFull reads exactly n bytes.
func (r *Reader) ReadFull(n int) (b []byte, err error) {
	b = make([]byte, n)
	got, err := io.ReadFull(r.rs, b)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			if got == 0 {
				return nil, io.EOF
			}
			return nil, io.ErrUnexpectedEOF
		}
		return nil, &IOError{Op: "read", Err: err}
	}
	return b, nil
}

// ReadHeader consumes and returns the next 8-byte atom header. A stream
// that ends before a full header is a clean end of input.
func (r *Reader) ReadHeader() (hdr AtomHeader, err error) {
	b, err := r.ReadFull(HeaderSize)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = io.EOF
		}
		return
	}
	hdr.Size = pio.U32BE(b)
	hdr.Type = Tag(pio.U32BE(b[4:]))
	return
}

// PeekHeader returns the next atom header without net-advancing the stream
// position: the 8 bytes are read, then the cursor is seeked back over them.
func (r *Reader) PeekHeader() (hdr AtomHeader, err error) {
	if hdr, err = r.ReadHeader(); err != nil {
		return
	}
	err = r.Skip(-HeaderSize)
	return
}

// Skip moves the cursor relative to its current position.
func (r *Reader) Skip(off int64) error {
	if _, err := r.rs.Seek(off, io.SeekCurrent); err != nil {
		return &IOError{Op: "seek", Err: err}
	}
	return nil
}

// Rewind moves the cursor back to the start of the stream.
func (r *Reader) Rewind() error {
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return &IOError{Op: "seek", Err: err}
	}
	return nil
}
