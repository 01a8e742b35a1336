package movio

import (
	"errors"
	"io"
)

// atomHandler decodes one child atom, consuming exactly its declared size
// from the stream.
type atomHandler func(r *Reader, hdr AtomHeader) error

// scanAtoms is the container dispatch loop shared by the file level, the
// movie atom and every other container. It peeks the next header, selects
// a handler by tag and repeats until the stream ends or, for a bounded
// container, the byte budget runs out. Tags absent from the table go to
// fallback; a nil fallback skips the whole unknown atom by its declared
// size. budget < 0 scans to end of stream.
func scanAtoms(r *Reader, budget int64, handlers map[Tag]atomHandler, fallback atomHandler) error {
	bounded := budget >= 0
	for {
		if bounded && budget < HeaderSize {
			// Residue smaller than a header is padding (e.g. the
			// 32-bit zero terminator of a user data atom).
			if budget > 0 {
				return r.Skip(budget)
			}
			return nil
		}
		hdr, err := r.PeekHeader()
		if errors.Is(err, io.EOF) {
			if bounded {
				return parseErr("Truncated", r.Offset(), nil)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if hdr.Size < HeaderSize {
			return parseErr(hdr.Type.String()+"/Size", r.Offset(), nil)
		}
		if bounded && int64(hdr.Size) > budget {
			return parseErr(hdr.Type.String()+"/Overrun", r.Offset(), nil)
		}
		h, ok := handlers[hdr.Type]
		if !ok {
			h = fallback
		}
		if h == nil {
			if err = r.Skip(int64(hdr.Size)); err != nil {
				return err
			}
		} else if err = h(r, hdr); err != nil {
			return err
		}
		if bounded {
			budget -= int64(hdr.Size)
		}
	}
}
