package movio

import (
	"time"

	"github.com/ugparu/gomovie/utils/bits/pio"
)

const (
	PNOT         = Tag(0x706e6f74)
	pnotBodySize = 12
)

// Preview is the 'pnot' atom: a reference to the atom holding the file's
// preview image.
type Preview struct {
	ModDate       time.Time
	VersionNumber uint16
	AtomType      Tag
	AtomIndex     uint16
	AtomPos
}

func (*Preview) Tag() Tag {
	return PNOT
}

func (p *Preview) Unmarshal(r *Reader) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != PNOT {
		return parseErr("Preview/Tag", offset, nil)
	}
	if hdr.Size < HeaderSize+pnotBodySize {
		return parseErr("Preview/Size", offset, nil)
	}
	p.setPos(offset, int64(hdr.Size))

	b, err := r.ReadFull(pnotBodySize)
	if err != nil {
		return parseErr("Preview", offset+HeaderSize, err)
	}
	p.ModDate = GetTime32(b)
	p.VersionNumber = pio.U16BE(b[4:])
	p.AtomType = Tag(pio.U32BE(b[6:]))
	p.AtomIndex = pio.U16BE(b[10:])

	return r.Skip(int64(hdr.Size) - HeaderSize - pnotBodySize)
}

func (*Preview) Children() []Atom {
	return nil
}
