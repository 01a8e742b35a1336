package movio

const MDAT = Tag(0x6d646174)

// MovieData is the 'mdat' atom. The media payload is opaque to this
// decoder: only the position and extent are recorded, the body is skipped.
type MovieData struct {
	AtomPos
}

func (*MovieData) Tag() Tag {
	return MDAT
}

func (m *MovieData) Unmarshal(r *Reader) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != MDAT {
		return parseErr("MovieData/Tag", offset, nil)
	}
	if hdr.Size < HeaderSize {
		return parseErr("MovieData/Size", offset, nil)
	}
	m.setPos(offset, int64(hdr.Size))
	return r.Skip(int64(hdr.Size) - HeaderSize)
}

func (*MovieData) Children() []Atom {
	return nil
}
