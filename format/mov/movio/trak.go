package movio

const TRAK = Tag(0x7472616b)

// Track is the 'trak' atom. Track internals (header, media, sample tables)
// are not modeled yet; the body is skipped and only the extent recorded.
type Track struct {
	AtomPos
}

func (*Track) Tag() Tag {
	return TRAK
}

func (t *Track) Unmarshal(r *Reader) error {
	return unmarshalPlaceholder(r, TRAK, "Track", &t.AtomPos)
}

func (*Track) Children() []Atom {
	return nil
}
