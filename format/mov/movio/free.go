package movio

const (
	FREE = Tag(0x66726565)
	SKIP = Tag(0x736b6970)
	WIDE = Tag(0x77696465)
)

// Free, Skip and Wide are placeholder atoms whose bodies carry no
// structure. Each records its extent and seeks past the body.

type Free struct {
	AtomPos
}

func (*Free) Tag() Tag {
	return FREE
}

func (f *Free) Unmarshal(r *Reader) error {
	return unmarshalPlaceholder(r, FREE, "Free", &f.AtomPos)
}

func (*Free) Children() []Atom {
	return nil
}

type Skip struct {
	AtomPos
}

func (*Skip) Tag() Tag {
	return SKIP
}

func (s *Skip) Unmarshal(r *Reader) error {
	return unmarshalPlaceholder(r, SKIP, "Skip", &s.AtomPos)
}

func (*Skip) Children() []Atom {
	return nil
}

type Wide struct {
	AtomPos
}

func (*Wide) Tag() Tag {
	return WIDE
}

func (w *Wide) Unmarshal(r *Reader) error {
	return unmarshalPlaceholder(r, WIDE, "Wide", &w.AtomPos)
}

func (*Wide) Children() []Atom {
	return nil
}

func unmarshalPlaceholder(r *Reader, tag Tag, debug string, pos *AtomPos) error {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != tag {
		return parseErr(debug+"/Tag", offset, nil)
	}
	if hdr.Size < HeaderSize {
		return parseErr(debug+"/Size", offset, nil)
	}
	pos.setPos(offset, int64(hdr.Size))
	return r.Skip(int64(hdr.Size) - HeaderSize)
}
