package movio

const MOOV = Tag(0x6d6f6f76)

// Movie is the 'moov' container atom. Header, clipping, user data and
// color table are singleton children; tracks are an ordered bounded
// sequence. Unknown children are skipped by their declared size. The child
// scan is bounded by the movie atom's own declared extent, so siblings
// following the movie atom are never swallowed into it.
type Movie struct {
	Header     *MovieHeader
	Clip       *Clipping
	Tracks     []*Track
	UserData   *UserData
	ColorTable *ColorTable
	AtomPos
}

func (*Movie) Tag() Tag {
	return MOOV
}

func (m *Movie) Unmarshal(r *Reader, lim Limits) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != MOOV {
		return parseErr("Movie/Tag", offset, nil)
	}
	if hdr.Size < HeaderSize {
		return parseErr("Movie/Size", offset, nil)
	}
	m.setPos(offset, int64(hdr.Size))

	return scanAtoms(r, int64(hdr.Size)-HeaderSize, map[Tag]atomHandler{
		MVHD: func(r *Reader, _ AtomHeader) error {
			if m.Header != nil {
				return &TooManyAtomsError{Tag: MVHD, Limit: 1}
			}
			atom := &MovieHeader{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("mvhd", offset, err)
			}
			m.Header = atom
			return nil
		},
		CLIP: func(r *Reader, _ AtomHeader) error {
			if m.Clip != nil {
				return &TooManyAtomsError{Tag: CLIP, Limit: 1}
			}
			atom := &Clipping{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("clip", offset, err)
			}
			m.Clip = atom
			return nil
		},
		TRAK: func(r *Reader, _ AtomHeader) error {
			if len(m.Tracks) >= lim.MaxTracks {
				return &TooManyAtomsError{Tag: TRAK, Limit: lim.MaxTracks}
			}
			atom := &Track{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("trak", offset, err)
			}
			m.Tracks = append(m.Tracks, atom)
			return nil
		},
		UDTA: func(r *Reader, _ AtomHeader) error {
			if m.UserData != nil {
				return &TooManyAtomsError{Tag: UDTA, Limit: 1}
			}
			atom := &UserData{}
			if err := atom.Unmarshal(r, lim); err != nil {
				return parseErr("udta", offset, err)
			}
			m.UserData = atom
			return nil
		},
		CTAB: func(r *Reader, _ AtomHeader) error {
			if m.ColorTable != nil {
				return &TooManyAtomsError{Tag: CTAB, Limit: 1}
			}
			atom := &ColorTable{}
			if err := atom.Unmarshal(r, lim); err != nil {
				return parseErr("ctab", offset, err)
			}
			m.ColorTable = atom
			return nil
		},
	}, nil)
}

func (m *Movie) Children() (r []Atom) {
	if m.Header != nil {
		r = append(r, m.Header)
	}
	if m.Clip != nil {
		r = append(r, m.Clip)
	}
	for _, atom := range m.Tracks {
		r = append(r, atom)
	}
	if m.UserData != nil {
		r = append(r, m.UserData)
	}
	if m.ColorTable != nil {
		r = append(r, m.ColorTable)
	}
	return
}
