package movio

const (
	CLIP = Tag(0x636c6970)
	CRGN = Tag(0x6372676e)
)

// ClippingRegion is the 'crgn' atom: a QuickDraw region bounding the
// visible portion of the movie.
type ClippingRegion struct {
	Region Region
	AtomPos
}

func (*ClippingRegion) Tag() Tag {
	return CRGN
}

func (c *ClippingRegion) Unmarshal(r *Reader) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != CRGN {
		return parseErr("ClippingRegion/Tag", offset, nil)
	}
	c.setPos(offset, int64(hdr.Size))

	if err = c.Region.Unmarshal(r); err != nil {
		return parseErr("crgn", offset, err)
	}
	residue := int64(hdr.Size) - HeaderSize - int64(c.Region.Size)
	if residue < 0 {
		return parseErr("ClippingRegion/Size", offset, nil)
	}
	return r.Skip(residue)
}

func (*ClippingRegion) Children() []Atom {
	return nil
}

// Clipping is the 'clip' container atom. It holds a single clipping region
// child; anything else inside is skipped.
type Clipping struct {
	Region *ClippingRegion
	AtomPos
}

func (*Clipping) Tag() Tag {
	return CLIP
}

func (c *Clipping) Unmarshal(r *Reader) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != CLIP {
		return parseErr("Clipping/Tag", offset, nil)
	}
	if hdr.Size < HeaderSize {
		return parseErr("Clipping/Size", offset, nil)
	}
	c.setPos(offset, int64(hdr.Size))

	return scanAtoms(r, int64(hdr.Size)-HeaderSize, map[Tag]atomHandler{
		CRGN: func(r *Reader, _ AtomHeader) error {
			if c.Region != nil {
				return &TooManyAtomsError{Tag: CRGN, Limit: 1}
			}
			atom := &ClippingRegion{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("clip", offset, err)
			}
			c.Region = atom
			return nil
		},
	}, nil)
}

func (c *Clipping) Children() (r []Atom) {
	if c.Region != nil {
		r = append(r, c.Region)
	}
	return
}
