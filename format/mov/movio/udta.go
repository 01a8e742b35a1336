package movio

import "fmt"

const UDTA = Tag(0x75647461)

// UserDataItem is one sub-atom of a user data atom. Item types are free
// form, so the payload is kept as raw bytes.
type UserDataItem struct {
	Type Tag
	Data []byte
	AtomPos
}

func (it *UserDataItem) Tag() Tag {
	return it.Type
}

func (it *UserDataItem) Unmarshal(r *Reader) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Size < HeaderSize {
		return parseErr("UserDataItem/Size", offset, nil)
	}
	it.setPos(offset, int64(hdr.Size))
	it.Type = hdr.Type
	if it.Data, err = r.ReadFull(int(hdr.Size) - HeaderSize); err != nil {
		return parseErr("UserDataItem", offset+HeaderSize, err)
	}
	return nil
}

func (*UserDataItem) Children() []Atom {
	return nil
}

// UserData is the 'udta' atom: a sequence of freely typed sub-items filling
// the atom's declared extent. The scan is bounded by that extent, so a
// trailing zero terminator shorter than a header is tolerated.
type UserData struct {
	Items []*UserDataItem
	AtomPos
}

func (*UserData) Tag() Tag {
	return UDTA
}

func (u *UserData) Unmarshal(r *Reader, lim Limits) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != UDTA {
		return parseErr("UserData/Tag", offset, nil)
	}
	if hdr.Size < HeaderSize {
		return parseErr("UserData/Size", offset, nil)
	}
	u.setPos(offset, int64(hdr.Size))

	return scanAtoms(r, int64(hdr.Size)-HeaderSize, nil, func(r *Reader, _ AtomHeader) error {
		if len(u.Items) >= lim.MaxUserDataItems {
			return &TooManyAtomsError{Tag: UDTA, Limit: lim.MaxUserDataItems}
		}
		item := &UserDataItem{}
		if err := item.Unmarshal(r); err != nil {
			return parseErr("udta", offset, err)
		}
		u.Items = append(u.Items, item)
		return nil
	})
}

func (u *UserData) String() string {
	return fmt.Sprintf("items=%d", len(u.Items))
}

func (u *UserData) Children() (r []Atom) {
	for _, item := range u.Items {
		r = append(r, item)
	}
	return
}
