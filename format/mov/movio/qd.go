package movio

import "github.com/ugparu/gomovie/utils/bits/pio"

const (
	rectSize       = 8
	regionFixedLen = 10 // 16-bit size field plus the bounding rect
)

// Rect is a QuickDraw rectangle: four 16-bit big-endian coordinates.
type Rect struct {
	Top    uint16
	Left   uint16
	Bottom uint16
	Right  uint16
}

func (rect *Rect) Unmarshal(r *Reader) error {
	b, err := r.ReadFull(rectSize)
	if err != nil {
		return parseErr("Rect", r.Offset(), err)
	}
	rect.Top = pio.U16BE(b[0:])
	rect.Left = pio.U16BE(b[2:])
	rect.Bottom = pio.U16BE(b[4:])
	rect.Right = pio.U16BE(b[6:])
	return nil
}

// Region is a QuickDraw region: a declared byte length, a bounding rect and
// region-specific data this decoder skips as opaque.
type Region struct {
	Size uint16
	Box  Rect
}

func (rgn *Region) Unmarshal(r *Reader) error {
	offset := r.Offset()
	b, err := r.ReadFull(2)
	if err != nil {
		return parseErr("Region/Size", offset, err)
	}
	rgn.Size = pio.U16BE(b)
	if rgn.Size < regionFixedLen {
		return parseErr("Region/Size", offset, nil)
	}
	if err = rgn.Box.Unmarshal(r); err != nil {
		return parseErr("Region/Box", offset, err)
	}
	return r.Skip(int64(rgn.Size) - regionFixedLen)
}
