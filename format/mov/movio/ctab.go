package movio

import (
	"fmt"

	"github.com/ugparu/gomovie/utils/bits/pio"
)

const (
	CTAB          = Tag(0x63746162)
	ctabFixedSize = 16 // header, seed, flags, size
	bytesPerColor = 8
)

// Color is one QuickDraw color table entry.
type Color struct {
	Value uint16
	Red   uint16
	Green uint16
	Blue  uint16
}

// ColorTable is the 'ctab' atom. Size holds the highest color index, so a
// table declares Size+1 entries and its atom size must match that count
// exactly.
type ColorTable struct {
	Seed   uint32
	Flags  uint16
	Size   uint16
	Colors []Color
	AtomPos
}

func (*ColorTable) Tag() Tag {
	return CTAB
}

func (ct *ColorTable) Unmarshal(r *Reader, lim Limits) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != CTAB {
		return parseErr("ColorTable/Tag", offset, nil)
	}
	if hdr.Size < ctabFixedSize {
		return parseErr("ColorTable/Size", offset, nil)
	}
	ct.setPos(offset, int64(hdr.Size))

	b, err := r.ReadFull(ctabFixedSize - HeaderSize)
	if err != nil {
		return parseErr("ColorTable", offset+HeaderSize, err)
	}
	ct.Seed = pio.U32BE(b)
	ct.Flags = pio.U16BE(b[4:])
	ct.Size = pio.U16BE(b[6:])

	count := int(ct.Size) + 1
	if int(hdr.Size) != ctabFixedSize+count*bytesPerColor {
		return parseErr("ColorTable/Count", offset, nil)
	}
	if count > lim.MaxColors {
		return &TooManyAtomsError{Tag: CTAB, Limit: lim.MaxColors}
	}
	if b, err = r.ReadFull(count * bytesPerColor); err != nil {
		return parseErr("ColorTable/Colors", offset+ctabFixedSize, err)
	}
	ct.Colors = make([]Color, 0, count)
	for i := 0; i < count; i++ {
		e := b[i*bytesPerColor:]
		ct.Colors = append(ct.Colors, Color{
			Value: pio.U16BE(e[0:]),
			Red:   pio.U16BE(e[2:]),
			Green: pio.U16BE(e[4:]),
			Blue:  pio.U16BE(e[6:]),
		})
	}
	return nil
}

func (ct *ColorTable) String() string {
	return fmt.Sprintf("colors=%d", len(ct.Colors))
}

func (*ColorTable) Children() []Atom {
	return nil
}
