package movio

import "github.com/ugparu/gomovie/utils/bits/pio"

const (
	FTYP          = Tag(0x66747970)
	baseFtypSize  = 16
	bytesPerBrand = 4
)

// FileTypeCompatibility is the 'ftyp' atom: the file's major brand and the
// list of brands it is compatible with.
type FileTypeCompatibility struct {
	MajorBrand       Tag
	MinorVersion     uint32
	CompatibleBrands []Tag
	AtomPos
}

func (*FileTypeCompatibility) Tag() Tag {
	return FTYP
}

func (f *FileTypeCompatibility) Unmarshal(r *Reader, lim Limits) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != FTYP {
		return parseErr("FileType/Tag", offset, nil)
	}
	if hdr.Size < baseFtypSize {
		return parseErr("FileType/Size", offset, nil)
	}
	f.setPos(offset, int64(hdr.Size))

	b, err := r.ReadFull(baseFtypSize - HeaderSize)
	if err != nil {
		return parseErr("MajorBrand", offset+HeaderSize, err)
	}
	f.MajorBrand = Tag(pio.U32BE(b))
	f.MinorVersion = pio.U32BE(b[4:])

	rest := int(hdr.Size) - baseFtypSize
	if rest%bytesPerBrand != 0 {
		return parseErr("CompatibleBrands", offset+baseFtypSize, nil)
	}
	count := rest / bytesPerBrand
	if count > lim.MaxCompatibleBrands {
		return &TooManyAtomsError{Tag: FTYP, Limit: lim.MaxCompatibleBrands}
	}
	if b, err = r.ReadFull(rest); err != nil {
		return parseErr("CompatibleBrands", offset+baseFtypSize, err)
	}
	f.CompatibleBrands = make([]Tag, 0, count)
	for i := 0; i < count; i++ {
		f.CompatibleBrands = append(f.CompatibleBrands, Tag(pio.U32BE(b[i*bytesPerBrand:])))
	}
	return nil
}

func (*FileTypeCompatibility) Children() []Atom {
	return nil
}
