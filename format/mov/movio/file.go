package movio

import "io"

// MovieFile is the decoded top level of a QuickTime file: bounded ordered
// sequences of each known root atom kind. A zero MovieFile reports nothing
// present.
type MovieFile struct {
	FileTypes []*FileTypeCompatibility
	Movies    []*Movie
	MovieData []*MovieData
	Free      []*Free
	Skip      []*Skip
	Wide      []*Wide
	Previews  []*Preview
}

// Atoms returns every decoded top-level atom, grouped by kind.
func (f *MovieFile) Atoms() (r []Atom) {
	for _, atom := range f.FileTypes {
		r = append(r, atom)
	}
	for _, atom := range f.Movies {
		r = append(r, atom)
	}
	for _, atom := range f.MovieData {
		r = append(r, atom)
	}
	for _, atom := range f.Free {
		r = append(r, atom)
	}
	for _, atom := range f.Skip {
		r = append(r, atom)
	}
	for _, atom := range f.Wide {
		r = append(r, atom)
	}
	for _, atom := range f.Previews {
		r = append(r, atom)
	}
	return
}

// DecodeMovieFile rewinds the stream and scans root atoms until end of
// input. Unrecognized root atoms are skipped by their declared size; any
// structural inconsistency aborts the whole decode.
func DecodeMovieFile(rs io.ReadSeeker, lim Limits) (*MovieFile, error) {
	r := NewReader(rs)
	if err := r.Rewind(); err != nil {
		return nil, err
	}
	f := &MovieFile{}

	err := scanAtoms(r, -1, map[Tag]atomHandler{
		FTYP: func(r *Reader, _ AtomHeader) error {
			if len(f.FileTypes) >= lim.MaxFileTypes {
				return &TooManyAtomsError{Tag: FTYP, Limit: lim.MaxFileTypes}
			}
			atom := &FileTypeCompatibility{}
			if err := atom.Unmarshal(r, lim); err != nil {
				return parseErr("ftyp", atom.Offset, err)
			}
			f.FileTypes = append(f.FileTypes, atom)
			return nil
		},
		MOOV: func(r *Reader, _ AtomHeader) error {
			if len(f.Movies) >= lim.MaxMovies {
				return &TooManyAtomsError{Tag: MOOV, Limit: lim.MaxMovies}
			}
			atom := &Movie{}
			if err := atom.Unmarshal(r, lim); err != nil {
				return parseErr("moov", atom.Offset, err)
			}
			f.Movies = append(f.Movies, atom)
			return nil
		},
		MDAT: func(r *Reader, _ AtomHeader) error {
			if len(f.MovieData) >= lim.MaxMovieData {
				return &TooManyAtomsError{Tag: MDAT, Limit: lim.MaxMovieData}
			}
			atom := &MovieData{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("mdat", atom.Offset, err)
			}
			f.MovieData = append(f.MovieData, atom)
			return nil
		},
		FREE: func(r *Reader, _ AtomHeader) error {
			if len(f.Free) >= lim.MaxFree {
				return &TooManyAtomsError{Tag: FREE, Limit: lim.MaxFree}
			}
			atom := &Free{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("free", atom.Offset, err)
			}
			f.Free = append(f.Free, atom)
			return nil
		},
		SKIP: func(r *Reader, _ AtomHeader) error {
			if len(f.Skip) >= lim.MaxSkip {
				return &TooManyAtomsError{Tag: SKIP, Limit: lim.MaxSkip}
			}
			atom := &Skip{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("skip", atom.Offset, err)
			}
			f.Skip = append(f.Skip, atom)
			return nil
		},
		WIDE: func(r *Reader, _ AtomHeader) error {
			if len(f.Wide) >= lim.MaxWide {
				return &TooManyAtomsError{Tag: WIDE, Limit: lim.MaxWide}
			}
			atom := &Wide{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("wide", atom.Offset, err)
			}
			f.Wide = append(f.Wide, atom)
			return nil
		},
		PNOT: func(r *Reader, _ AtomHeader) error {
			if len(f.Previews) >= lim.MaxPreviews {
				return &TooManyAtomsError{Tag: PNOT, Limit: lim.MaxPreviews}
			}
			atom := &Preview{}
			if err := atom.Unmarshal(r); err != nil {
				return parseErr("pnot", atom.Offset, err)
			}
			f.Previews = append(f.Previews, atom)
			return nil
		},
	}, nil)
	if err != nil {
		return nil, err
	}
	return f, nil
}
