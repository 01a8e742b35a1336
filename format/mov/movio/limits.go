package movio

// Limits bounds every growable collection the decoder fills. Exceeding a
// bound fails the decode with TooManyAtomsError; nothing is silently
// truncated.
type Limits struct {
	MaxFileTypes        int // 'ftyp' atoms per file
	MaxMovies           int // 'moov' atoms per file
	MaxMovieData        int // 'mdat' atoms per file
	MaxFree             int // 'free' atoms per file
	MaxSkip             int // 'skip' atoms per file
	MaxWide             int // 'wide' atoms per file
	MaxPreviews         int // 'pnot' atoms per file
	MaxTracks           int // 'trak' atoms per movie
	MaxCompatibleBrands int // brands per 'ftyp'
	MaxUserDataItems    int // sub-items per 'udta'
	MaxColors           int // entries per 'ctab'
}

func DefaultLimits() Limits {
	return Limits{
		MaxFileTypes:        8,
		MaxMovies:           8,
		MaxMovieData:        64,
		MaxFree:             64,
		MaxSkip:             64,
		MaxWide:             64,
		MaxPreviews:         8,
		MaxTracks:           64,
		MaxCompatibleBrands: 32,
		MaxUserDataItems:    64,
		MaxColors:           256,
	}
}
