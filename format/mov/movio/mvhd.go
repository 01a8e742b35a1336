package movio

import (
	"fmt"
	"time"

	"github.com/ugparu/gomovie/utils/bits/pio"
)

const (
	MVHD         = Tag(0x6d766864)
	mvhdBodySize = 100
	mvhdSize     = HeaderSize + mvhdBodySize
)

// MovieHeader is the 'mvhd' full atom with the classic version-0 QuickTime
// layout. Times count seconds since midnight, Jan 1, 1904, UTC; durations
// are expressed in TimeScale units per second.
type MovieHeader struct {
	Version           uint8
	Flags             uint32 // 3 bytes on disk
	CreationTime      time.Time
	ModificationTime  time.Time
	TimeScale         uint32
	Duration          uint32
	PreferredRate     float64 // 16.16 fixed point; 1.0 is normal speed
	PreferredVolume   float64 // 8.8 fixed point; 1.0 is full volume
	Matrix            [9]uint32
	PreviewTime       uint32
	PreviewDuration   uint32
	PosterTime        uint32
	SelectionTime     uint32
	SelectionDuration uint32
	CurrentTime       uint32
	NextTrackID       uint32
	AtomPos
}

func (*MovieHeader) Tag() Tag {
	return MVHD
}

func (mvhd *MovieHeader) Unmarshal(r *Reader) (err error) {
	offset := r.Offset()
	hdr, err := r.ReadHeader()
	if err != nil {
		return err
	}
	if hdr.Type != MVHD {
		return parseErr("MovieHeader/Tag", offset, nil)
	}
	if hdr.Size < mvhdSize {
		return parseErr("MovieHeader/Size", offset, nil)
	}
	mvhd.setPos(offset, int64(hdr.Size))

	b, err := r.ReadFull(mvhdBodySize)
	if err != nil {
		return parseErr("MovieHeader", offset+HeaderSize, err)
	}
	n := 0
	mvhd.Version = pio.U8(b[n:])
	n++
	mvhd.Flags = pio.U24BE(b[n:])
	n += 3
	mvhd.CreationTime = GetTime32(b[n:])
	n += 4
	mvhd.ModificationTime = GetTime32(b[n:])
	n += 4
	mvhd.TimeScale = pio.U32BE(b[n:])
	n += 4
	mvhd.Duration = pio.U32BE(b[n:])
	n += 4
	mvhd.PreferredRate = GetFixed32(b[n:])
	n += 4
	mvhd.PreferredVolume = GetFixed16(b[n:])
	n += 2
	n += 10 // reserved
	for i := range mvhd.Matrix {
		mvhd.Matrix[i] = pio.U32BE(b[n:])
		n += 4
	}
	mvhd.PreviewTime = pio.U32BE(b[n:])
	n += 4
	mvhd.PreviewDuration = pio.U32BE(b[n:])
	n += 4
	mvhd.PosterTime = pio.U32BE(b[n:])
	n += 4
	mvhd.SelectionTime = pio.U32BE(b[n:])
	n += 4
	mvhd.SelectionDuration = pio.U32BE(b[n:])
	n += 4
	mvhd.CurrentTime = pio.U32BE(b[n:])
	n += 4
	mvhd.NextTrackID = pio.U32BE(b[n:])

	return r.Skip(int64(hdr.Size) - mvhdSize)
}

func (mvhd *MovieHeader) String() string {
	return fmt.Sprintf("timescale=%d duration=%d tracks<%d",
		mvhd.TimeScale, mvhd.Duration, mvhd.NextTrackID)
}

func (*MovieHeader) Children() []Atom {
	return nil
}
