// Package mov provides demuxing of structural metadata from QuickTime
// movie files.
package mov

import (
	"errors"
	"os"
	"time"

	"github.com/ugparu/gomovie"
	"github.com/ugparu/gomovie/format/mov/movio"
	"github.com/ugparu/gomovie/utils/logger"
)

type Demuxer struct {
	r      *os.File
	url    string
	file   *movio.MovieFile
	limits movio.Limits
}

// NewDemuxer creates a demuxer for the file at url with default decode
// limits.
func NewDemuxer(url string) gomovie.Demuxer {
	dmx := new(Demuxer)
	dmx.url = url
	dmx.limits = movio.DefaultLimits()
	return dmx
}

// NewDemuxerWithLimits creates a demuxer with caller-supplied decode
// limits.
func NewDemuxerWithLimits(url string, lim movio.Limits) gomovie.Demuxer {
	dmx := new(Demuxer)
	dmx.url = url
	dmx.limits = lim
	return dmx
}

func (dmx *Demuxer) String() string {
	return "MOV_DEMUXER " + dmx.url
}

func (dmx *Demuxer) Demux() (summary gomovie.MovieSummary, err error) {
	if dmx.r == nil {
		if dmx.r, err = os.Open(dmx.url); err != nil {
			return
		}
	}
	if err = dmx.probe(); err != nil {
		return
	}

	summary.URL = dmx.url
	if len(dmx.file.FileTypes) > 0 {
		summary.MajorBrand = dmx.file.FileTypes[0].MajorBrand.String()
	}
	if len(dmx.file.Movies) == 0 {
		err = errors.New("mov: 'moov' atom not found")
		return
	}
	movie := dmx.file.Movies[0]
	summary.TrackCount = len(movie.Tracks)
	if hdr := movie.Header; hdr != nil {
		summary.TimeScale = hdr.TimeScale
		if hdr.TimeScale != 0 {
			summary.Duration = time.Duration(hdr.Duration) * time.Second / time.Duration(hdr.TimeScale)
		}
	}
	return summary, nil
}

// MovieFile returns the decoded atom tree. Demux must have succeeded.
func (dmx *Demuxer) MovieFile() *movio.MovieFile {
	return dmx.file
}

func (dmx *Demuxer) Close() {
	if dmx.r != nil {
		dmx.r.Close()
		dmx.r = nil
	}
}

func (dmx *Demuxer) probe() (err error) {
	if dmx.file != nil {
		return
	}

	logger.Debugf(dmx, "probing %s", dmx.url)
	if dmx.file, err = movio.DecodeMovieFile(dmx.r, dmx.limits); err != nil {
		logger.Errorf(dmx, "probe failed: %v", err)
		return
	}
	for _, atom := range dmx.file.Atoms() {
		offset, size := atom.Pos()
		logger.Tracef(dmx, "atom %s offset=%d size=%d", atom.Tag(), offset, size)
	}
	logger.Debugf(dmx, "probed %d root atoms", len(dmx.file.Atoms()))
	return nil
}
