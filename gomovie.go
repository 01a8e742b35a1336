// Package gomovie defines the shared interfaces of the movie container
// toolkit. Format packages under format/ provide the implementations.
package gomovie

import "time"

// MovieSummary bundles the top-level structural facts of a probed movie
// container.
type MovieSummary struct {
	URL        string        // source of the container
	MajorBrand string        // major brand of the first file type atom, if any
	TimeScale  uint32        // time units per second from the movie header
	Duration   time.Duration // movie duration derived from the movie header
	TrackCount int           // tracks in the first movie atom
}

// Demuxer extracts structural metadata from a movie container.
type Demuxer interface {
	Demux() (MovieSummary, error) // probes the container and returns its summary
	Close()                       // releases resources used by the demuxer
}
