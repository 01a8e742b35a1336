package mov

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ugparu/gomovie/format/mov/movio"
	"github.com/ugparu/gomovie/utils/bits/pio"
)

func be16(v uint16) []byte {
	b := make([]byte, 2)
	pio.PutU16BE(b, v)
	return b
}

func be32(v uint32) []byte {
	b := make([]byte, 4)
	pio.PutU32BE(b, v)
	return b
}

func atom(tag string, body ...[]byte) []byte {
	var buf bytes.Buffer
	size := movio.HeaderSize
	for _, part := range body {
		size += len(part)
	}
	buf.Write(be32(uint32(size)))
	buf.WriteString(tag)
	for _, part := range body {
		buf.Write(part)
	}
	return buf.Bytes()
}

func writeFixture(t *testing.T) string {
	t.Helper()

	var mvhd bytes.Buffer
	mvhd.Write([]byte{0, 0, 0, 0})
	mvhd.Write(be32(0))          // creation time
	mvhd.Write(be32(0))          // modification time
	mvhd.Write(be32(600))        // time scale
	mvhd.Write(be32(1800))       // duration: 3 seconds
	mvhd.Write(be32(0x00010000)) // preferred rate
	mvhd.Write(be16(0x0100))     // preferred volume
	mvhd.Write(make([]byte, 10))
	for i := 0; i < 9; i++ {
		mvhd.Write(be32(0))
	}
	mvhd.Write(make([]byte, 24))
	mvhd.Write(be32(2)) // next track id

	raw := bytes.Join([][]byte{
		atom("ftyp", be32(uint32(movio.StringToTag("qt  "))), be32(0x200)),
		atom("moov", atom("mvhd", mvhd.Bytes()), atom("trak")),
		atom("mdat", []byte{1, 2, 3, 4}),
	}, nil)

	path := filepath.Join(t.TempDir(), "fixture.mov")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestDemux(t *testing.T) {
	path := writeFixture(t)
	dmx := NewDemuxer(path)
	defer dmx.Close()

	summary, err := dmx.Demux()
	require.NoError(t, err)
	require.Equal(t, path, summary.URL)
	require.Equal(t, "qt  ", summary.MajorBrand)
	require.Equal(t, uint32(600), summary.TimeScale)
	require.Equal(t, 3*time.Second, summary.Duration)
	require.Equal(t, 1, summary.TrackCount)
}

func TestDemuxExposesAtomTree(t *testing.T) {
	path := writeFixture(t)
	dmx := NewDemuxer(path)
	defer dmx.Close()

	_, err := dmx.Demux()
	require.NoError(t, err)

	file := dmx.(*Demuxer).MovieFile()
	require.NotNil(t, file)
	require.Len(t, file.FileTypes, 1)
	require.Len(t, file.Movies, 1)
	require.Len(t, file.MovieData, 1)
}

func TestDemuxWithoutMovieAtom(t *testing.T) {
	raw := atom("mdat", []byte{1, 2, 3})
	path := filepath.Join(t.TempDir(), "nomoov.mov")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	dmx := NewDemuxer(path)
	defer dmx.Close()

	_, err := dmx.Demux()
	require.Error(t, err)
}

func TestDemuxHonorsLimits(t *testing.T) {
	path := writeFixture(t)
	lim := movio.DefaultLimits()
	lim.MaxTracks = 0

	dmx := NewDemuxerWithLimits(path, lim)
	defer dmx.Close()

	_, err := dmx.Demux()
	var tme *movio.TooManyAtomsError
	require.ErrorAs(t, err, &tme)
	require.Equal(t, movio.TRAK, tme.Tag)
}

func TestDemuxMissingFile(t *testing.T) {
	dmx := NewDemuxer(filepath.Join(t.TempDir(), "absent.mov"))
	defer dmx.Close()

	_, err := dmx.Demux()
	require.Error(t, err)
}
