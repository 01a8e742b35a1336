// Package movio decodes the atom tree of a QuickTime movie container into
// structured records. Atoms are length-prefixed, FourCC-tagged units; the
// movie atom and the file level are containers whose bodies are further
// atoms. Decoding is strict: declared sizes inconsistent with content fail
// with a ParseError, and every collection is bounded by Limits.
package movio

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ugparu/gomovie/utils/bits/pio"
)

// HeaderSize is the length of the standard atom header: a 32-bit big-endian
// size (which includes the header itself) followed by a FourCC tag.
const HeaderSize = 8

// Tag is a four-character atom type code.
type Tag uint32

func (t Tag) String() string {
	var b [4]byte
	pio.PutU32BE(b[:], uint32(t))
	for i := 0; i < 4; i++ {
		if b[i] == 0 {
			b[i] = ' '
		}
	}
	return string(b[:])
}

func StringToTag(tag string) Tag {
	var b [4]byte
	copy(b[:], []byte(tag))
	return Tag(pio.U32BE(b[:]))
}

// AtomHeader is the 8-byte prefix of every atom.
type AtomHeader struct {
	Size uint32
	Type Tag
}

// AtomPos records where an atom sat in the stream.
type AtomPos struct {
	Offset int64
	Size   int64
}

func (p AtomPos) Pos() (int64, int64) {
	return p.Offset, p.Size
}

func (p *AtomPos) setPos(offset, size int64) {
	p.Offset, p.Size = offset, size
}

// Atom is implemented by every decoded atom record.
type Atom interface {
	Pos() (int64, int64)
	Tag() Tag
	Children() []Atom
}

func FindChildrenByName(root Atom, tag string) Atom {
	return FindChildren(root, StringToTag(tag))
}

// FindChildren walks the tree depth-first and returns the first atom with
// the given tag, or nil.
func FindChildren(root Atom, tag Tag) Atom {
	if root.Tag() == tag {
		return root
	}
	for _, child := range root.Children() {
		if r := FindChildren(child, tag); r != nil {
			return r
		}
	}
	return nil
}

func GetTime32(b []byte) (t time.Time) {
	sec := pio.U32BE(b)
	t = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	t = t.Add(time.Second * time.Duration(sec))
	return
}

func GetFixed16(b []byte) float64 {
	return float64(b[0]) + float64(b[1])/256.0
}

func GetFixed32(b []byte) float64 {
	return float64(pio.U16BE(b[0:2])) + float64(pio.U16BE(b[2:4]))/65536.0
}

func printatom(out io.Writer, root Atom, depth int) {
	offset, size := root.Pos()

	type stringintf interface {
		String() string
	}

	fmt.Fprintf(out,
		"%s%s offset=%d size=%d",
		strings.Repeat(" ", depth*2), root.Tag(), offset, size,
	)
	if str, ok := root.(stringintf); ok {
		fmt.Fprint(out, " ", str.String())
	}
	fmt.Fprintln(out)

	for _, child := range root.Children() {
		printatom(out, child, depth+1)
	}
}

func FprintAtom(out io.Writer, root Atom) {
	printatom(out, root, 0)
}

func PrintAtom(root Atom) {
	FprintAtom(os.Stdout, root)
}
