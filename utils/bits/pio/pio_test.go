package pio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndianGets(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	require.Equal(t, uint8(0x01), U8(b))
	require.Equal(t, uint16(0x0102), U16BE(b))
	require.Equal(t, uint32(0x010203), U24BE(b))
	require.Equal(t, uint32(0x01020304), U32BE(b))
	require.Equal(t, uint64(0x0102030405060708), U64BE(b))
}

func TestU24BETouchesThreeBytes(t *testing.T) {
	// A version/flags triple is framed by unrelated bytes on both sides.
	b := []byte{0xFF, 0xAA, 0xBB, 0xCC, 0xFF}
	require.Equal(t, uint32(0xAABBCC), U24BE(b[1:]))

	out := []byte{0xEE, 0, 0, 0, 0xEE}
	PutU24BE(out[1:], 0x123456)
	require.Equal(t, []byte{0xEE, 0x12, 0x34, 0x56, 0xEE}, out)
}

func TestPutGetRoundTrip(t *testing.T) {
	b := make([]byte, 8)

	PutU16BE(b, 0xBEEF)
	require.Equal(t, uint16(0xBEEF), U16BE(b))

	PutU32BE(b, 0xDEADBEEF)
	require.Equal(t, uint32(0xDEADBEEF), U32BE(b))

	PutU64BE(b, 0xDEADBEEFCAFEF00D)
	require.Equal(t, uint64(0xDEADBEEFCAFEF00D), U64BE(b))
}
