package archive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/recio/archive"
	"github.com/arloliu/recio/format"
	"github.com/arloliu/recio/wire"
)

func TestPackUnpack_NoCompression(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)
	require.NoError(t, enc.PushFixed([]byte{1, 2, 3, 4}))
	payload, err := enc.Finalize()
	require.NoError(t, err)

	packed, stats, err := archive.Pack(payload, format.CompressionNone)
	require.NoError(t, err)
	require.Equal(t, byte(format.CompressionNone), packed[0])
	require.Equal(t, int64(len(payload)), stats.OriginalSize)

	unpacked, unstats, err := archive.Unpack(packed)
	require.NoError(t, err)
	require.Equal(t, payload, unpacked)
	require.Equal(t, int64(len(payload)), unstats.OriginalSize)
}

func TestPackUnpack_S2(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)
	require.NoError(t, enc.PushVar1([]byte("highly compressible highly compressible highly compressible")))
	payload, err := enc.Finalize()
	require.NoError(t, err)

	packed, stats, err := archive.Pack(payload, format.CompressionS2)
	require.NoError(t, err)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)

	unpacked, _, err := archive.Unpack(packed)
	require.NoError(t, err)
	require.Equal(t, payload, unpacked)
}

func TestUnpack_Empty(t *testing.T) {
	_, _, err := archive.Unpack(nil)
	require.Error(t, err)
}

func TestUnpack_UnknownTag(t *testing.T) {
	_, _, err := archive.Unpack([]byte{0xFF, 1, 2, 3})
	require.Error(t, err)
}
