package recio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/recio"
	"github.com/arloliu/recio/format"
)

type Sample struct {
	Tag    uint8
	Values []uint32
}

func init() {
	recio.MustRegisterSchema[Sample]()
}

func TestMarshalUnmarshal(t *testing.T) {
	in := Sample{Tag: 1, Values: []uint32{1, 2, 3}}

	buf, err := recio.Marshal(in, recio.LittleEndian)
	require.NoError(t, err)

	out, err := recio.Unmarshal[Sample](buf, recio.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestMarshalArchiveUnmarshalArchive(t *testing.T) {
	in := Sample{Tag: 2, Values: []uint32{10, 20, 30, 40}}

	packed, err := recio.MarshalArchive(in, recio.LittleEndian, format.CompressionS2)
	require.NoError(t, err)

	out, err := recio.UnmarshalArchive[Sample](packed, recio.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRegisterSchemaAndLookup(t *testing.T) {
	id, err := recio.RegisterSchema[Sample]("recio.sample.v1")
	require.NoError(t, err)

	got, ok := recio.SchemaID("recio.sample.v1")
	require.True(t, ok)
	require.Equal(t, id, got)

	name, ok := recio.SchemaName(id)
	require.True(t, ok)
	require.Equal(t, "recio.sample.v1", name)
}
