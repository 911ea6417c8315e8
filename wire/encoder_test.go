package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/recio/errs"
	"github.com/arloliu/recio/fixedcodec"
	"github.com/arloliu/recio/wire"
)

// TestEncoder_ScenarioA reproduces the spec's one fixed + one var1 scenario:
// fixed_u8 = 0xAA, fixed_array = [0x0102, 0x0304] (u16), var_vec =
// [0x0A0B0C0D, 0x01020304] (u32).
func TestEncoder_ScenarioA(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)
	le := enc.Engine()

	var fixed []byte
	fixed = fixedcodec.Append(fixed, uint8(0xAA), le)
	fixed = fixedcodec.Append(fixed, uint16(0x0102), le)
	fixed = fixedcodec.Append(fixed, uint16(0x0304), le)
	require.NoError(t, enc.PushFixed(fixed))

	var seg []byte
	seg = fixedcodec.Append(seg, uint32(0x0A0B0C0D), le)
	seg = fixedcodec.Append(seg, uint32(0x01020304), le)
	require.NoError(t, enc.PushVar1(seg))

	out, err := enc.Finalize()
	require.NoError(t, err)

	want := []byte{
		0x19, 0x00, 0x00, 0x00, // total_len = 25
		0x0D, 0x00, 0x00, 0x00, // var_index_offset = 13
		0xAA,             // fixed_u8
		0x02, 0x01,       // fixed_array[0]
		0x04, 0x03,       // fixed_array[1]
		0x11, 0x00, 0x00, 0x00, // VarIndex[0] = 17
		0x0D, 0x0C, 0x0B, 0x0A, // var_vec[0]
		0x04, 0x03, 0x02, 0x01, // var_vec[1]
	}
	require.Equal(t, want, out)
}

// TestEncoder_ScenarioB reproduces the spec's single var2 scenario: [[1,2],[3]]
// of u16 elements.
func TestEncoder_ScenarioB(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)
	le := enc.Engine()

	var seg0, seg1 []byte
	seg0 = fixedcodec.AppendSlice(seg0, []uint16{1, 2}, le)
	seg1 = fixedcodec.AppendSlice(seg1, []uint16{3}, le)

	require.NoError(t, enc.PushVar2([][]byte{seg0, seg1}, true))

	out, err := enc.Finalize()
	require.NoError(t, err)

	want := []byte{
		0x16, 0x00, 0x00, 0x00, // total_len = 22
		0x08, 0x00, 0x00, 0x00, // var_index_offset = 8
		0x10, 0x00, 0x00, 0x00, // VarIndex[0] = 16
		0x14, 0x00, 0x00, 0x00, // VarIndex[1] = 20
		0x01, 0x00, // seg0[0]
		0x02, 0x00, // seg0[1]
		0x03, 0x00, // seg1[0]
	}
	require.Equal(t, want, out)
}

// TestEncoder_ScenarioE reproduces the spec's empty-payload scenario.
func TestEncoder_ScenarioE(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)

	out, err := enc.Finalize()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x08, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
	}, out)
}

func TestEncoder_PushAfterVar2Fails(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)
	require.NoError(t, enc.PushVar2([][]byte{{1, 2}}, true))

	require.ErrorIs(t, enc.PushFixed([]byte{0}), errs.ErrPlacementViolation)
	require.ErrorIs(t, enc.PushVar1([]byte{0}), errs.ErrPlacementViolation)
}

func TestEncoder_Var2NotLastRejected(t *testing.T) {
	enc := wire.NewEncoder(wire.LittleEndian)
	err := enc.PushVar2([][]byte{{1}}, false)
	require.ErrorIs(t, err, errs.ErrPlacementViolation)
}

func TestEncoder_PooledRoundtrip(t *testing.T) {
	enc := wire.NewPooledEncoder(wire.LittleEndian)
	require.NoError(t, enc.PushFixed([]byte{0xAA}))
	require.NoError(t, enc.PushVar1([]byte("hello")))

	out, err := enc.Finalize()
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), out[8])
}
