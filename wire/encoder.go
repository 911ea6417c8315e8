package wire

import (
	"github.com/arloliu/recio/endian"
	"github.com/arloliu/recio/errs"
	"github.com/arloliu/recio/internal/pool"
)

// Encoder is an append-only accumulator for a single payload. Fields are
// pushed in declared order into three internal segments — fixed,
// var_lengths and data — and Finalize assembles the header, Fixed region,
// VarIndex region and Data region into a single byte slice.
//
// An Encoder is single-owner and exclusively mutated during its use;
// Finalize consumes it. It is not safe for concurrent use.
type Encoder struct {
	order  Order
	engine endian.EndianEngine

	fixed      []byte
	varLengths []uint32
	data       []byte

	// closed becomes true once a var2 field has been pushed. The state
	// machine in the core spec's field-kind taxonomy (any_allowed ->
	// after_var2, terminal) is enforced here: any push after closed fails
	// with ErrPlacementViolation.
	closed bool

	pooled   bool
	fixedBuf *pool.ByteBuffer
	dataBuf  *pool.ByteBuffer
}

// NewEncoder creates an empty Encoder using order for Fixed-region field
// data. Header and VarIndex integers are always little-endian regardless
// of order.
func NewEncoder(order Order) *Encoder {
	return &Encoder{
		order:  order,
		engine: order.Engine(),
	}
}

// NewPooledEncoder is like NewEncoder but draws its fixed/data scratch
// buffers from a process-wide sync.Pool (see internal/pool), amortizing
// allocation for encoders that are created and finalized at high
// frequency. Callers must call Release if Finalize is never reached (e.g.
// the encoder is abandoned after an error) so the pool can reclaim the
// buffers; Finalize releases them itself on success.
func NewPooledEncoder(order Order) *Encoder {
	e := NewEncoder(order)
	e.pooled = true
	e.fixedBuf = pool.GetEncoderBuffer()
	e.dataBuf = pool.GetEncoderBuffer()
	e.fixed = e.fixedBuf.Bytes()
	e.data = e.dataBuf.Bytes()

	return e
}

// Release returns a pooled Encoder's scratch buffers to the pool without
// finalizing. Safe to call on a non-pooled Encoder (no-op).
func (e *Encoder) Release() {
	if !e.pooled {
		return
	}
	pool.PutEncoderBuffer(e.fixedBuf)
	pool.PutEncoderBuffer(e.dataBuf)
	e.fixedBuf, e.dataBuf = nil, nil
	e.pooled = false
}

// Order returns the endian policy this Encoder applies to Fixed-region
// field data.
func (e *Encoder) Order() Order { return e.order }

// Engine returns the endian.EndianEngine backing Order, for use by callers
// that encode Fixed-region bytes themselves (see fixedcodec).
func (e *Encoder) Engine() endian.EndianEngine { return e.engine }

// checkOpen returns ErrPlacementViolation if a var2 field has already
// closed the encoder.
func (e *Encoder) checkOpen() error {
	if e.closed {
		return errs.ErrPlacementViolation
	}

	return nil
}

// PushFixed appends raw, already-encoded bytes to the Fixed region. It
// takes no isLastVar flag: placement only matters for var2 fields.
func (e *Encoder) PushFixed(b []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.fixed = append(e.fixed, b...)

	return nil
}

// PushVar1 appends one variable-length segment: it records the segment's
// length as a new VarIndex entry and appends the segment bytes to Data.
func (e *Encoder) PushVar1(segment []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	e.varLengths = append(e.varLengths, uint32(len(segment)))
	e.data = append(e.data, segment...)

	return nil
}

// PushVar2 appends a sequence of variable-length segments (one VarIndex
// entry per segment, in order). isLastVar must be true — a var2 field is
// only legal in last position — otherwise ErrPlacementViolation is
// returned and nothing is appended. On success, the encoder transitions to
// closed: no further field may be pushed.
func (e *Encoder) PushVar2(segments [][]byte, isLastVar bool) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if !isLastVar {
		return errs.ErrPlacementViolation
	}

	for _, seg := range segments {
		e.varLengths = append(e.varLengths, uint32(len(seg)))
		e.data = append(e.data, seg...)
	}
	e.closed = true

	return nil
}

// FieldCount reports how many Fixed bytes and variable segments have been
// pushed so far.
func (e *Encoder) FieldCount() (fixedBytes int, varEntries int) {
	return len(e.fixed), len(e.varLengths)
}

// Finalize assembles the header, Fixed region, VarIndex region and Data
// region into a single byte slice, per the algorithm in the core spec:
//
//  1. var_entry_offset = 8 + len(fixed)
//  2. data_start = var_entry_offset + 4*len(var_lengths)
//  3. total_len = data_start + len(data)
//  4. emit header: total_len, var_entry_offset (both LE u32)
//  5. emit fixed verbatim
//  6. walk var_lengths, emitting a running absolute offset for each
//  7. emit data verbatim
//
// Finalize consumes the Encoder; it must not be used afterward. Offset
// arithmetic is checked for 32-bit overflow, surfaced as
// ErrOffsetOverflow.
func (e *Encoder) Finalize() ([]byte, error) {
	defer e.Release()

	fixedLen := uint64(len(e.fixed))
	varEntryLen := uint64(len(e.varLengths)) * varEntrySize
	dataLen := uint64(len(e.data))

	varEntryOffset := uint64(HeaderSize) + fixedLen
	if varEntryOffset > maxOffset {
		return nil, errs.ErrOffsetOverflow
	}

	dataStart := varEntryOffset + varEntryLen
	if dataStart > maxOffset {
		return nil, errs.ErrOffsetOverflow
	}

	totalLen := dataStart + dataLen
	if totalLen > maxOffset {
		return nil, errs.ErrOffsetOverflow
	}

	out := make([]byte, 0, totalLen)
	le := endian.GetLittleEndianEngine()

	out = le.AppendUint32(out, uint32(totalLen))
	out = le.AppendUint32(out, uint32(varEntryOffset))
	out = append(out, e.fixed...)

	current := dataStart
	for _, length := range e.varLengths {
		if current > maxOffset {
			return nil, errs.ErrOffsetOverflow
		}
		out = le.AppendUint32(out, uint32(current))
		current += uint64(length)
	}
	out = append(out, e.data...)

	return out, nil
}
