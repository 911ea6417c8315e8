package wire

import (
	"github.com/arloliu/recio/endian"
	"github.com/arloliu/recio/errs"
)

// Decoder reads fields out of a payload produced by Encoder.Finalize, in the
// same order they were pushed. It validates the header up front and then
// hands back slices borrowed directly from buf as fields are read — no
// copying, no intermediate allocation.
//
// A Decoder is single-owner, advances two independent cursors (fixedCursor
// into the Fixed region, varCursor into the VarIndex region) and is not safe
// for concurrent use.
type Decoder struct {
	order  Order
	engine endian.EndianEngine

	buf          []byte
	totalLen     uint32
	varIdxOffset uint32
	dataOffset   uint32

	fixedCursor uint32
	varCursor   uint32
}

// NewDecoder parses and validates the header of buf and returns a Decoder
// ready to read fields in declared order. order selects the byte order
// applied to Fixed-region scalars read via fixedcodec; the header and
// VarIndex are always parsed little-endian regardless of order (see package
// doc).
func NewDecoder(buf []byte, order Order) (*Decoder, error) {
	if len(buf) < HeaderSize {
		return nil, errs.ErrTruncatedHeader
	}

	le := endian.GetLittleEndianEngine()

	totalLen := le.Uint32(buf[0:4])
	varIdxOffset := le.Uint32(buf[4:8])

	if uint64(totalLen) > uint64(len(buf)) {
		return nil, errs.ErrHeaderBounds
	}
	if varIdxOffset < HeaderSize {
		return nil, errs.ErrHeaderBounds
	}
	if varIdxOffset > totalLen {
		return nil, errs.ErrHeaderBounds
	}

	var dataOffset uint32
	if totalLen == varIdxOffset {
		dataOffset = varIdxOffset
	} else {
		start := uint64(varIdxOffset)
		end := start + 4
		if end > uint64(len(buf)) {
			return nil, errs.ErrHeaderBounds
		}
		dataOffset = le.Uint32(buf[start:end])
	}

	if dataOffset < varIdxOffset {
		return nil, errs.ErrHeaderBounds
	}
	if dataOffset > totalLen {
		return nil, errs.ErrHeaderBounds
	}
	if totalLen > varIdxOffset && dataOffset == varIdxOffset {
		return nil, errs.ErrHeaderBounds
	}
	if (dataOffset-varIdxOffset)%varEntrySize != 0 {
		return nil, errs.ErrVarIndexStride
	}

	return &Decoder{
		order:        order,
		engine:       order.Engine(),
		buf:          buf[:totalLen],
		totalLen:     totalLen,
		varIdxOffset: varIdxOffset,
		dataOffset:   dataOffset,
	}, nil
}

// Order returns the endian policy this Decoder applies to Fixed-region
// field data.
func (d *Decoder) Order() Order { return d.order }

// Engine returns the endian.EndianEngine backing Order, for use by callers
// that decode Fixed-region bytes themselves (see fixedcodec).
func (d *Decoder) Engine() endian.EndianEngine { return d.engine }

// VarCount returns the total number of VarIndex entries in the payload.
func (d *Decoder) VarCount() uint32 {
	return (d.dataOffset - d.varIdxOffset) / varEntrySize
}

// RemainingVar returns how many variable-length segments have not yet been
// consumed by NextVar.
func (d *Decoder) RemainingVar() uint32 {
	return d.VarCount() - d.varCursor
}

// NextFixedBytes returns the next n bytes of the Fixed region and advances
// fixedCursor. It fails with ErrCursorOverrun if fewer than n bytes remain.
func (d *Decoder) NextFixedBytes(n uint32) ([]byte, error) {
	fixedLen := d.varIdxOffset - HeaderSize
	if d.fixedCursor > fixedLen {
		return nil, errs.ErrCursorOverrun
	}
	remaining := fixedLen - d.fixedCursor
	if n > remaining {
		return nil, errs.ErrCursorOverrun
	}

	startAbs := uint64(HeaderSize) + uint64(d.fixedCursor)
	endAbs := startAbs + uint64(n)

	d.fixedCursor += n

	return d.buf[startAbs:endAbs], nil
}

// readEntry returns the absolute payload offset stored at VarIndex entry
// idx.
func (d *Decoder) readEntry(idx uint32) (uint32, error) {
	offsetInEntries := idx * varEntrySize

	entryAbs := uint64(d.varIdxOffset) + uint64(offsetInEntries)
	entryEndAbs := entryAbs + varEntrySize

	if entryEndAbs > uint64(d.dataOffset) || entryEndAbs > uint64(d.totalLen) {
		return 0, errs.ErrSegmentOutOfRange
	}

	return d.engineLE().Uint32(d.buf[entryAbs:entryEndAbs]), nil
}

// engineLE returns the little-endian engine used for header/VarIndex
// parsing, independent of d.order.
func (d *Decoder) engineLE() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}

// nextVarIndex returns the next unread VarIndex entry index and advances
// varCursor.
func (d *Decoder) nextVarIndex() (uint32, error) {
	count := d.VarCount()
	if d.varCursor >= count {
		return 0, errs.ErrCursorOverrun
	}
	idx := d.varCursor
	d.varCursor++

	return idx, nil
}

// NextVar returns the next variable-length segment (var1, or one segment of
// a var2 sequence) and advances varCursor. The segment end is either the
// next VarIndex entry's offset or, for the last entry, total_len.
func (d *Decoder) NextVar() ([]byte, error) {
	idx, err := d.nextVarIndex()
	if err != nil {
		return nil, err
	}

	count := d.VarCount()

	startAbs, err := d.readEntry(idx)
	if err != nil {
		return nil, err
	}

	var endAbs uint32
	if idx+1 < count {
		endAbs, err = d.readEntry(idx + 1)
		if err != nil {
			return nil, err
		}
	} else {
		endAbs = d.totalLen
	}

	if startAbs < d.dataOffset || endAbs < startAbs || endAbs > d.totalLen {
		return nil, errs.ErrSegmentOutOfRange
	}
	if uint64(endAbs) > uint64(len(d.buf)) {
		return nil, errs.ErrSegmentOutOfRange
	}

	return d.buf[startAbs:endAbs], nil
}

// NextVar2 reads count consecutive variable-length segments as a single
// var2 field. It is a convenience wrapper over NextVar for callers that know
// how many segments the field owns ahead of time (e.g. schema-derived
// records where a preceding fixed field carries the count).
func (d *Decoder) NextVar2(count uint32) ([][]byte, error) {
	segments := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		seg, err := d.NextVar()
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

// RemainingVarAsVar2 consumes every remaining unread VarIndex entry as one
// var2 field. This is the common case: a var2 field is only legal in last
// position, so by the time a record's decode routine reaches it, every
// unread entry belongs to that field.
func (d *Decoder) RemainingVarAsVar2() ([][]byte, error) {
	return d.NextVar2(d.RemainingVar())
}
